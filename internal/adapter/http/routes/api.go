package routes

import (
	"net/http"

	"serving_u/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathAlterations = "/alterations"
	PathLaundry     = "/laundry"
	PathUnstitched  = "/unstitched"
	PathAuth        = "/auth"
	PathGoogleAuth  = "/google-auth"
	PathRazorpay    = "/razorpay"
)

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.PATCH("/:id/payment-status", h.UpdatePaymentStatus)
		orders.PATCH("/:id/total", h.SetTotal)
		orders.PATCH("/:id/laundry-total", h.SetLaundryTotal)
	}
}

func addAlterationRoutes(rg *gin.RouterGroup, h *handlers.AlterationHandler) {
	alterations := rg.Group(PathAlterations)
	{
		alterations.POST("", h.Create)
		alterations.GET("", h.List)
		alterations.GET("/:id", h.GetByID)
		alterations.PATCH("/:id/status", h.UpdateStatus)
		alterations.PATCH("/:id/payment-status", h.UpdatePaymentStatus)
		alterations.PATCH("/:id/total", h.SetTotal)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, laundry *handlers.LaundryItemHandler, unstitched *handlers.UnstitchedItemHandler) {
	l := rg.Group(PathLaundry)
	{
		l.GET("", laundry.List)
		l.POST("", laundry.Create)
		l.PUT("/:id", laundry.Update)
		l.DELETE("/:id", laundry.Delete)
		l.POST("/bulk-delete", laundry.BulkDelete)
	}

	u := rg.Group(PathUnstitched)
	{
		u.GET("", unstitched.List)
		u.POST("", unstitched.Create)
		u.PUT("/:id", unstitched.Update)
		u.DELETE("/:id", unstitched.Delete)
		u.POST("/bulk-delete", unstitched.BulkDelete)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", h.GetProfile)
		auth.POST("/profile", h.UpdateProfile)
	}

	google := rg.Group(PathGoogleAuth)
	{
		google.POST("/google", h.GoogleSignIn)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	razorpay := rg.Group(PathRazorpay)
	{
		razorpay.POST("/order", h.CreateIntent)
		razorpay.POST("/verify-payment", h.VerifyPayment)
	}
}
