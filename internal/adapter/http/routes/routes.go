package routes

import (
	"log"
	"os"
	"time"

	_ "serving_u/docs" // This will be auto-generated
	"serving_u/internal/adapter/http/handlers"
	repository2 "serving_u/internal/adapter/persistence/repository"
	"serving_u/internal/infrastructure/database"
	"serving_u/internal/infrastructure/notifications"
	"serving_u/internal/infrastructure/payments"
	"serving_u/internal/infrastructure/storage"
	"serving_u/internal/usecase"
	"serving_u/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	alterationRepo := repository2.NewAlterationDynamoRepository(ddb)
	laundryRepo := repository2.NewLaundryItemDynamoRepository(ddb)
	unstitchedRepo := repository2.NewUnstitchedItemDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	var notifier interfaces.INotifier
	emailNotifier, err := notifications.NewEmailNotifier(notifications.NewEmailConfigFromEnv())
	if err != nil {
		log.Printf("Email notifier not configured: %v", err)
	} else {
		notifier = emailNotifier
	}

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	var imageStorage interfaces.IImageStorage
	cldStorage, err := storage.NewCloudinaryStorage(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary storage not configured: %v", err)
	} else {
		imageStorage = cldStorage
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, sequenceRepo, notifier)
	alterationUseCase := usecase.NewAlterationUseCase(alterationRepo, notifier)
	laundryUseCase := usecase.NewLaundryItemUseCase(laundryRepo, imageStorage)
	unstitchedUseCase := usecase.NewUnstitchedItemUseCase(unstitchedRepo, imageStorage)
	authUseCase := usecase.NewAuthUseCase(userRepo, os.Getenv("JWT_SECRET"))
	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	alterationHandler := handlers.NewAlterationHandler(alterationUseCase)
	laundryHandler := handlers.NewLaundryItemHandler(laundryUseCase)
	unstitchedHandler := handlers.NewUnstitchedItemHandler(unstitchedUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	api := router.Group("/api")
	addHealthRoutes(api)
	addOrderRoutes(api, orderHandler)
	addAlterationRoutes(api, alterationHandler)
	addCatalogRoutes(api, laundryHandler, unstitchedHandler)
	addAuthRoutes(api, authHandler)
	addPaymentRoutes(api, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"https://www.servingu.in",
		"https://servingu.in",
	}
	if v := os.Getenv("CLIENT_URL"); v != "" {
		origins = append(origins, v)
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
