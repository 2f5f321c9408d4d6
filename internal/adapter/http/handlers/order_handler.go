package handlers

import (
	"context"
	"errors"
	"net/http"

	request "serving_u/internal/adapter/http/dto/request"
	response "serving_u/internal/adapter/http/dto/response"
	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase"
	"serving_u/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for customer orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		Customer:      payload.Customer.ToEntity(),
		Items:         payload.ToItems(),
		Total:         payload.Total,
		Note:          payload.Note,
		PaymentStatus: entities.PaymentStatus(payload.PaymentStatus),
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateGroupStatus(c.Request.Context(), c.Param("id"), payload.Group, payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.UpdateOrderPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateGroupPaymentStatus(c.Request.Context(), c.Param("id"), payload.Group, usecase.PaymentStatusInput{
		Status:         payload.PaymentStatus,
		PaymentID:      payload.PaymentID,
		GatewayOrderID: payload.GatewayOrderID,
		Signature:      payload.Signature,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) SetTotal(c *gin.Context) {
	h.patchTotal(c, h.usecase.SetAdminTotal)
}

func (h *OrderHandler) SetLaundryTotal(c *gin.Context) {
	h.patchTotal(c, h.usecase.SetLaundryAdminTotal)
}

func (h *OrderHandler) patchTotal(
	c *gin.Context,
	write func(ctx context.Context, id string, total *float64) (entities.Order, error),
) {
	var payload request.AdminTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := write(c.Request.Context(), c.Param("id"), payload.Total)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrMissingCustomerField),
		errors.Is(err, usecase.ErrNoOrderItems),
		errors.Is(err, usecase.ErrInvalidOrderItem),
		errors.Is(err, usecase.ErrInvalidOrderTotal),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidItemGroup),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidOrderAdminTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
