package handlers

import (
	"errors"
	"net/http"

	request "serving_u/internal/adapter/http/dto/request"
	response "serving_u/internal/adapter/http/dto/response"
	"serving_u/internal/usecase"
	"serving_u/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAlterationPayload = pkg.NewDomainErrorSimple("INVALID_ALTERATION_INPUT", "Invalid alteration payload", http.StatusBadRequest)
)

// AlterationHandler handles HTTP requests for tailoring appointments.

type AlterationHandler struct {
	usecase usecase.IAlterationUseCase
}

func NewAlterationHandler(uc usecase.IAlterationUseCase) *AlterationHandler {
	return &AlterationHandler{usecase: uc}
}

func (h *AlterationHandler) Create(c *gin.Context) {
	var payload request.CreateAlterationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlterationPayload.HTTPStatus, errInvalidAlterationPayload.ToHTTPError())
		return
	}

	alteration, err := h.usecase.Create(c.Request.Context(), usecase.CreateAlterationInput{
		Customer: payload.Customer.ToEntity(),
		Note:     payload.Note,
		Quantity: payload.Quantity,
	})
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAlteration(alteration))
}

func (h *AlterationHandler) List(c *gin.Context) {
	alterations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlterations(alterations))
}

func (h *AlterationHandler) GetByID(c *gin.Context) {
	alteration, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlteration(alteration))
}

func (h *AlterationHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateAlterationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlterationPayload.HTTPStatus, errInvalidAlterationPayload.ToHTTPError())
		return
	}

	alteration, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlteration(alteration))
}

func (h *AlterationHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.UpdateAlterationPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlterationPayload.HTTPStatus, errInvalidAlterationPayload.ToHTTPError())
		return
	}

	alteration, err := h.usecase.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), usecase.PaymentStatusInput{
		Status:         payload.PaymentStatus,
		PaymentID:      payload.PaymentID,
		GatewayOrderID: payload.GatewayOrderID,
		Signature:      payload.Signature,
	})
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlteration(alteration))
}

func (h *AlterationHandler) SetTotal(c *gin.Context) {
	var payload request.AlterationTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAlterationPayload.HTTPStatus, errInvalidAlterationPayload.ToHTTPError())
		return
	}

	alteration, err := h.usecase.SetAdminTotal(c.Request.Context(), c.Param("id"), payload.Total)
	if err != nil {
		appErr := mapAlterationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlteration(alteration))
}

func mapAlterationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAlterationID),
		errors.Is(err, usecase.ErrMissingAlterationFields),
		errors.Is(err, usecase.ErrInvalidAlterationStatus),
		errors.Is(err, usecase.ErrInvalidAlterationTotal),
		errors.Is(err, usecase.ErrInvalidAlterationCount),
		errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlterationNotFound):
		return pkg.NewDomainErrorSimple("ALTERATION_NOT_FOUND", "Alteration not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
