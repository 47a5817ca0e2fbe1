package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "taller_andino/internal/adapter/http/dto/request"
	response "taller_andino/internal/adapter/http/dto/response"
	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase"
	"taller_andino/pkg"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for the stage catalog and order stage
// transitions, including the terminal close.

type StageHandler struct {
	usecase usecase.IStageTransitionUseCase
}

func NewStageHandler(uc usecase.IStageTransitionUseCase) *StageHandler {
	return &StageHandler{usecase: uc}
}

func (h *StageHandler) ListStages(c *gin.Context) {
	stages, err := h.usecase.ListStages(c.Request.Context())
	if err != nil {
		appErr := mapStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStages(stages))
}

// ChangeStage moves an order to another stage. Moving to the terminal stage
// closes the order and requires a payment method on the payload.
func (h *StageHandler) ChangeStage(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.StageChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage change payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stageID := payload.ResolveStageID()
	if stageID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage change payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(payload.PaymentMethod)))
	order, err := h.usecase.ChangeStage(c.Request.Context(), orderID, stageID, payload.Actor, method)
	if err != nil {
		appErr := mapStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapStageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentMethodRequired), errors.Is(err, usecase.ErrPaymentMethodInvalid):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "A valid payment method is required to close the order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_CONFLICT", "Order already closed with a different payment method", http.StatusConflict)
	case errors.Is(err, usecase.ErrClosedOrderNotReopened):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Closed orders cannot move back to an active stage", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
