package handlers

import (
	"errors"
	"net/http"

	request "taller_andino/internal/adapter/http/dto/request"
	response "taller_andino/internal/adapter/http/dto/response"
	"taller_andino/internal/usecase"
	"taller_andino/pkg"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles HTTP requests for an order's audit trail.

type HistoryHandler struct {
	usecase usecase.IAuditTrailUseCase
}

func NewHistoryHandler(uc usecase.IAuditTrailUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// AddComment appends a manual note to the order's trail.
func (h *HistoryHandler) AddComment(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_COMMENT_INPUT", "Invalid comment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.usecase.AddComment(c.Request.Context(), orderID, payload.Actor, payload.Text)
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromHistoryEvent(event))
}

// ListHistory returns the order's events, newest first.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	orderID := c.Param("order_id")

	events, err := h.usecase.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistoryEvents(events))
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyComment), errors.Is(err, usecase.ErrEmptyActor):
		return pkg.NewDomainErrorSimple("INVALID_COMMENT_INPUT", "Invalid comment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
