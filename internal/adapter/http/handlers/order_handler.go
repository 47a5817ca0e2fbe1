package handlers

import (
	"errors"
	"net/http"

	request "taller_andino/internal/adapter/http/dto/request"
	response "taller_andino/internal/adapter/http/dto/response"
	"taller_andino/internal/usecase"
	"taller_andino/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for repair order intake and reads.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder registers a device entering the workshop. The order lands on
// the first catalog stage with empty totals.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.OrderInput{
		ClientID:   payload.ClientID,
		Device:     payload.Device,
		Prepayment: decimal.NewFromFloat(payload.Prepayment),
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns the order together with its items, each priced live.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	detail, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := toLineItemResponses(detail.Items)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetail(detail.Order, items, detail.Totals))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromOrder(o))
	}
	c.JSON(http.StatusOK, out)
}

// SetPrepayment records the amount collected before the order completes.
func (h *OrderHandler) SetPrepayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.PrepaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SetPrepayment(c.Request.Context(), orderID, decimal.NewFromFloat(payload.Amount))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidDevice), errors.Is(err, usecase.ErrInvalidPrepayment):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is already closed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
