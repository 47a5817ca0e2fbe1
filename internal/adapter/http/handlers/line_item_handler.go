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
	"github.com/shopspring/decimal"
)

var (
	errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// LineItemHandler handles HTTP requests for the priced entries of an order.

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

func (h *LineItemHandler) AddItem(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), orderID, toLineItemInput(payload), payload.Actor)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pricing, err := usecase.ComputeLine(item)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item, pricing))
}

func (h *LineItemHandler) UpdateItem(c *gin.Context) {
	orderID := c.Param("order_id")
	itemID := c.Param("item_id")

	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), orderID, itemID, toLineItemInput(payload), payload.Actor)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pricing, err := usecase.ComputeLine(item)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item, pricing))
}

func (h *LineItemHandler) DeleteItem(c *gin.Context) {
	orderID := c.Param("order_id")
	itemID := c.Param("item_id")
	actor := c.Query("actor")

	if err := h.usecase.DeleteItem(c.Request.Context(), orderID, itemID, actor); err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LineItemHandler) ListItems(c *gin.Context) {
	orderID := c.Param("order_id")

	items, err := h.usecase.ListItems(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := toLineItemResponses(items)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, out)
}

func toLineItemInput(payload request.LineItemRequest) usecase.LineItemInput {
	input := usecase.LineItemInput{
		Kind:         entities.ItemKind(strings.ToLower(strings.TrimSpace(payload.Kind))),
		Name:         payload.Name,
		Quantity:     payload.Quantity,
		UnitCost:     decimal.NewFromFloat(payload.UnitCost),
		UnitPrice:    decimal.NewFromFloat(payload.UnitPrice),
		InventoryID:  payload.InventoryID,
		TechnicianID: payload.TechnicianID,
	}
	if payload.Discount.Type != "" {
		input.Discount = entities.Discount{
			Type:  entities.DiscountType(strings.ToLower(strings.TrimSpace(payload.Discount.Type))),
			Value: decimal.NewFromFloat(payload.Discount.Value),
		}
	}
	return input
}

func toLineItemResponses(items []entities.LineItem) ([]response.LineItemResponse, error) {
	out := make([]response.LineItemResponse, 0, len(items))
	for _, item := range items {
		pricing, err := usecase.ComputeLine(item)
		if err != nil {
			return nil, err
		}
		out = append(out, response.FromLineItem(item, pricing))
	}
	return out, nil
}

func mapLineItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidItemKind),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidUnitCost),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrDiscountExceedsPrice):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, usecase.ErrItemNotInOrder):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockAdjustmentFailed):
		return pkg.NewDomainError("STOCK_ADJUSTMENT_FAILED", "Item saved but the inventory service rejected the stock adjustment", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
