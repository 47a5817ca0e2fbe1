package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_andino/internal/adapter/http/handlers/mocks"
	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testLineItem() entities.LineItem {
	return entities.LineItem{
		ID:        "item-1",
		OrderID:   "order-1",
		Kind:      entities.ItemKindService,
		Name:      "Screen replacement",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(100),
		Discount:  entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.NewFromInt(20)},
	}
}

func TestLineItemHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("discount above price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "order-1", gomock.Any(), "ana").
			Return(entities.LineItem{}, usecase.ErrDiscountExceedsPrice)

		payload := `{"kind":"service","name":"Screen replacement","quantity":2,"unit_price":100,"discount":{"type":"fixed","value":500},"actor":"ana"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closed order conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "order-1", gomock.Any(), gomock.Any()).
			Return(entities.LineItem{}, usecase.ErrOrderClosed)

		payload := `{"kind":"service","name":"Screen replacement","quantity":2,"unit_price":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("stock failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "order-1", gomock.Any(), gomock.Any()).
			Return(testLineItem(), usecase.ErrStockAdjustmentFailed)

		payload := `{"kind":"part","name":"Battery","quantity":1,"unit_cost":100,"unit_price":150,"inventory_id":"inv-7"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success includes derived pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "order-1", gomock.Any(), "ana").Return(testLineItem(), nil)

		payload := `{"kind":"service","name":"Screen replacement","quantity":2,"unit_price":100,"discount":{"type":"fixed","value":20},"actor":"ana"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			SellingPrice float64 `json:"selling_price"`
			TotalPrice   float64 `json:"total_price"`
			Profit       float64 `json:"profit"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.SellingPrice != 200 || body.TotalPrice != 180 || body.Profit != 180 {
			t.Fatalf("unexpected pricing: %+v", body)
		}
	})
}

func TestLineItemHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:order_id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), "order-1", "item-9", gomock.Any(), gomock.Any()).
			Return(entities.LineItem{}, usecase.ErrItemNotFound)

		payload := `{"kind":"service","name":"Screen replacement","quantity":2,"unit_price":100}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/items/item-9", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:order_id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), "order-1", "item-1", gomock.Any(), gomock.Any()).Return(testLineItem(), nil)

		payload := `{"kind":"service","name":"Screen replacement","quantity":2,"unit_price":100,"discount":{"type":"fixed","value":20}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/items/item-1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_DeleteItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:order_id/items/:item_id", h.DeleteItem)

		uc.EXPECT().DeleteItem(gomock.Any(), "order-1", "item-1", "ana").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/order-1/items/item-1?actor=ana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("foreign item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:order_id/items/:item_id", h.DeleteItem)

		uc.EXPECT().DeleteItem(gomock.Any(), "order-1", "item-2", gomock.Any()).Return(usecase.ErrItemNotInOrder)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/order-1/items/item-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILineItemUseCase(ctrl)
	h := NewLineItemHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/:order_id/items", h.ListItems)

	uc.EXPECT().ListItems(gomock.Any(), "order-1").Return([]entities.LineItem{testLineItem()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		ID         string  `json:"id"`
		TotalPrice float64 `json:"total_price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0].ID != "item-1" || body[0].TotalPrice != 180 {
		t.Fatalf("unexpected payload: %+v", body)
	}
}
