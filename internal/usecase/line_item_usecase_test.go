package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taller_andino/internal/domain/entities"
	mock_interfaces "taller_andino/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func openOrder() entities.Order {
	return entities.Order{
		ID:         "order-1",
		ClientID:   "client-1",
		Device:     "Laptop X200",
		StageID:    "stage-1",
		AcceptedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Prepayment: decimal.Zero,
	}
}

func closedOrder() entities.Order {
	o := openOrder()
	completed := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)
	o.CompletedAt = &completed
	o.PaymentMethod = entities.PaymentMethodCash
	return o
}

func serviceInput() LineItemInput {
	return LineItemInput{
		Kind:      entities.ItemKindService,
		Name:      "Screen replacement",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(100),
		Discount:  entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.NewFromInt(20)},
	}
}

func stockedPartInput() LineItemInput {
	return LineItemInput{
		Kind:        entities.ItemKindPart,
		Name:        "Battery",
		Quantity:    1,
		UnitCost:    decimal.NewFromInt(100),
		UnitPrice:   decimal.NewFromInt(150),
		Discount:    entities.Discount{Type: entities.DiscountTypePercent, Value: decimal.NewFromInt(10)},
		InventoryID: "inv-7",
	}
}

func TestLineItemUseCase_AddItem(t *testing.T) {
	t.Run("blank order id", func(t *testing.T) {
		uc := NewLineItemUseCase(nil, nil, nil, nil)
		_, err := uc.AddItem(context.Background(), "   ", serviceInput(), "ana")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewLineItemUseCase(nil, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.AddItem(context.Background(), "order-1", serviceInput(), "ana")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("closed order rejects mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewLineItemUseCase(nil, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(closedOrder(), nil)

		_, err := uc.AddItem(context.Background(), "order-1", serviceInput(), "ana")
		if !errors.Is(err, ErrOrderClosed) {
			t.Fatalf("expected ErrOrderClosed, got %v", err)
		}
	})

	t.Run("invalid input rejected before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewLineItemUseCase(nil, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)

		input := serviceInput()
		input.Quantity = 0
		_, err := uc.AddItem(context.Background(), "order-1", input, "ana")
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("persists item and refreshed totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, nil)

		var gotTotals entities.OrderTotals
		items.EXPECT().PutWithTotals(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item entities.LineItem, totals entities.OrderTotals) error {
				if item.ID == "" {
					t.Fatalf("expected item id to be assigned")
				}
				gotTotals = totals
				return nil
			})

		created, err := uc.AddItem(context.Background(), "order-1", serviceInput(), "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OrderID != "order-1" {
			t.Fatalf("expected order-1, got %s", created.OrderID)
		}
		if !gotTotals.EstimatedCost.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("expected estimated cost 180, got %s", gotTotals.EstimatedCost)
		}
		if !gotTotals.EstimatedProfit.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("expected estimated profit 180, got %s", gotTotals.EstimatedProfit)
		}
	})

	t.Run("stocked part deducts inventory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		inventory := mock_interfaces.NewMockIInventoryGateway(ctrl)
		uc := NewLineItemUseCase(items, orders, inventory, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, nil)
		items.EXPECT().PutWithTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		inventory.EXPECT().DecrementStock(gomock.Any(), "inv-7", 1).Return(nil)
		inventory.EXPECT().RecordMovement(gomock.Any(), "inv-7", gomock.Any(), 1, gomock.Any()).Return(nil)

		if _, err := uc.AddItem(context.Background(), "order-1", stockedPartInput(), "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stock failure surfaces but keeps the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		inventory := mock_interfaces.NewMockIInventoryGateway(ctrl)
		uc := NewLineItemUseCase(items, orders, inventory, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, nil)
		items.EXPECT().PutWithTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		inventory.EXPECT().DecrementStock(gomock.Any(), "inv-7", 1).Return(errors.New("out of stock"))

		created, err := uc.AddItem(context.Background(), "order-1", stockedPartInput(), "ana")
		if !errors.Is(err, ErrStockAdjustmentFailed) {
			t.Fatalf("expected ErrStockAdjustmentFailed, got %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected the persisted item to be returned with the error")
		}
	})

	t.Run("service never touches inventory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		inventory := mock_interfaces.NewMockIInventoryGateway(ctrl)
		uc := NewLineItemUseCase(items, orders, inventory, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, nil)
		items.EXPECT().PutWithTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.AddItem(context.Background(), "order-1", serviceInput(), "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_UpdateItem(t *testing.T) {
	existing := entities.LineItem{
		ID:        "item-1",
		OrderID:   "order-1",
		Kind:      entities.ItemKindService,
		Name:      "Screen replacement",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(100),
		Discount:  entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.NewFromInt(20)},
	}

	t.Run("item from another order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, orders, nil, nil)

		foreign := existing
		foreign.OrderID = "order-2"
		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().GetByID(gomock.Any(), "item-1").Return(foreign, nil)

		_, err := uc.UpdateItem(context.Background(), "order-1", "item-1", serviceInput(), "ana")
		if !errors.Is(err, ErrItemNotInOrder) {
			t.Fatalf("expected ErrItemNotInOrder, got %v", err)
		}
	})

	t.Run("replaces item and re-folds totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().GetByID(gomock.Any(), "item-1").Return(existing, nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.LineItem{existing}, nil)

		var gotTotals entities.OrderTotals
		items.EXPECT().PutWithTotals(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item entities.LineItem, totals entities.OrderTotals) error {
				if item.ID != "item-1" {
					t.Fatalf("expected update to keep id item-1, got %s", item.ID)
				}
				gotTotals = totals
				return nil
			})

		input := serviceInput()
		input.Quantity = 3
		updated, err := uc.UpdateItem(context.Background(), "order-1", "item-1", input, "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", updated.Quantity)
		}
		// 3 x 100 minus the fixed 20.
		if !gotTotals.EstimatedCost.Equal(decimal.NewFromInt(280)) {
			t.Fatalf("expected estimated cost 280, got %s", gotTotals.EstimatedCost)
		}
	})
}

func TestLineItemUseCase_DeleteItem(t *testing.T) {
	stocked := entities.LineItem{
		ID:          "item-2",
		OrderID:     "order-1",
		Kind:        entities.ItemKindPart,
		Name:        "Battery",
		Quantity:    1,
		UnitCost:    decimal.NewFromInt(100),
		UnitPrice:   decimal.NewFromInt(150),
		Discount:    entities.Discount{Type: entities.DiscountTypePercent, Value: decimal.NewFromInt(10)},
		InventoryID: "inv-7",
	}
	plain := entities.LineItem{
		ID:        "item-1",
		OrderID:   "order-1",
		Kind:      entities.ItemKindService,
		Name:      "Screen replacement",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(100),
		Discount:  entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.NewFromInt(20)},
	}

	t.Run("deletes with remaining totals and audit event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().GetByID(gomock.Any(), "item-1").Return(plain, nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.LineItem{plain, stocked}, nil)
		items.EXPECT().DeleteWithTotals(gomock.Any(), "item-1", "order-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, totals entities.OrderTotals, event entities.OrderHistoryEvent) error {
				if !totals.EstimatedCost.Equal(decimal.NewFromInt(135)) {
					t.Fatalf("expected remaining estimated cost 135, got %s", totals.EstimatedCost)
				}
				if event.Type != entities.HistoryEventItemDeleted {
					t.Fatalf("expected item_deleted event, got %s", event.Type)
				}
				if event.Actor != "ana" {
					t.Fatalf("expected actor ana, got %s", event.Actor)
				}
				return nil
			})

		if err := uc.DeleteItem(context.Background(), "order-1", "item-1", "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("restocks a deleted stocked part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		inventory := mock_interfaces.NewMockIInventoryGateway(ctrl)
		uc := NewLineItemUseCase(items, orders, inventory, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().GetByID(gomock.Any(), "item-2").Return(stocked, nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.LineItem{stocked}, nil)
		items.EXPECT().DeleteWithTotals(gomock.Any(), "item-2", "order-1", gomock.Any(), gomock.Any()).Return(nil)
		inventory.EXPECT().IncrementStock(gomock.Any(), "inv-7", 1).Return(nil)
		inventory.EXPECT().RecordMovement(gomock.Any(), "inv-7", gomock.Any(), 1, gomock.Any()).Return(nil)

		if err := uc.DeleteItem(context.Background(), "order-1", "item-2", "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		items.EXPECT().GetByID(gomock.Any(), "item-9").Return(entities.LineItem{}, nil)

		err := uc.DeleteItem(context.Background(), "order-1", "item-9", "ana")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestLineItemUseCase_ListItems(t *testing.T) {
	t.Run("blank order id", func(t *testing.T) {
		uc := NewLineItemUseCase(nil, nil, nil, nil)
		_, err := uc.ListItems(context.Background(), " ")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(items, nil, nil, nil)

		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.LineItem{{ID: "item-1"}}, nil)

		got, err := uc.ListItems(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "item-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
