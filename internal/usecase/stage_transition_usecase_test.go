package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_andino/internal/domain/entities"
	mock_interfaces "taller_andino/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func activeStage() entities.OrderStage {
	return entities.OrderStage{ID: "stage-2", Name: "En reparación", Position: 3, Kind: entities.StageKindActive}
}

func terminalStage() entities.OrderStage {
	return entities.OrderStage{ID: "stage-closed", Name: entities.TerminalStageName, Position: 5, Kind: entities.StageKindTerminal}
}

func TestStageTransitionUseCase_ChangeStage(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-9").Return(entities.Order{}, nil)

		_, err := uc.ChangeStage(context.Background(), "order-9", "stage-2", "ana", "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("stage not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-9").Return(entities.OrderStage{}, nil)

		_, err := uc.ChangeStage(context.Background(), "order-1", "stage-9", "ana", "")
		if !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})

	t.Run("move writes stage pointer and status event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-2").Return(activeStage(), nil)
		orders.EXPECT().ChangeStage(gomock.Any(), "order-1", "stage-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, event entities.OrderHistoryEvent) error {
				if event.Type != entities.HistoryEventStatusChange {
					t.Fatalf("expected status_change event, got %s", event.Type)
				}
				if event.Description != "Stage changed to En reparación" {
					t.Fatalf("unexpected description: %s", event.Description)
				}
				return nil
			})

		order, err := uc.ChangeStage(context.Background(), "order-1", "stage-2", "ana", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.StageID != "stage-2" {
			t.Fatalf("expected stage-2, got %s", order.StageID)
		}
	})

	t.Run("closed order cannot move back to an active stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(closedOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-2").Return(activeStage(), nil)

		_, err := uc.ChangeStage(context.Background(), "order-1", "stage-2", "ana", "")
		if !errors.Is(err, ErrClosedOrderNotReopened) {
			t.Fatalf("expected ErrClosedOrderNotReopened, got %v", err)
		}
	})

	t.Run("close requires a payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-closed").Return(terminalStage(), nil)

		_, err := uc.ChangeStage(context.Background(), "order-1", "stage-closed", "ana", "")
		if !errors.Is(err, ErrPaymentMethodRequired) {
			t.Fatalf("expected ErrPaymentMethodRequired, got %v", err)
		}
	})

	t.Run("close rejects an unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-closed").Return(terminalStage(), nil)

		_, err := uc.ChangeStage(context.Background(), "order-1", "stage-closed", "ana", "credit_card")
		if !errors.Is(err, ErrPaymentMethodInvalid) {
			t.Fatalf("expected ErrPaymentMethodInvalid, got %v", err)
		}
	})

	t.Run("first close freezes the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		items := mock_interfaces.NewMockILineItemRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, items, stages, nil)

		order := openOrder()
		order.Prepayment = decimal.NewFromInt(100)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-closed").Return(terminalStage(), nil)
		items.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.LineItem{serviceItem(), partItem()}, nil)
		orders.EXPECT().CloseOrder(gomock.Any(), "order-1", "stage-closed", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, snap entities.ClosingSnapshot, event entities.OrderHistoryEvent) error {
				if !snap.FinalCost.Equal(decimal.NewFromInt(315)) {
					t.Fatalf("expected final cost 315, got %s", snap.FinalCost)
				}
				if !snap.TotalProfit.Equal(decimal.NewFromInt(215)) {
					t.Fatalf("expected total profit 215, got %s", snap.TotalProfit)
				}
				if !snap.BalanceDue.Equal(decimal.NewFromInt(215)) {
					t.Fatalf("expected balance due 215, got %s", snap.BalanceDue)
				}
				if snap.PaymentMethod != entities.PaymentMethodCash {
					t.Fatalf("expected cash, got %s", snap.PaymentMethod)
				}
				if event.Type != entities.HistoryEventStatusChange {
					t.Fatalf("expected status_change event, got %s", event.Type)
				}
				return nil
			})

		closed, err := uc.ChangeStage(context.Background(), "order-1", "stage-closed", "ana", entities.PaymentMethodCash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !closed.Closed() {
			t.Fatalf("expected returned order to be closed")
		}
		if !closed.FinalCost.Equal(decimal.NewFromInt(315)) {
			t.Fatalf("expected final cost 315, got %s", closed.FinalCost)
		}
		if closed.PaymentMethod != entities.PaymentMethodCash {
			t.Fatalf("expected cash, got %s", closed.PaymentMethod)
		}
	})

	t.Run("repeated close with same method is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		already := closedOrder()
		already.FinalCost = decimal.NewFromInt(315)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(already, nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-closed").Return(terminalStage(), nil)
		// Only the stage pointer is rewritten; the snapshot stays frozen.
		orders.EXPECT().UpdateStagePointer(gomock.Any(), "order-1", "stage-closed").Return(nil)

		got, err := uc.ChangeStage(context.Background(), "order-1", "stage-closed", "ana", entities.PaymentMethodCash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.FinalCost.Equal(decimal.NewFromInt(315)) {
			t.Fatalf("expected frozen final cost 315, got %s", got.FinalCost)
		}
	})

	t.Run("repeated close with different method conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
		uc := NewStageTransitionUseCase(orders, nil, stages, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(closedOrder(), nil)
		stages.EXPECT().GetByID(gomock.Any(), "stage-closed").Return(terminalStage(), nil)

		_, err := uc.ChangeStage(context.Background(), "order-1", "stage-closed", "ana", entities.PaymentMethodBank)
		if !errors.Is(err, ErrPaymentMethodConflict) {
			t.Fatalf("expected ErrPaymentMethodConflict, got %v", err)
		}
	})
}

func TestStageTransitionUseCase_ListStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stages := mock_interfaces.NewMockIOrderStageRepository(ctrl)
	uc := NewStageTransitionUseCase(nil, nil, stages, nil)

	catalog := []entities.OrderStage{{ID: "stage-1", Name: "Recibido", Position: 1}}
	stages.EXPECT().EnsureDefaults(gomock.Any()).Return(catalog, nil)

	got, err := uc.ListStages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Recibido" {
		t.Fatalf("unexpected catalog: %+v", got)
	}
}
