package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_andino/internal/domain/entities"
	mock_interfaces "taller_andino/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditTrailUseCase_AddComment(t *testing.T) {
	t.Run("blank actor", func(t *testing.T) {
		uc := NewAuditTrailUseCase(nil, nil)
		_, err := uc.AddComment(context.Background(), "order-1", "  ", "needs a new screen")
		if !errors.Is(err, ErrEmptyActor) {
			t.Fatalf("expected ErrEmptyActor, got %v", err)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		uc := NewAuditTrailUseCase(nil, nil)
		_, err := uc.AddComment(context.Background(), "order-1", "ana", "   ")
		if !errors.Is(err, ErrEmptyComment) {
			t.Fatalf("expected ErrEmptyComment, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewAuditTrailUseCase(nil, orders)

		orders.EXPECT().GetByID(gomock.Any(), "order-9").Return(entities.Order{}, nil)

		_, err := uc.AddComment(context.Background(), "order-9", "ana", "note")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("inserts a comment event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		history := mock_interfaces.NewMockIOrderHistoryRepository(ctrl)
		uc := NewAuditTrailUseCase(history, orders)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(openOrder(), nil)
		history.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event entities.OrderHistoryEvent) (entities.OrderHistoryEvent, error) {
				if event.Type != entities.HistoryEventComment {
					t.Fatalf("expected comment event, got %s", event.Type)
				}
				if event.Description != "customer approved the estimate" {
					t.Fatalf("unexpected description: %s", event.Description)
				}
				if event.ID == "" || event.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamp to be stamped")
				}
				return event, nil
			})

		event, err := uc.AddComment(context.Background(), "order-1", "ana", "  customer approved the estimate  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Actor != "ana" {
			t.Fatalf("expected actor ana, got %s", event.Actor)
		}
	})
}

func TestAuditTrailUseCase_ListByOrder(t *testing.T) {
	t.Run("blank order id", func(t *testing.T) {
		uc := NewAuditTrailUseCase(nil, nil)
		_, err := uc.ListByOrder(context.Background(), " ")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		history := mock_interfaces.NewMockIOrderHistoryRepository(ctrl)
		uc := NewAuditTrailUseCase(history, nil)

		history.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.OrderHistoryEvent{{ID: "ev-1"}}, nil)

		events, err := uc.ListByOrder(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].ID != "ev-1" {
			t.Fatalf("unexpected events: %+v", events)
		}
	})
}
