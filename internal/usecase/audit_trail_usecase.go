package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyComment = errors.New("comment cannot be empty")
	ErrEmptyActor   = errors.New("actor cannot be empty")
)

// IAuditTrailUseCase exposes the append-only history attached to an order.
// Events are listed newest-first; there is no update or delete operation and
// events are never back-dated.

type IAuditTrailUseCase interface {
	AddComment(ctx context.Context, orderID, actor, text string) (entities.OrderHistoryEvent, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.OrderHistoryEvent, error)
}

type AuditTrailUseCase struct {
	history interfaces.IOrderHistoryRepository
	orders  interfaces.IOrderRepository
}

var _ IAuditTrailUseCase = (*AuditTrailUseCase)(nil)

func NewAuditTrailUseCase(history interfaces.IOrderHistoryRepository, orders interfaces.IOrderRepository) *AuditTrailUseCase {
	return &AuditTrailUseCase{history: history, orders: orders}
}

func (u *AuditTrailUseCase) AddComment(ctx context.Context, orderID, actor, text string) (entities.OrderHistoryEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderHistoryEvent{}, ErrOrderNotFound
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.OrderHistoryEvent{}, ErrEmptyActor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.OrderHistoryEvent{}, ErrEmptyComment
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderHistoryEvent{}, err
	}
	if order.ID == "" {
		return entities.OrderHistoryEvent{}, ErrOrderNotFound
	}

	event := entities.OrderHistoryEvent{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Actor:       actor,
		Type:        entities.HistoryEventComment,
		Description: text,
		CreatedAt:   time.Now().UTC(),
	}
	return u.history.Insert(ctx, event)
}

func (u *AuditTrailUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.OrderHistoryEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.history.ListByOrderID(ctx, orderID)
}
