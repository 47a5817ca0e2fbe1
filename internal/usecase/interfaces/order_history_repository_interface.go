package interfaces

import (
	"context"

	"taller_andino/internal/domain/entities"
)

// IOrderHistoryRepository abstracts the append-only audit trail.
//
// Insert is the only write; there is deliberately no update or delete.

type IOrderHistoryRepository interface {
	Insert(ctx context.Context, event entities.OrderHistoryEvent) (entities.OrderHistoryEvent, error)
	// ListByOrderID returns the order's events newest-first.
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderHistoryEvent, error)
}
