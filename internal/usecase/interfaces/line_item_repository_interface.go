package interfaces

import (
	"context"

	"taller_andino/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// Item writes always carry the re-folded order totals so item + order land in
// one TransactWriteItems call; the stored totals can never drift from the
// item set.

type ILineItemRepository interface {
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.LineItem, error)

	// PutWithTotals upserts the item and rewrites the order's live totals in
	// one transaction.
	PutWithTotals(ctx context.Context, item entities.LineItem, totals entities.OrderTotals) error

	// DeleteWithTotals removes the item, rewrites the order's live totals and
	// appends the item_deleted event in one transaction.
	DeleteWithTotals(ctx context.Context, itemID, orderID string, totals entities.OrderTotals, event entities.OrderHistoryEvent) error
}
