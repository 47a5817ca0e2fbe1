package interfaces

import (
	"context"
	"time"

	"taller_andino/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Multi-step writes (stage change + history, closing + snapshot + history)
// are single methods so the repository can run them inside one
// TransactWriteItems call; a failure leaves the order untouched in its prior
// stage.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)

	// ListAcceptedBetween returns orders whose accepted_at falls in [from, to).
	ListAcceptedBetween(ctx context.Context, from, to time.Time) ([]entities.Order, error)
	// ListClosedBetween returns orders whose completed_at falls in [from, to).
	ListClosedBetween(ctx context.Context, from, to time.Time) ([]entities.Order, error)

	UpdatePrepayment(ctx context.Context, id string, prepayment decimal.Decimal) (entities.Order, error)

	// ChangeStage moves the stage pointer and appends the status_change event
	// in one transaction.
	ChangeStage(ctx context.Context, orderID, stageID string, event entities.OrderHistoryEvent) error

	// UpdateStagePointer rewrites only the stage pointer. Used for the
	// idempotent re-close, which must not touch the frozen snapshot.
	UpdateStagePointer(ctx context.Context, orderID, stageID string) error

	// CloseOrder writes stage pointer, frozen snapshot and status_change event
	// in one transaction, conditioned on completed_at being absent.
	CloseOrder(ctx context.Context, orderID, stageID string, snap entities.ClosingSnapshot, event entities.OrderHistoryEvent) error
}
