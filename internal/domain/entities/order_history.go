package entities

import "time"

// HistoryEventType classifies an audit trail entry.

type HistoryEventType string

const (
	HistoryEventComment      HistoryEventType = "comment"
	HistoryEventStatusChange HistoryEventType = "status_change"
	HistoryEventItemDeleted  HistoryEventType = "item_deleted"
)

// OrderHistoryEvent is one append-only audit record attached to an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Events are never mutated or deleted once written; no update API exists
// anywhere in the engine.

type OrderHistoryEvent struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"order_id"`
	Actor       string           `json:"actor"`
	Type        HistoryEventType `json:"type"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}
