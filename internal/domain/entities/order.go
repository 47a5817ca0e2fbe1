package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of settlement channels accepted at closing.
// Adding a method is an engine change, not configuration.

type PaymentMethod string

const (
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodBsCash PaymentMethod = "bs_cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBank, PaymentMethodCash, PaymentMethodBsCash:
		return true
	}
	return false
}

// PaymentMethods lists the accepted methods in a fixed display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodBank, PaymentMethodCash, PaymentMethodBsCash}
}

// Order is a repair order moving through the stage catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - completed_at is absent until the order is closed; the closing
//     transaction conditions on attribute_not_exists(completed_at) so the
//     financial snapshot is write-once at the storage layer too.
//
// Financial fields:
//   - EstimatedCost/EstimatedProfit are live figures re-folded from the item
//     set on every item mutation.
//   - FinalCost/TotalProfit/PaymentMethod/BalanceDue are frozen exactly once
//     at closing and never recomputed afterwards.
//   - Subtotal and total discount are derived from items on read, never
//     stored as independent truth.

type Order struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Device   string `json:"device"`
	StageID  string `json:"stage_id"`

	AcceptedAt  time.Time  `json:"accepted_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`

	FinalCost     decimal.Decimal `json:"final_cost"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`

	Prepayment decimal.Decimal `json:"prepayment"`
	BalanceDue decimal.Decimal `json:"balance_due"`
}

// Closed reports whether the frozen snapshot has been written.
func (o Order) Closed() bool {
	return o.CompletedAt != nil
}

// OrderTotals is the order-level fold over the item set.
type OrderTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	TotalDiscount   decimal.Decimal `json:"total_discount"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
}

// ClosingSnapshot carries the write-once financial fields fixed when an order
// reaches the terminal stage.
type ClosingSnapshot struct {
	FinalCost     decimal.Decimal
	TotalProfit   decimal.Decimal
	PaymentMethod PaymentMethod
	BalanceDue    decimal.Decimal
	CompletedAt   time.Time
}
