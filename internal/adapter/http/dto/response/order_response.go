package response

import (
	"time"

	"taller_andino/internal/domain/entities"
)

type OrderResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Device   string `json:"device"`
	StageID  string `json:"stage_id"`

	AcceptedAt  time.Time  `json:"accepted_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	EstimatedCost   float64 `json:"estimated_cost"`
	EstimatedProfit float64 `json:"estimated_profit"`

	FinalCost     float64 `json:"final_cost,omitempty"`
	TotalProfit   float64 `json:"total_profit,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`

	Prepayment float64 `json:"prepayment"`
	BalanceDue float64 `json:"balance_due,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		ClientID:        o.ClientID,
		Device:          o.Device,
		StageID:         o.StageID,
		AcceptedAt:      o.AcceptedAt,
		CompletedAt:     o.CompletedAt,
		EstimatedCost:   o.EstimatedCost.InexactFloat64(),
		EstimatedProfit: o.EstimatedProfit.InexactFloat64(),
		Prepayment:      o.Prepayment.InexactFloat64(),
	}
	if o.Closed() {
		resp.FinalCost = o.FinalCost.InexactFloat64()
		resp.TotalProfit = o.TotalProfit.InexactFloat64()
		resp.PaymentMethod = string(o.PaymentMethod)
		resp.BalanceDue = o.BalanceDue.InexactFloat64()
	}
	return resp
}

// OrderDetailResponse carries the order, its items and the live fold over
// them. Subtotal and total discount exist only here; they are derived on
// read, never stored.
type OrderDetailResponse struct {
	Order         OrderResponse      `json:"order"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	TotalDiscount float64            `json:"total_discount"`
}

func FromOrderDetail(o entities.Order, items []LineItemResponse, totals entities.OrderTotals) OrderDetailResponse {
	return OrderDetailResponse{
		Order:         FromOrder(o),
		Items:         items,
		Subtotal:      totals.Subtotal.InexactFloat64(),
		TotalDiscount: totals.TotalDiscount.InexactFloat64(),
	}
}
