package response

import (
	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase"
)

type LineItemResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	UnitCost      float64 `json:"unit_cost"`
	UnitPrice     float64 `json:"unit_price"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`

	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
	TotalPrice   float64 `json:"total_price"`
	Profit       float64 `json:"profit"`

	InventoryID  string `json:"inventory_id,omitempty"`
	TechnicianID string `json:"technician_id,omitempty"`
}

func FromLineItem(i entities.LineItem, pricing usecase.LinePricing) LineItemResponse {
	return LineItemResponse{
		ID:            i.ID,
		OrderID:       i.OrderID,
		Kind:          string(i.Kind),
		Name:          i.Name,
		Quantity:      i.Quantity,
		UnitCost:      i.UnitCost.InexactFloat64(),
		UnitPrice:     i.UnitPrice.InexactFloat64(),
		DiscountType:  string(i.Discount.Type),
		DiscountValue: i.Discount.Value.InexactFloat64(),
		SellingPrice:  pricing.SellingPrice.InexactFloat64(),
		CostPrice:     pricing.CostPrice.InexactFloat64(),
		TotalPrice:    pricing.TotalPrice.InexactFloat64(),
		Profit:        pricing.Profit.InexactFloat64(),
		InventoryID:   i.InventoryID,
		TechnicianID:  i.TechnicianID,
	}
}
