package request

// DiscountRequest is the discount block carried on a line item payload.
type DiscountRequest struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// LineItemRequest creates or replaces one priced entry on an order.
//
// Quantity, prices and discount are validated by the pricing calculator, not
// here; binding only enforces presence of the identifying fields.
type LineItemRequest struct {
	Kind         string          `json:"kind" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required"`
	UnitCost     float64         `json:"unit_cost"`
	UnitPrice    float64         `json:"unit_price"`
	Discount     DiscountRequest `json:"discount"`
	InventoryID  string          `json:"inventory_id"`
	TechnicianID string          `json:"technician_id"`
	Actor        string          `json:"actor"`
}
