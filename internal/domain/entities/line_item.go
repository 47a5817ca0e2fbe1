package entities

import "github.com/shopspring/decimal"

// ItemKind classifies a line item attached to a repair order.
//
// Domain notes:
//   - Services are pure labor: their full total counts as profit.
//   - Parts and accessories carry a unit cost that is subtracted from profit.
//   - Only parts may be linked to a stocked inventory record.

type ItemKind string

const (
	ItemKindService   ItemKind = "service"
	ItemKindPart      ItemKind = "part"
	ItemKindAccessory ItemKind = "accessory"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindService, ItemKindPart, ItemKindAccessory:
		return true
	}
	return false
}

// DiscountType selects how a line discount is interpreted.

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeFixed
}

// Discount is a per-line discount. Value is a percentage for
// DiscountTypePercent and an absolute amount for DiscountTypeFixed.
type Discount struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// LineItem is one priced entry (service, part or accessory) owned exclusively
// by its order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Monetary representation:
//   - All currency fields are decimals; nothing is rounded at line level.
//     Rounding to 2 decimals happens only at the order aggregate and on
//     dashboard output.
//
// Deletion is hard: a removed item disappears from aggregation immediately.

type LineItem struct {
	ID       string   `json:"id"`
	OrderID  string   `json:"order_id"`
	Kind     ItemKind `json:"kind"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`

	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  Discount        `json:"discount"`

	// InventoryID links a part to a stocked inventory record. Empty when the
	// item is not stocked.
	InventoryID  string `json:"inventory_id,omitempty"`
	TechnicianID string `json:"technician_id,omitempty"`
}

// SellingPrice is unit_price x quantity, before any discount.
func (i LineItem) SellingPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CostPrice is unit_cost x quantity.
func (i LineItem) CostPrice() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
