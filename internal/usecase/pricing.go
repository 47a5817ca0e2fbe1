package usecase

import (
	"errors"
	"strings"

	"taller_andino/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItemName      = errors.New("invalid item name")
	ErrInvalidItemKind      = errors.New("invalid item kind")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidUnitPrice     = errors.New("invalid unit price")
	ErrInvalidUnitCost      = errors.New("invalid unit cost")
	ErrInvalidDiscount      = errors.New("invalid discount")
	ErrDiscountExceedsPrice = errors.New("discount exceeds selling price")
)

var hundred = decimal.NewFromInt(100)

// LinePricing holds the derived financial figures of one line item.
type LinePricing struct {
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	Discount     decimal.Decimal
	TotalPrice   decimal.Decimal
	Profit       decimal.Decimal
}

// ComputeLine derives a line item's totals and profit.
//
// Pure and deterministic: recomputing from the same inputs always yields the
// same outputs, so the UI can call it on every keystroke. No rounding is
// applied here; 2-decimal rounding happens when figures are persisted at the
// order aggregate or served by the dashboard.
//
// A discount larger than the selling price is rejected rather than clamped;
// a negative line total never leaves this function.
func ComputeLine(item entities.LineItem) (LinePricing, error) {
	if strings.TrimSpace(item.Name) == "" {
		return LinePricing{}, ErrInvalidItemName
	}
	if !item.Kind.Valid() {
		return LinePricing{}, ErrInvalidItemKind
	}
	if item.Quantity < 1 {
		return LinePricing{}, ErrInvalidQuantity
	}
	if item.UnitPrice.IsNegative() {
		return LinePricing{}, ErrInvalidUnitPrice
	}
	if item.UnitCost.IsNegative() {
		return LinePricing{}, ErrInvalidUnitCost
	}
	if !item.Discount.Type.Valid() || item.Discount.Value.IsNegative() {
		return LinePricing{}, ErrInvalidDiscount
	}

	selling := item.SellingPrice()
	cost := item.CostPrice()

	var discount decimal.Decimal
	switch item.Discount.Type {
	case entities.DiscountTypePercent:
		if item.Discount.Value.GreaterThan(hundred) {
			return LinePricing{}, ErrDiscountExceedsPrice
		}
		discount = selling.Mul(item.Discount.Value).Div(hundred)
	case entities.DiscountTypeFixed:
		if item.Discount.Value.GreaterThan(selling) {
			return LinePricing{}, ErrDiscountExceedsPrice
		}
		discount = item.Discount.Value
	}

	total := selling.Sub(discount)

	profit := total
	if item.Kind != entities.ItemKindService {
		profit = total.Sub(cost)
	}

	return LinePricing{
		SellingPrice: selling,
		CostPrice:    cost,
		Discount:     discount,
		TotalPrice:   total,
		Profit:       profit,
	}, nil
}

// Aggregate folds a full item set into the order-level figures.
//
// There is no incremental path: every item mutation re-reads and re-folds the
// whole set, which is bounded by order size (tens of items) and immune to
// delta-update drift. The fold is order-independent.
func Aggregate(items []entities.LineItem) (entities.OrderTotals, error) {
	totals := entities.OrderTotals{
		Subtotal:        decimal.Zero,
		TotalDiscount:   decimal.Zero,
		EstimatedCost:   decimal.Zero,
		EstimatedProfit: decimal.Zero,
	}

	for _, item := range items {
		pricing, err := ComputeLine(item)
		if err != nil {
			return entities.OrderTotals{}, err
		}
		totals.Subtotal = totals.Subtotal.Add(pricing.SellingPrice)
		totals.TotalDiscount = totals.TotalDiscount.Add(pricing.Discount)
		totals.EstimatedCost = totals.EstimatedCost.Add(pricing.TotalPrice)
		totals.EstimatedProfit = totals.EstimatedProfit.Add(pricing.Profit)
	}

	// Persisted aggregate figures carry 2-decimal precision.
	totals.Subtotal = totals.Subtotal.Round(2)
	totals.TotalDiscount = totals.TotalDiscount.Round(2)
	totals.EstimatedCost = totals.EstimatedCost.Round(2)
	totals.EstimatedProfit = totals.EstimatedProfit.Round(2)

	return totals, nil
}
