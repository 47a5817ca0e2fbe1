package entities

import "github.com/shopspring/decimal"

// PaymentBucket totals the closed orders settled through one payment method
// inside a KPI window.
type PaymentBucket struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Profit      decimal.Decimal `json:"profit"`
}

// DashboardSummary is the daily KPI rollup served to the dashboard.
//
// All monetary figures are rounded to 2 decimals at this final aggregation
// step and nowhere earlier. The Prev counters cover the previous calendar day
// for trend display.

type DashboardSummary struct {
	Date string `json:"date"`

	DevicesAccepted     int `json:"devices_accepted"`
	DevicesAcceptedPrev int `json:"devices_accepted_prev"`
	DevicesClosed       int `json:"devices_closed"`
	DevicesClosedPrev   int `json:"devices_closed_prev"`

	EstimatedRevenue decimal.Decimal `json:"estimated_revenue"`

	ServiceProfit   decimal.Decimal `json:"service_profit"`
	AccessoryProfit decimal.Decimal `json:"accessory_profit"`

	AccessoryUnitsSold int `json:"accessory_units_sold"`

	AvgRepairHours decimal.Decimal `json:"avg_repair_hours"`

	TopService   string `json:"top_service"`
	TopAccessory string `json:"top_accessory"`

	PaymentMethods map[PaymentMethod]PaymentBucket `json:"payment_methods"`
}
