package response

import "taller_andino/internal/domain/entities"

type PaymentBucketResponse struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	Profit      float64 `json:"profit"`
}

type DashboardResponse struct {
	Date string `json:"date"`

	DevicesAccepted     int `json:"devices_accepted"`
	DevicesAcceptedPrev int `json:"devices_accepted_prev"`
	DevicesClosed       int `json:"devices_closed"`
	DevicesClosedPrev   int `json:"devices_closed_prev"`

	EstimatedRevenue float64 `json:"estimated_revenue"`

	ServiceProfit   float64 `json:"service_profit"`
	AccessoryProfit float64 `json:"accessory_profit"`

	AccessoryUnitsSold int `json:"accessory_units_sold"`

	AvgRepairHours float64 `json:"avg_repair_hours"`

	TopService   string `json:"top_service"`
	TopAccessory string `json:"top_accessory"`

	PaymentMethods map[string]PaymentBucketResponse `json:"payment_methods"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardResponse {
	buckets := make(map[string]PaymentBucketResponse, len(s.PaymentMethods))
	for method, b := range s.PaymentMethods {
		buckets[string(method)] = PaymentBucketResponse{
			Count:       b.Count,
			TotalAmount: b.TotalAmount.InexactFloat64(),
			Profit:      b.Profit.InexactFloat64(),
		}
	}
	return DashboardResponse{
		Date:                s.Date,
		DevicesAccepted:     s.DevicesAccepted,
		DevicesAcceptedPrev: s.DevicesAcceptedPrev,
		DevicesClosed:       s.DevicesClosed,
		DevicesClosedPrev:   s.DevicesClosedPrev,
		EstimatedRevenue:    s.EstimatedRevenue.InexactFloat64(),
		ServiceProfit:       s.ServiceProfit.InexactFloat64(),
		AccessoryProfit:     s.AccessoryProfit.InexactFloat64(),
		AccessoryUnitsSold:  s.AccessoryUnitsSold,
		AvgRepairHours:      s.AvgRepairHours.InexactFloat64(),
		TopService:          s.TopService,
		TopAccessory:        s.TopAccessory,
		PaymentMethods:      buckets,
	}
}
