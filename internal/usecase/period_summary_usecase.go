package usecase

import (
	"context"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IPeriodSummaryUseCase builds the time-windowed KPI rollups shown on the
// dashboard. It reads persisted orders and their items; it never mutates
// anything.

type IPeriodSummaryUseCase interface {
	Summarize(ctx context.Context, day time.Time) (entities.DashboardSummary, error)
}

type PeriodSummaryUseCase struct {
	orders interfaces.IOrderRepository
	items  interfaces.ILineItemRepository
}

var _ IPeriodSummaryUseCase = (*PeriodSummaryUseCase)(nil)

func NewPeriodSummaryUseCase(orders interfaces.IOrderRepository, items interfaces.ILineItemRepository) *PeriodSummaryUseCase {
	return &PeriodSummaryUseCase{orders: orders, items: items}
}

// Summarize computes the KPI figures for the calendar day containing `day`
// (UTC), with the previous day's counts for trend display.
//
// Monetary outputs are rounded to 2 decimals here, at the final aggregation
// step, and nowhere earlier. "Most frequent" ties break lexically so the
// result is deterministic.
func (u *PeriodSummaryUseCase) Summarize(ctx context.Context, day time.Time) (entities.DashboardSummary, error) {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	prevStart := dayStart.Add(-24 * time.Hour)

	accepted, err := u.orders.ListAcceptedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	acceptedPrev, err := u.orders.ListAcceptedBetween(ctx, prevStart, dayStart)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	closed, err := u.orders.ListClosedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	closedPrev, err := u.orders.ListClosedBetween(ctx, prevStart, dayStart)
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	summary := entities.DashboardSummary{
		Date:                dayStart.Format("2006-01-02"),
		DevicesAccepted:     len(accepted),
		DevicesAcceptedPrev: len(acceptedPrev),
		DevicesClosed:       len(closed),
		DevicesClosedPrev:   len(closedPrev),
		PaymentMethods:      make(map[entities.PaymentMethod]entities.PaymentBucket, 3),
	}

	revenue := decimal.Zero
	for _, o := range accepted {
		revenue = revenue.Add(o.EstimatedCost)
	}

	serviceProfit := decimal.Zero
	accessoryProfit := decimal.Zero
	accessoryUnits := 0
	serviceCounts := map[string]int{}
	accessoryCounts := map[string]int{}

	for _, method := range entities.PaymentMethods() {
		summary.PaymentMethods[method] = entities.PaymentBucket{
			TotalAmount: decimal.Zero,
			Profit:      decimal.Zero,
		}
	}

	totalHours := 0.0
	withDuration := 0

	for _, o := range closed {
		bucket := summary.PaymentMethods[o.PaymentMethod]
		bucket.Count++
		bucket.TotalAmount = bucket.TotalAmount.Add(o.FinalCost)
		bucket.Profit = bucket.Profit.Add(o.TotalProfit)
		summary.PaymentMethods[o.PaymentMethod] = bucket

		if o.CompletedAt != nil && !o.AcceptedAt.IsZero() {
			totalHours += o.CompletedAt.Sub(o.AcceptedAt).Hours()
			withDuration++
		}

		orderItems, err := u.items.ListByOrderID(ctx, o.ID)
		if err != nil {
			return entities.DashboardSummary{}, err
		}
		for _, item := range orderItems {
			pricing, err := ComputeLine(item)
			if err != nil {
				return entities.DashboardSummary{}, err
			}
			switch item.Kind {
			case entities.ItemKindService:
				serviceProfit = serviceProfit.Add(pricing.Profit)
				serviceCounts[item.Name]++
			case entities.ItemKindAccessory:
				accessoryProfit = accessoryProfit.Add(pricing.Profit)
				accessoryUnits += item.Quantity
				accessoryCounts[item.Name]++
			}
		}
	}

	summary.EstimatedRevenue = revenue.Round(2)
	summary.ServiceProfit = serviceProfit.Round(2)
	summary.AccessoryProfit = accessoryProfit.Round(2)
	summary.AccessoryUnitsSold = accessoryUnits
	summary.TopService = mostFrequent(serviceCounts)
	summary.TopAccessory = mostFrequent(accessoryCounts)

	if withDuration > 0 {
		summary.AvgRepairHours = decimal.NewFromFloat(totalHours / float64(withDuration)).Round(2)
	} else {
		summary.AvgRepairHours = decimal.Zero
	}

	for method, bucket := range summary.PaymentMethods {
		bucket.TotalAmount = bucket.TotalAmount.Round(2)
		bucket.Profit = bucket.Profit.Round(2)
		summary.PaymentMethods[method] = bucket
	}

	return summary, nil
}

// mostFrequent returns the name with the highest count, breaking ties by the
// lexically smaller name. Empty map yields "".
func mostFrequent(counts map[string]int) string {
	best := ""
	bestCount := 0
	for name, count := range counts {
		if count > bestCount || (count == bestCount && bestCount > 0 && name < best) {
			best = name
			bestCount = count
		}
	}
	return best
}
