package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStageNotFound          = errors.New("stage not found")
	ErrPaymentMethodRequired  = errors.New("payment method required to close order")
	ErrPaymentMethodInvalid   = errors.New("invalid payment method")
	ErrPaymentMethodConflict  = errors.New("order already closed with a different payment method")
	ErrClosedOrderNotReopened = errors.New("closed order cannot be reopened")
)

// IStageTransitionUseCase is the order state machine.
//
// Transitions between active stages are unrestricted; each one writes exactly
// one status_change event. The transition into the terminal stage is guarded:
// it requires a payment method, freezes the financial snapshot exactly once,
// and is one-way.

type IStageTransitionUseCase interface {
	ChangeStage(ctx context.Context, orderID, stageID, actor string, paymentMethod entities.PaymentMethod) (entities.Order, error)
	ListStages(ctx context.Context) ([]entities.OrderStage, error)
}

type StageTransitionUseCase struct {
	orders interfaces.IOrderRepository
	items  interfaces.ILineItemRepository
	stages interfaces.IOrderStageRepository
	log    *zap.SugaredLogger
}

var _ IStageTransitionUseCase = (*StageTransitionUseCase)(nil)

func NewStageTransitionUseCase(orders interfaces.IOrderRepository, items interfaces.ILineItemRepository, stages interfaces.IOrderStageRepository, log *zap.SugaredLogger) *StageTransitionUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &StageTransitionUseCase{orders: orders, items: items, stages: stages, log: log}
}

func (u *StageTransitionUseCase) ChangeStage(ctx context.Context, orderID, stageID, actor string, paymentMethod entities.PaymentMethod) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return entities.Order{}, ErrStageNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	stage, err := u.stages.GetByID(ctx, stageID)
	if err != nil {
		return entities.Order{}, err
	}
	if stage.ID == "" {
		return entities.Order{}, ErrStageNotFound
	}

	if stage.Terminal() {
		return u.close(ctx, order, stage, actor, paymentMethod)
	}
	return u.move(ctx, order, stage, actor)
}

func (u *StageTransitionUseCase) ListStages(ctx context.Context) ([]entities.OrderStage, error) {
	return u.stages.EnsureDefaults(ctx)
}

// move handles a plain transition between active stages: a stage pointer
// update plus one audit event, written together.
func (u *StageTransitionUseCase) move(ctx context.Context, order entities.Order, stage entities.OrderStage, actor string) (entities.Order, error) {
	if order.Closed() {
		return entities.Order{}, ErrClosedOrderNotReopened
	}

	event := entities.OrderHistoryEvent{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Actor:       actor,
		Type:        entities.HistoryEventStatusChange,
		Description: fmt.Sprintf("Stage changed to %s", stage.Name),
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.orders.ChangeStage(ctx, order.ID, stage.ID, event); err != nil {
		return entities.Order{}, err
	}
	u.log.Infow("stage changed", "order_id", order.ID, "stage", stage.Name, "actor", actor)

	order.StageID = stage.ID
	return order, nil
}

// close handles the guarded terminal transition.
func (u *StageTransitionUseCase) close(ctx context.Context, order entities.Order, stage entities.OrderStage, actor string, paymentMethod entities.PaymentMethod) (entities.Order, error) {
	if paymentMethod == "" {
		return entities.Order{}, ErrPaymentMethodRequired
	}
	if !paymentMethod.Valid() {
		return entities.Order{}, ErrPaymentMethodInvalid
	}

	if order.Closed() {
		// Repeated close: idempotent on the frozen fields. The stage pointer
		// write still happens, the snapshot is never touched.
		if order.PaymentMethod != paymentMethod {
			return entities.Order{}, ErrPaymentMethodConflict
		}
		if err := u.orders.UpdateStagePointer(ctx, order.ID, stage.ID); err != nil {
			return entities.Order{}, err
		}
		order.StageID = stage.ID
		return order, nil
	}

	items, err := u.items.ListByOrderID(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	totals, err := Aggregate(items)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	snap := entities.ClosingSnapshot{
		FinalCost:     totals.EstimatedCost,
		TotalProfit:   totals.EstimatedProfit,
		PaymentMethod: paymentMethod,
		BalanceDue:    totals.EstimatedCost.Sub(order.Prepayment),
		CompletedAt:   now,
	}

	event := entities.OrderHistoryEvent{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Actor:       actor,
		Type:        entities.HistoryEventStatusChange,
		Description: fmt.Sprintf("Stage changed to %s (payment: %s)", stage.Name, paymentMethod),
		CreatedAt:   now,
	}

	if err := u.orders.CloseOrder(ctx, order.ID, stage.ID, snap, event); err != nil {
		return entities.Order{}, err
	}
	u.log.Infow("order closed", "order_id", order.ID, "payment_method", paymentMethod, "final_cost", snap.FinalCost.String(), "actor", actor)

	order.StageID = stage.ID
	order.CompletedAt = &now
	order.FinalCost = snap.FinalCost
	order.TotalProfit = snap.TotalProfit
	order.PaymentMethod = paymentMethod
	order.BalanceDue = snap.BalanceDue
	order.EstimatedCost = totals.EstimatedCost
	order.EstimatedProfit = totals.EstimatedProfit
	return order, nil
}
