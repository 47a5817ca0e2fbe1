package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidDevice     = errors.New("invalid device description")
	ErrInvalidPrepayment = errors.New("invalid prepayment")
	ErrEmptyStageCatalog = errors.New("stage catalog is empty")
)

// OrderInput is the caller-supplied shape of a new repair order.
type OrderInput struct {
	ClientID   string
	Device     string
	Prepayment decimal.Decimal
}

// OrderDetail bundles an order with its items and the live fold over them.
// Subtotal and total discount only exist here; they are never stored as
// independent truth.
type OrderDetail struct {
	Order  entities.Order
	Items  []entities.LineItem
	Totals entities.OrderTotals
}

// IOrderUseCase exposes order lifecycle operations outside of stage
// transitions.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, input OrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (OrderDetail, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	SetPrepayment(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
	items  interfaces.ILineItemRepository
	stages interfaces.IOrderStageRepository
	log    *zap.SugaredLogger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, items interfaces.ILineItemRepository, stages interfaces.IOrderStageRepository, log *zap.SugaredLogger) *OrderUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &OrderUseCase{orders: orders, items: items, stages: stages, log: log}
}

// CreateOrder registers a new order in the first catalog stage with zero
// items. AcceptedAt is stamped here and never changes.
func (u *OrderUseCase) CreateOrder(ctx context.Context, input OrderInput) (entities.Order, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		return entities.Order{}, ErrInvalidClientID
	}
	device := strings.TrimSpace(input.Device)
	if device == "" {
		return entities.Order{}, ErrInvalidDevice
	}
	if input.Prepayment.IsNegative() {
		return entities.Order{}, ErrInvalidPrepayment
	}

	catalog, err := u.stages.EnsureDefaults(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if len(catalog) == 0 {
		return entities.Order{}, ErrEmptyStageCatalog
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		ClientID:        clientID,
		Device:          device,
		StageID:         catalog[0].ID,
		AcceptedAt:      time.Now().UTC(),
		EstimatedCost:   decimal.Zero,
		EstimatedProfit: decimal.Zero,
		Prepayment:      input.Prepayment,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Infow("order created", "order_id", created.ID, "client_id", created.ClientID, "stage_id", created.StageID)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (OrderDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetail{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	if order.ID == "" {
		return OrderDetail{}, ErrOrderNotFound
	}

	items, err := u.items.ListByOrderID(ctx, order.ID)
	if err != nil {
		return OrderDetail{}, err
	}
	totals, err := Aggregate(items)
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{Order: order, Items: items, Totals: totals}, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.orders.List(ctx)
}

// SetPrepayment records the amount collected before completion. Rejected once
// the order is closed, because balance due is part of the frozen snapshot.
func (u *OrderUseCase) SetPrepayment(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if amount.IsNegative() {
		return entities.Order{}, ErrInvalidPrepayment
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Closed() {
		return entities.Order{}, ErrOrderClosed
	}

	return u.orders.UpdatePrepayment(ctx, id, amount)
}
