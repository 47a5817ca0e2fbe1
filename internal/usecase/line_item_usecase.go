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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrItemNotFound          = errors.New("line item not found")
	ErrItemNotInOrder        = errors.New("line item does not belong to order")
	ErrOrderClosed           = errors.New("order is closed")
	ErrStockAdjustmentFailed = errors.New("stock adjustment failed")
)

// LineItemInput is the caller-supplied shape of a line item create/update.
type LineItemInput struct {
	Kind         entities.ItemKind
	Name         string
	Quantity     int
	UnitCost     decimal.Decimal
	UnitPrice    decimal.Decimal
	Discount     entities.Discount
	InventoryID  string
	TechnicianID string
}

// ILineItemUseCase exposes line item mutations on a repair order.
//
// Every mutation re-folds the whole item set and persists item + order totals
// in one repository transaction, so the stored aggregate always equals the
// item-level fold.

type ILineItemUseCase interface {
	AddItem(ctx context.Context, orderID string, input LineItemInput, actor string) (entities.LineItem, error)
	UpdateItem(ctx context.Context, orderID, itemID string, input LineItemInput, actor string) (entities.LineItem, error)
	DeleteItem(ctx context.Context, orderID, itemID, actor string) error
	ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error)
}

type LineItemUseCase struct {
	items     interfaces.ILineItemRepository
	orders    interfaces.IOrderRepository
	inventory interfaces.IInventoryGateway
	log       *zap.SugaredLogger
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(items interfaces.ILineItemRepository, orders interfaces.IOrderRepository, inventory interfaces.IInventoryGateway, log *zap.SugaredLogger) *LineItemUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LineItemUseCase{items: items, orders: orders, inventory: inventory, log: log}
}

func (u *LineItemUseCase) AddItem(ctx context.Context, orderID string, input LineItemInput, actor string) (entities.LineItem, error) {
	order, err := u.loadOpenOrder(ctx, orderID)
	if err != nil {
		return entities.LineItem{}, err
	}

	item, err := buildLineItem(order.ID, input)
	if err != nil {
		return entities.LineItem{}, err
	}
	item.ID = uuid.NewString()

	if err := u.persistWithTotals(ctx, item, order.ID); err != nil {
		return entities.LineItem{}, err
	}
	u.log.Infow("line item added", "order_id", order.ID, "item_id", item.ID, "kind", item.Kind, "actor", actor)

	// Stock deduction is an independent collaborator call after the
	// persistence transaction; a failure here leaves the item saved and the
	// stock untouched, and is surfaced to the caller as such.
	if item.Kind == entities.ItemKindPart && item.InventoryID != "" {
		if err := u.deductStock(ctx, item); err != nil {
			u.log.Errorw("stock deduction failed", "order_id", order.ID, "item_id", item.ID, "inventory_id", item.InventoryID, "err", err)
			return item, fmt.Errorf("%w: %v", ErrStockAdjustmentFailed, err)
		}
	}

	return item, nil
}

func (u *LineItemUseCase) UpdateItem(ctx context.Context, orderID, itemID string, input LineItemInput, actor string) (entities.LineItem, error) {
	order, err := u.loadOpenOrder(ctx, orderID)
	if err != nil {
		return entities.LineItem{}, err
	}

	existing, err := u.loadOrderItem(ctx, order.ID, itemID)
	if err != nil {
		return entities.LineItem{}, err
	}

	item, err := buildLineItem(order.ID, input)
	if err != nil {
		return entities.LineItem{}, err
	}
	item.ID = existing.ID

	if err := u.persistWithTotals(ctx, item, order.ID); err != nil {
		return entities.LineItem{}, err
	}
	u.log.Infow("line item updated", "order_id", order.ID, "item_id", item.ID, "actor", actor)

	return item, nil
}

func (u *LineItemUseCase) DeleteItem(ctx context.Context, orderID, itemID, actor string) error {
	order, err := u.loadOpenOrder(ctx, orderID)
	if err != nil {
		return err
	}

	existing, err := u.loadOrderItem(ctx, order.ID, itemID)
	if err != nil {
		return err
	}

	items, err := u.items.ListByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	remaining := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != existing.ID {
			remaining = append(remaining, it)
		}
	}
	totals, err := Aggregate(remaining)
	if err != nil {
		return err
	}

	event := entities.OrderHistoryEvent{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Actor:       actor,
		Type:        entities.HistoryEventItemDeleted,
		Description: fmt.Sprintf("Item removed: %s (x%d)", existing.Name, existing.Quantity),
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.items.DeleteWithTotals(ctx, existing.ID, order.ID, totals, event); err != nil {
		return err
	}
	u.log.Infow("line item deleted", "order_id", order.ID, "item_id", existing.ID, "actor", actor)

	// Restock mirrors the deduction done on creation.
	if existing.Kind == entities.ItemKindPart && existing.InventoryID != "" {
		if err := u.restock(ctx, existing); err != nil {
			u.log.Errorw("restock failed", "order_id", order.ID, "item_id", existing.ID, "inventory_id", existing.InventoryID, "err", err)
			return fmt.Errorf("%w: %v", ErrStockAdjustmentFailed, err)
		}
	}

	return nil
}

func (u *LineItemUseCase) ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.items.ListByOrderID(ctx, orderID)
}

// persistWithTotals re-folds the order's item set with the mutated item
// applied and writes both in one repository transaction.
func (u *LineItemUseCase) persistWithTotals(ctx context.Context, item entities.LineItem, orderID string) error {
	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	merged := make([]entities.LineItem, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if it.ID == item.ID {
			merged = append(merged, item)
			replaced = true
			continue
		}
		merged = append(merged, it)
	}
	if !replaced {
		merged = append(merged, item)
	}

	totals, err := Aggregate(merged)
	if err != nil {
		return err
	}
	return u.items.PutWithTotals(ctx, item, totals)
}

func (u *LineItemUseCase) loadOpenOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Closed() {
		return entities.Order{}, ErrOrderClosed
	}
	return order, nil
}

func (u *LineItemUseCase) loadOrderItem(ctx context.Context, orderID, itemID string) (entities.LineItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.LineItem{}, ErrItemNotFound
	}
	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if item.ID == "" {
		return entities.LineItem{}, ErrItemNotFound
	}
	if item.OrderID != orderID {
		return entities.LineItem{}, ErrItemNotInOrder
	}
	return item, nil
}

func (u *LineItemUseCase) deductStock(ctx context.Context, item entities.LineItem) error {
	if u.inventory == nil {
		return errors.New("inventory gateway not configured")
	}
	if err := u.inventory.DecrementStock(ctx, item.InventoryID, item.Quantity); err != nil {
		return err
	}
	notes := fmt.Sprintf("Order %s: part %s installed", item.OrderID, item.Name)
	return u.inventory.RecordMovement(ctx, item.InventoryID, interfaces.MovementTypeOut, item.Quantity, notes)
}

func (u *LineItemUseCase) restock(ctx context.Context, item entities.LineItem) error {
	if u.inventory == nil {
		return errors.New("inventory gateway not configured")
	}
	if err := u.inventory.IncrementStock(ctx, item.InventoryID, item.Quantity); err != nil {
		return err
	}
	notes := fmt.Sprintf("Order %s: part %s removed", item.OrderID, item.Name)
	return u.inventory.RecordMovement(ctx, item.InventoryID, interfaces.MovementTypeIn, item.Quantity, notes)
}

// buildLineItem validates the input through the pricing calculator and
// returns the entity without an ID.
func buildLineItem(orderID string, input LineItemInput) (entities.LineItem, error) {
	item := entities.LineItem{
		OrderID:      orderID,
		Kind:         input.Kind,
		Name:         strings.TrimSpace(input.Name),
		Quantity:     input.Quantity,
		UnitCost:     input.UnitCost,
		UnitPrice:    input.UnitPrice,
		Discount:     input.Discount,
		InventoryID:  strings.TrimSpace(input.InventoryID),
		TechnicianID: strings.TrimSpace(input.TechnicianID),
	}
	// No discount on the payload means a zero fixed discount.
	if item.Discount.Type == "" {
		item.Discount = entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.Zero}
	}

	if _, err := ComputeLine(item); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}
