package repository

import (
	"context"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLineItemsTableName = "line_items"
	lineItemsOrderIDIndex     = "order_id-index"
)

type lineItemRecord struct {
	ID       string `dynamodbav:"id"`
	OrderID  string `dynamodbav:"order_id"`
	Kind     string `dynamodbav:"kind"`
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`

	UnitCost      string `dynamodbav:"unit_cost"`
	UnitPrice     string `dynamodbav:"unit_price"`
	DiscountType  string `dynamodbav:"discount_type"`
	DiscountValue string `dynamodbav:"discount_value"`

	InventoryID  string `dynamodbav:"inventory_id,omitempty"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Item writes also rewrite the owning order's live totals inside the same
// TransactWriteItems call, so the stored aggregate can never drift from the
// item set.

type LineItemDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	ordersTableName  string
	historyTableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
		ordersTableName:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		historyTableName: getenvDefault("ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var rec lineItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemRecord(rec), nil
}

func (r *LineItemDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec lineItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemRecord(rec))
	}
	return items, nil
}

// PutWithTotals upserts the item and rewrites the order's live totals in one
// transaction. The order must exist and must not be closed.
func (r *LineItemDynamoRepository) PutWithTotals(ctx context.Context, item entities.LineItem, totals entities.OrderTotals) error {
	itemAV, err := attributevalue.MarshalMap(toLineItemRecord(item))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      itemAV,
				},
			},
			{
				Update: r.orderTotalsUpdate(item.OrderID, totals),
			},
		},
	})
	return err
}

// DeleteWithTotals removes the item, rewrites the order's live totals and
// appends the item_deleted event in one transaction.
func (r *LineItemDynamoRepository) DeleteWithTotals(ctx context.Context, itemID, orderID string, totals entities.OrderTotals, event entities.OrderHistoryEvent) error {
	eventAV, err := attributevalue.MarshalMap(toHistoryRecord(event))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: itemID},
					},
				},
			},
			{
				Update: r.orderTotalsUpdate(orderID, totals),
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.historyTableName),
					Item:      eventAV,
				},
			},
		},
	})
	return err
}

func (r *LineItemDynamoRepository) orderTotalsUpdate(orderID string, totals entities.OrderTotals) *types.Update {
	return &types.Update{
		TableName: aws.String(r.ordersTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#completed_at)"),
		UpdateExpression:    aws.String("SET #estimated_cost = :estimated_cost, #estimated_profit = :estimated_profit"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#completed_at":     "completed_at",
			"#estimated_cost":   "estimated_cost",
			"#estimated_profit": "estimated_profit",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimated_cost":   &types.AttributeValueMemberS{Value: totals.EstimatedCost.String()},
			":estimated_profit": &types.AttributeValueMemberS{Value: totals.EstimatedProfit.String()},
		},
	}
}

func toLineItemRecord(i entities.LineItem) lineItemRecord {
	return lineItemRecord{
		ID:            i.ID,
		OrderID:       i.OrderID,
		Kind:          string(i.Kind),
		Name:          i.Name,
		Quantity:      i.Quantity,
		UnitCost:      i.UnitCost.String(),
		UnitPrice:     i.UnitPrice.String(),
		DiscountType:  string(i.Discount.Type),
		DiscountValue: i.Discount.Value.String(),
		InventoryID:   i.InventoryID,
		TechnicianID:  i.TechnicianID,
	}
}

func fromLineItemRecord(rec lineItemRecord) entities.LineItem {
	return entities.LineItem{
		ID:        rec.ID,
		OrderID:   rec.OrderID,
		Kind:      entities.ItemKind(rec.Kind),
		Name:      rec.Name,
		Quantity:  rec.Quantity,
		UnitCost:  parseDecimal(rec.UnitCost),
		UnitPrice: parseDecimal(rec.UnitPrice),
		Discount: entities.Discount{
			Type:  entities.DiscountType(rec.DiscountType),
			Value: parseDecimal(rec.DiscountValue),
		},
		InventoryID:  rec.InventoryID,
		TechnicianID: rec.TechnicianID,
	}
}
