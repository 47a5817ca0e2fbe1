package repository

import (
	"context"
	"errors"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderRecord struct {
	ID       string `dynamodbav:"id"`
	ClientID string `dynamodbav:"client_id"`
	Device   string `dynamodbav:"device"`
	StageID  string `dynamodbav:"stage_id"`

	AcceptedAt  string `dynamodbav:"accepted_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`

	EstimatedCost   string `dynamodbav:"estimated_cost"`
	EstimatedProfit string `dynamodbav:"estimated_profit"`

	FinalCost     string `dynamodbav:"final_cost,omitempty"`
	TotalProfit   string `dynamodbav:"total_profit,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`

	Prepayment string `dynamodbav:"prepayment"`
	BalanceDue string `dynamodbav:"balance_due,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - completed_at is written only by CloseOrder; its absence backs the
//     attribute_not_exists condition that makes the snapshot write-once.
//
// Window queries scan the table and filter timestamps in Go: the shop's
// order volume is small and RFC3339Nano strings do not compare reliably as
// DynamoDB filter expressions once trailing zeros are trimmed.

type OrderDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	historyTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		historyTableName: getenvDefault("ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.scanOrders(ctx, func(entities.Order) bool { return true })
}

func (r *OrderDynamoRepository) ListAcceptedBetween(ctx context.Context, from, to time.Time) ([]entities.Order, error) {
	return r.scanOrders(ctx, func(o entities.Order) bool {
		return !o.AcceptedAt.Before(from) && o.AcceptedAt.Before(to)
	})
}

func (r *OrderDynamoRepository) ListClosedBetween(ctx context.Context, from, to time.Time) ([]entities.Order, error) {
	return r.scanOrders(ctx, func(o entities.Order) bool {
		if o.CompletedAt == nil {
			return false
		}
		return !o.CompletedAt.Before(from) && o.CompletedAt.Before(to)
	})
}

func (r *OrderDynamoRepository) scanOrders(ctx context.Context, keep func(entities.Order) bool) ([]entities.Order, error) {
	orders := []entities.Order{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec orderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			o := fromOrderRecord(rec)
			if keep(o) {
				orders = append(orders, o)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdatePrepayment(ctx context.Context, id string, prepayment decimal.Decimal) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#completed_at)"),
		UpdateExpression:    aws.String("SET #prepayment = :prepayment"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#completed_at": "completed_at",
			"#prepayment":   "prepayment",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prepayment": &types.AttributeValueMemberS{Value: prepayment.String()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// ChangeStage moves the stage pointer and appends the status_change event in
// a single TransactWriteItems call. A failed transaction leaves the order in
// its prior stage with no event written.
func (r *OrderDynamoRepository) ChangeStage(ctx context.Context, orderID, stageID string, event entities.OrderHistoryEvent) error {
	eventAV, err := attributevalue.MarshalMap(toHistoryRecord(event))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: orderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#completed_at)"),
					UpdateExpression:    aws.String("SET #stage_id = :stage_id"),
					ExpressionAttributeNames: map[string]string{
						"#id":           "id",
						"#completed_at": "completed_at",
						"#stage_id":     "stage_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":stage_id": &types.AttributeValueMemberS{Value: stageID},
					},
				},
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

func (r *OrderDynamoRepository) UpdateStagePointer(ctx context.Context, orderID, stageID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage_id = :stage_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#stage_id": "stage_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage_id": &types.AttributeValueMemberS{Value: stageID},
		},
	})
	return err
}

// CloseOrder writes the stage pointer, the frozen snapshot and the
// status_change event in a single TransactWriteItems call, conditioned on
// completed_at being absent. A concurrent or repeated close cancels the
// transaction and the snapshot stays untouched.
func (r *OrderDynamoRepository) CloseOrder(ctx context.Context, orderID, stageID string, snap entities.ClosingSnapshot, event entities.OrderHistoryEvent) error {
	eventAV, err := attributevalue.MarshalMap(toHistoryRecord(event))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: orderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#completed_at)"),
					UpdateExpression: aws.String("SET #stage_id = :stage_id, #completed_at = :completed_at, " +
						"#final_cost = :final_cost, #total_profit = :total_profit, " +
						"#payment_method = :payment_method, #balance_due = :balance_due"),
					ExpressionAttributeNames: map[string]string{
						"#id":             "id",
						"#stage_id":       "stage_id",
						"#completed_at":   "completed_at",
						"#final_cost":     "final_cost",
						"#total_profit":   "total_profit",
						"#payment_method": "payment_method",
						"#balance_due":    "balance_due",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":stage_id":       &types.AttributeValueMemberS{Value: stageID},
						":completed_at":   &types.AttributeValueMemberS{Value: snap.CompletedAt.UTC().Format(time.RFC3339Nano)},
						":final_cost":     &types.AttributeValueMemberS{Value: snap.FinalCost.String()},
						":total_profit":   &types.AttributeValueMemberS{Value: snap.TotalProfit.String()},
						":payment_method": &types.AttributeValueMemberS{Value: string(snap.PaymentMethod)},
						":balance_due":    &types.AttributeValueMemberS{Value: snap.BalanceDue.String()},
					},
				},
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

func toOrderRecord(o entities.Order) orderRecord {
	rec := orderRecord{
		ID:              o.ID,
		ClientID:        o.ClientID,
		Device:          o.Device,
		StageID:         o.StageID,
		AcceptedAt:      o.AcceptedAt.UTC().Format(time.RFC3339Nano),
		EstimatedCost:   o.EstimatedCost.String(),
		EstimatedProfit: o.EstimatedProfit.String(),
		Prepayment:      o.Prepayment.String(),
	}
	if o.CompletedAt != nil {
		rec.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
		rec.FinalCost = o.FinalCost.String()
		rec.TotalProfit = o.TotalProfit.String()
		rec.PaymentMethod = string(o.PaymentMethod)
		rec.BalanceDue = o.BalanceDue.String()
	}
	return rec
}

func fromOrderRecord(rec orderRecord) entities.Order {
	acceptedAt, _ := time.Parse(time.RFC3339Nano, rec.AcceptedAt)
	o := entities.Order{
		ID:              rec.ID,
		ClientID:        rec.ClientID,
		Device:          rec.Device,
		StageID:         rec.StageID,
		AcceptedAt:      acceptedAt,
		EstimatedCost:   parseDecimal(rec.EstimatedCost),
		EstimatedProfit: parseDecimal(rec.EstimatedProfit),
		Prepayment:      parseDecimal(rec.Prepayment),
	}
	if rec.CompletedAt != "" {
		completedAt, _ := time.Parse(time.RFC3339Nano, rec.CompletedAt)
		o.CompletedAt = &completedAt
		o.FinalCost = parseDecimal(rec.FinalCost)
		o.TotalProfit = parseDecimal(rec.TotalProfit)
		o.PaymentMethod = entities.PaymentMethod(rec.PaymentMethod)
		o.BalanceDue = parseDecimal(rec.BalanceDue)
	}
	return o
}
