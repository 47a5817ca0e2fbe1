package repository

import (
	"context"
	"sort"
	"time"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "order_history"
	historyOrderIDIndex     = "order_id-index"
)

type historyRecord struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	Actor       string `dynamodbav:"actor"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// OrderHistoryDynamoRepository persists the append-only audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Insert is the only write path. Stage and item transactions write their
// events directly through TransactWriteItems; this repository shares the
// record mapping with them.

type OrderHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderHistoryRepository = (*OrderHistoryDynamoRepository)(nil)

func NewOrderHistoryDynamoRepository(ddb *dynamodb.Client) *OrderHistoryDynamoRepository {
	return &OrderHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *OrderHistoryDynamoRepository) Insert(ctx context.Context, event entities.OrderHistoryEvent) (entities.OrderHistoryEvent, error) {
	av, err := attributevalue.MarshalMap(toHistoryRecord(event))
	if err != nil {
		return entities.OrderHistoryEvent{}, err
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
		return entities.OrderHistoryEvent{}, err
	}
	return event, nil
}

func (r *OrderHistoryDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderHistoryEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.OrderHistoryEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec historyRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		events = append(events, fromHistoryRecord(rec))
	}

	// Newest-first for display.
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func toHistoryRecord(e entities.OrderHistoryEvent) historyRecord {
	return historyRecord{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Actor:       e.Actor,
		Type:        string(e.Type),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromHistoryRecord(rec historyRecord) entities.OrderHistoryEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.OrderHistoryEvent{
		ID:          rec.ID,
		OrderID:     rec.OrderID,
		Actor:       rec.Actor,
		Type:        entities.HistoryEventType(rec.Type),
		Description: rec.Description,
		CreatedAt:   createdAt,
	}
}
