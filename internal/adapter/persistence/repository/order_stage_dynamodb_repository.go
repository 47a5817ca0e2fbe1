package repository

import (
	"context"
	"sort"

	"taller_andino/internal/domain/entities"
	"taller_andino/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultStagesTableName = "order_stages"

type stageRecord struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Position int    `dynamodbav:"position"`
	Color    string `dynamodbav:"color"`
}

// OrderStageDynamoRepository persists the ordered stage catalog.
//
// Table requirements:
//   - PK: id (string)
//
// The stage kind (active/terminal) is not stored: it is resolved from the
// stage name exactly once, when a record is loaded, via
// entities.ResolveStageKind. Everything downstream reads OrderStage.Kind.

type OrderStageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderStageRepository = (*OrderStageDynamoRepository)(nil)

func NewOrderStageDynamoRepository(ddb *dynamodb.Client) *OrderStageDynamoRepository {
	return &OrderStageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_STAGES_TABLE", defaultStagesTableName),
	}
}

func (r *OrderStageDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderStage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderStage{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderStage{}, nil
	}

	var rec stageRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OrderStage{}, err
	}
	return fromStageRecord(rec), nil
}

func (r *OrderStageDynamoRepository) List(ctx context.Context) ([]entities.OrderStage, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	stages := make([]entities.OrderStage, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec stageRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		stages = append(stages, fromStageRecord(rec))
	}

	sort.Slice(stages, func(i, j int) bool {
		return stages[i].Position < stages[j].Position
	})
	return stages, nil
}

// EnsureDefaults seeds the default repair workflow when the catalog table is
// empty and returns the catalog sorted by position.
func (r *OrderStageDynamoRepository) EnsureDefaults(ctx context.Context) ([]entities.OrderStage, error) {
	stages, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stages) > 0 {
		return stages, nil
	}

	defaults := []stageRecord{
		{ID: uuid.NewString(), Name: "Recibido", Position: 1, Color: "#3b82f6"},
		{ID: uuid.NewString(), Name: "Diagnóstico", Position: 2, Color: "#f59e0b"},
		{ID: uuid.NewString(), Name: "En reparación", Position: 3, Color: "#8b5cf6"},
		{ID: uuid.NewString(), Name: "Listo", Position: 4, Color: "#10b981"},
		{ID: uuid.NewString(), Name: entities.TerminalStageName, Position: 5, Color: "#6b7280"},
	}

	for _, rec := range defaults {
		av, err := attributevalue.MarshalMap(rec)
		if err != nil {
			return nil, err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		}); err != nil {
			return nil, err
		}
	}

	return r.List(ctx)
}

func fromStageRecord(rec stageRecord) entities.OrderStage {
	return entities.OrderStage{
		ID:       rec.ID,
		Name:     rec.Name,
		Position: rec.Position,
		Color:    rec.Color,
		Kind:     entities.ResolveStageKind(rec.Name),
	}
}
