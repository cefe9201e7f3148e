package repository

import (
	"context"
	"strings"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperationsTableName = "payment_operations"
	operationsResourceIDIndex  = "resource_id-index"
)

// DynamoAPI is the subset of the DynamoDB client the repository calls.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type operationRecordItem struct {
	ID         string   `dynamodbav:"id"`
	Operation  string   `dynamodbav:"operation"`
	ResourceID string   `dynamodbav:"resource_id"`
	RelatedIDs []string `dynamodbav:"related_ids,omitempty"`
	Outcome    string   `dynamodbav:"outcome"`
	Error      string   `dynamodbav:"error,omitempty"`
	Date       string   `dynamodbav:"date"`
}

// OperationLogDynamoRepository persists OperationRecord entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: resource_id-index (PK: resource_id, SK: date)

type OperationLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOperationLogRepository = (*OperationLogDynamoRepository)(nil)

func NewOperationLogDynamoRepository(ddb DynamoAPI, tableName string) *OperationLogDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultOperationsTableName
	}
	return &OperationLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OperationLogDynamoRepository) Create(ctx context.Context, rec entities.OperationRecord) (entities.OperationRecord, error) {
	av, err := attributevalue.MarshalMap(toOperationRecordItem(rec))
	if err != nil {
		return entities.OperationRecord{}, err
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
		return entities.OperationRecord{}, err
	}
	return rec, nil
}

func (r *OperationLogDynamoRepository) ListByResourceID(ctx context.Context, resourceID string) ([]entities.OperationRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(operationsResourceIDIndex),
		KeyConditionExpression: aws.String("resource_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: resourceID},
		},
		ScanIndexForward: aws.Bool(true),
	})

	records := make([]entities.OperationRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it operationRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromOperationRecordItem(it))
		}
	}
	return records, nil
}

func toOperationRecordItem(rec entities.OperationRecord) operationRecordItem {
	return operationRecordItem{
		ID:         rec.ID,
		Operation:  rec.Operation,
		ResourceID: rec.ResourceID,
		RelatedIDs: rec.RelatedIDs,
		Outcome:    string(rec.Outcome),
		Error:      rec.Error,
		Date:       rec.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromOperationRecordItem(it operationRecordItem) entities.OperationRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.OperationRecord{
		ID:         it.ID,
		Operation:  it.Operation,
		ResourceID: it.ResourceID,
		RelatedIDs: it.RelatedIDs,
		Outcome:    entities.OperationOutcome(it.Outcome),
		Error:      it.Error,
		Date:       dt,
	}
}
