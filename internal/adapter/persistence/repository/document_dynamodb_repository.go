package repository

import (
	"context"
	"errors"
	"time"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "documents"
	documentsCandidateIDIndex = "candidate_id-index"
)

type documentItem struct {
	ID          string `dynamodbav:"id"`
	CandidateID string `dynamodbav:"candidate_id"`
	Type        string `dynamodbav:"type"`
	FileName    string `dynamodbav:"file_name"`
	StorageKey  string `dynamodbav:"storage_key,omitempty"`
	Status      string `dynamodbav:"status"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
}

// DocumentDynamoRepository persists Document metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: candidate_id-index (PK: candidate_id)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	it := toDocumentItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByCandidateID(ctx context.Context, candidateID string) ([]entities.Document, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsCandidateIDIndex),
		KeyConditionExpression: aws.String("candidate_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: candidateID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Document, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDocumentItem(it))
	}
	return items, nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:          d.ID,
		CandidateID: d.CandidateID,
		Type:        string(d.Type),
		FileName:    d.FileName,
		StorageKey:  d.StorageKey,
		Status:      string(d.Status),
		UploadedAt:  d.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.Document{
		ID:          it.ID,
		CandidateID: it.CandidateID,
		Type:        entities.DocumentType(it.Type),
		FileName:    it.FileName,
		StorageKey:  it.StorageKey,
		Status:      entities.DocumentStatus(it.Status),
		UploadedAt:  uploadedAt,
	}
}
