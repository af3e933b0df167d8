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

const defaultRelationsTableName = "relations"

type relationItem struct {
	EmployerID  string `dynamodbav:"employer_id"`
	CandidateID string `dynamodbav:"candidate_id"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// RelationDynamoRepository persists pipeline relations in DynamoDB.
//
// Table requirements:
//   - PK: employer_id (string)
//   - SK: candidate_id (string)
//
// One employer's whole board is a single-partition Query, which keeps the
// pipeline listing cheap.

type RelationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRelationRepository = (*RelationDynamoRepository)(nil)

func NewRelationDynamoRepository(ddb *dynamodb.Client) *RelationDynamoRepository {
	return &RelationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RELATIONS_TABLE", defaultRelationsTableName),
	}
}

func (r *RelationDynamoRepository) Create(ctx context.Context, rel entities.Relation) (entities.Relation, error) {
	it := toRelationItem(rel)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Relation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#employer_id) AND attribute_not_exists(#candidate_id)"),
		ExpressionAttributeNames: map[string]string{
			"#employer_id":  "employer_id",
			"#candidate_id": "candidate_id",
		},
	})
	if err != nil {
		return entities.Relation{}, err
	}
	return rel, nil
}

func (r *RelationDynamoRepository) Get(ctx context.Context, employerID, candidateID string) (entities.Relation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employer_id":  &types.AttributeValueMemberS{Value: employerID},
			"candidate_id": &types.AttributeValueMemberS{Value: candidateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Relation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Relation{}, nil
	}

	var it relationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Relation{}, err
	}
	return fromRelationItem(it), nil
}

func (r *RelationDynamoRepository) ListByEmployerID(ctx context.Context, employerID string) ([]entities.Relation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("employer_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: employerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Relation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it relationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRelationItem(it))
	}
	return items, nil
}

func (r *RelationDynamoRepository) UpdateStatus(ctx context.Context, employerID, candidateID string, status entities.RelationStatus) (entities.Relation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employer_id":  &types.AttributeValueMemberS{Value: employerID},
			"candidate_id": &types.AttributeValueMemberS{Value: candidateID},
		},
		ConditionExpression: aws.String("attribute_exists(#employer_id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#employer_id": "employer_id",
			"#status":      "status",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Relation{}, nil
		}
		return entities.Relation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Relation{}, nil
	}
	var it relationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Relation{}, err
	}
	return fromRelationItem(it), nil
}

func toRelationItem(rel entities.Relation) relationItem {
	return relationItem{
		EmployerID:  rel.EmployerID,
		CandidateID: rel.CandidateID,
		Status:      string(rel.Status),
		CreatedAt:   rel.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   rel.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRelationItem(it relationItem) entities.Relation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Relation{
		EmployerID:  it.EmployerID,
		CandidateID: it.CandidateID,
		Status:      entities.RelationStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
