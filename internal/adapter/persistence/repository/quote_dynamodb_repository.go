package repository

import (
	"context"
	"encoding/json"
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
	defaultQuotesTableName = "quotes"
	quotesRelationIDIndex  = "relation_id-index"
)

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	RelationID  string `dynamodbav:"relation_id"`
	EmployerID  string `dynamodbav:"employer_id"`
	CandidateID string `dynamodbav:"candidate_id"`
	Status      string `dynamodbav:"status"`
	OptionsJSON string `dynamodbav:"options_json,omitempty"`
	RequestedAt string `dynamodbav:"requested_at"`
	ResolvedAt  string `dynamodbav:"resolved_at,omitempty"`
}

// QuoteDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: relation_id-index (PK: relation_id)
//
// Options are stored as a JSON blob; the open-quote probe only filters on
// status, never inside the options.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) GetOpenByRelationID(ctx context.Context, relationID string) (entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRelationIDIndex),
		KeyConditionExpression: aws.String("relation_id = :rid"),
		FilterExpression:       aws.String("#status IN (:pending, :approved)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":      &types.AttributeValueMemberS{Value: relationID},
			":pending":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":approved": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusApproved)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByRelationID(ctx context.Context, relationID string) ([]entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRelationIDIndex),
		KeyConditionExpression: aws.String("relation_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: relationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.QuoteRequest) (quoteItem, error) {
	it := quoteItem{
		ID:          q.ID,
		RelationID:  q.RelationID,
		EmployerID:  q.EmployerID,
		CandidateID: q.CandidateID,
		Status:      string(q.Status),
		RequestedAt: q.RequestedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(q.Options) > 0 {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return quoteItem{}, err
		}
		it.OptionsJSON = string(optionsJSON)
	}
	if q.ResolvedAt != nil {
		it.ResolvedAt = q.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromQuoteItem(it quoteItem) (entities.QuoteRequest, error) {
	var options []entities.QuoteOption
	if it.OptionsJSON != "" {
		if err := json.Unmarshal([]byte(it.OptionsJSON), &options); err != nil {
			return entities.QuoteRequest{}, err
		}
	}
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	var resolvedAt *time.Time
	if it.ResolvedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ResolvedAt); err == nil {
			resolvedAt = &t
		}
	}
	return entities.QuoteRequest{
		ID:          it.ID,
		RelationID:  it.RelationID,
		EmployerID:  it.EmployerID,
		CandidateID: it.CandidateID,
		Status:      entities.QuoteStatus(it.Status),
		Options:     options,
		RequestedAt: requestedAt,
		ResolvedAt:  resolvedAt,
	}, nil
}
