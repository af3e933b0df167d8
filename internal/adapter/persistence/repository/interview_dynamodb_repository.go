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
	defaultInterviewsTableName = "interviews"
	interviewsRelationIDIndex  = "relation_id-index"
)

type interviewItem struct {
	ID                string `dynamodbav:"id"`
	RelationID        string `dynamodbav:"relation_id"`
	EmployerID        string `dynamodbav:"employer_id"`
	CandidateID       string `dynamodbav:"candidate_id"`
	Status            string `dynamodbav:"status"`
	ProposedTimesJSON string `dynamodbav:"proposed_times_json,omitempty"`
	ChosenTimeJSON    string `dynamodbav:"chosen_time_json,omitempty"`
	RoomID            string `dynamodbav:"room_id,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// InterviewDynamoRepository persists Interview entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: relation_id-index (PK: relation_id)

type InterviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInterviewRepository = (*InterviewDynamoRepository)(nil)

func NewInterviewDynamoRepository(ddb *dynamodb.Client) *InterviewDynamoRepository {
	return &InterviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTERVIEWS_TABLE", defaultInterviewsTableName),
	}
}

func (r *InterviewDynamoRepository) Create(ctx context.Context, i entities.Interview) (entities.Interview, error) {
	it, err := toInterviewItem(i)
	if err != nil {
		return entities.Interview{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Interview{}, err
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
		return entities.Interview{}, err
	}
	return i, nil
}

func (r *InterviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.Interview, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Interview{}, err
	}
	if len(out.Item) == 0 {
		return entities.Interview{}, nil
	}

	var it interviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Interview{}, err
	}
	return fromInterviewItem(it)
}

func (r *InterviewDynamoRepository) ListByRelationID(ctx context.Context, relationID string) ([]entities.Interview, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(interviewsRelationIDIndex),
		KeyConditionExpression: aws.String("relation_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: relationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Interview, 0, len(out.Items))
	for _, raw := range out.Items {
		var it interviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		i, err := fromInterviewItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, nil
}

func (r *InterviewDynamoRepository) Update(ctx context.Context, i entities.Interview) (entities.Interview, error) {
	i.UpdatedAt = time.Now().UTC()
	it, err := toInterviewItem(i)
	if err != nil {
		return entities.Interview{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Interview{}, err
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
			return entities.Interview{}, nil
		}
		return entities.Interview{}, err
	}
	return i, nil
}

func toInterviewItem(i entities.Interview) (interviewItem, error) {
	it := interviewItem{
		ID:          i.ID,
		RelationID:  i.RelationID,
		EmployerID:  i.EmployerID,
		CandidateID: i.CandidateID,
		Status:      string(i.Status),
		RoomID:      i.RoomID,
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(i.ProposedTimes) > 0 {
		proposedJSON, err := json.Marshal(i.ProposedTimes)
		if err != nil {
			return interviewItem{}, err
		}
		it.ProposedTimesJSON = string(proposedJSON)
	}
	if i.ChosenTime != nil {
		chosenJSON, err := json.Marshal(i.ChosenTime)
		if err != nil {
			return interviewItem{}, err
		}
		it.ChosenTimeJSON = string(chosenJSON)
	}
	return it, nil
}

func fromInterviewItem(it interviewItem) (entities.Interview, error) {
	var proposed []entities.ProposedTime
	if it.ProposedTimesJSON != "" {
		if err := json.Unmarshal([]byte(it.ProposedTimesJSON), &proposed); err != nil {
			return entities.Interview{}, err
		}
	}
	var chosen *entities.ProposedTime
	if it.ChosenTimeJSON != "" {
		chosen = &entities.ProposedTime{}
		if err := json.Unmarshal([]byte(it.ChosenTimeJSON), chosen); err != nil {
			return entities.Interview{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Interview{
		ID:            it.ID,
		RelationID:    it.RelationID,
		EmployerID:    it.EmployerID,
		CandidateID:   it.CandidateID,
		Status:        entities.InterviewStatus(it.Status),
		ProposedTimes: proposed,
		ChosenTime:    chosen,
		RoomID:        it.RoomID,
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
