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

const defaultCandidatesTableName = "candidates"

type candidateItem struct {
	ID                        string `dynamodbav:"id"`
	Email                     string `dynamodbav:"email"`
	ProfileJSON               string `dynamodbav:"profile_json"`
	VerificationStatus        string `dynamodbav:"verification_status"`
	RejectionReason           string `dynamodbav:"rejection_reason,omitempty"`
	VerificationPaymentStatus string `dynamodbav:"verification_payment_status,omitempty"`
	CreatedAt                 string `dynamodbav:"created_at"`
	UpdatedAt                 string `dynamodbav:"updated_at"`
}

// CandidateDynamoRepository persists Candidate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The profile is stored as a JSON blob; nothing queries inside it, so a
// single attribute keeps the item shape stable across profile changes.

type CandidateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICandidateRepository = (*CandidateDynamoRepository)(nil)

func NewCandidateDynamoRepository(ddb *dynamodb.Client) *CandidateDynamoRepository {
	return &CandidateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CANDIDATES_TABLE", defaultCandidatesTableName),
	}
}

func (r *CandidateDynamoRepository) Create(ctx context.Context, c entities.Candidate) (entities.Candidate, error) {
	it, err := toCandidateItem(c)
	if err != nil {
		return entities.Candidate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Candidate{}, err
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
		return entities.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Candidate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Candidate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Candidate{}, nil
	}

	var it candidateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Candidate{}, err
	}
	return fromCandidateItem(it)
}

func (r *CandidateDynamoRepository) UpdateProfile(ctx context.Context, id string, profile entities.CandidateProfile) (entities.Candidate, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return entities.Candidate{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #profile_json = :profile_json, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":profile_json": &types.AttributeValueMemberS{Value: string(profileJSON)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#profile_json": "profile_json",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CandidateDynamoRepository) UpdateVerification(ctx context.Context, id string, status entities.VerificationStatus, rejectionReason string) (entities.Candidate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #verification_status = :verification_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":verification_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#verification_status": "verification_status",
			"#updated_at":          "updated_at",
			"#rejection_reason":    "rejection_reason",
		}
		if rejectionReason != "" {
			expr += ", #rejection_reason = :rejection_reason"
			vals[":rejection_reason"] = &types.AttributeValueMemberS{Value: rejectionReason}
		} else {
			expr += " REMOVE #rejection_reason"
		}
		return expr, vals, names
	})
}

func (r *CandidateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Candidate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Candidate{}, nil
		}
		return entities.Candidate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Candidate{}, nil
	}
	var it candidateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Candidate{}, err
	}
	return fromCandidateItem(it)
}

func toCandidateItem(c entities.Candidate) (candidateItem, error) {
	profileJSON, err := json.Marshal(c.Profile)
	if err != nil {
		return candidateItem{}, err
	}
	return candidateItem{
		ID:                        c.ID,
		Email:                     c.Email,
		ProfileJSON:               string(profileJSON),
		VerificationStatus:        string(c.VerificationStatus),
		RejectionReason:           c.RejectionReason,
		VerificationPaymentStatus: c.VerificationPaymentStatus,
		CreatedAt:                 c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                 c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCandidateItem(it candidateItem) (entities.Candidate, error) {
	var profile entities.CandidateProfile
	if it.ProfileJSON != "" {
		if err := json.Unmarshal([]byte(it.ProfileJSON), &profile); err != nil {
			return entities.Candidate{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Candidate{
		ID:                        it.ID,
		Email:                     it.Email,
		Profile:                   profile,
		VerificationStatus:        entities.VerificationStatus(it.VerificationStatus),
		RejectionReason:           it.RejectionReason,
		VerificationPaymentStatus: it.VerificationPaymentStatus,
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
	}, nil
}
