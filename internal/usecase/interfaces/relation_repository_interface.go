package interfaces

import (
	"context"
	"talentbruecke/internal/domain/entities"
)

// IRelationRepository abstracts DynamoDB persistence for the
// employer/candidate pipeline relation.
//
// Relations use a composite key (employer_id, candidate_id) and are never
// deleted, only status-transitioned.

type IRelationRepository interface {
	Create(ctx context.Context, r entities.Relation) (entities.Relation, error)
	Get(ctx context.Context, employerID, candidateID string) (entities.Relation, error)
	ListByEmployerID(ctx context.Context, employerID string) ([]entities.Relation, error)
	UpdateStatus(ctx context.Context, employerID, candidateID string, status entities.RelationStatus) (entities.Relation, error)
}
