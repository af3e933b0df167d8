package interfaces

import (
	"context"
	"talentbruecke/internal/domain/entities"
)

// IInterviewRepository abstracts DynamoDB persistence for Interview.

type IInterviewRepository interface {
	Create(ctx context.Context, i entities.Interview) (entities.Interview, error)
	GetByID(ctx context.Context, id string) (entities.Interview, error)
	ListByRelationID(ctx context.Context, relationID string) ([]entities.Interview, error)
	Update(ctx context.Context, i entities.Interview) (entities.Interview, error)
}
