package interfaces

import (
	"context"
	"talentbruecke/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document metadata.
// The file bytes themselves live behind IDocumentStorage.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	Delete(ctx context.Context, id string) error
}
