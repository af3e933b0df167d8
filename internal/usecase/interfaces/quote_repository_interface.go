package interfaces

import (
	"context"
	"talentbruecke/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// GetOpenByRelationID is the lock probe: it returns the single pending or
// approved-unresolved request for a relation, or a zero value when none is
// open. Terminal (paid/rejected) requests never come back from it.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	GetOpenByRelationID(ctx context.Context, relationID string) (entities.QuoteRequest, error)
	ListByRelationID(ctx context.Context, relationID string) ([]entities.QuoteRequest, error)
	Update(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
}
