package interfaces

import (
	"context"
	"talentbruecke/internal/domain/entities"
)

// ICandidateRepository abstracts DynamoDB persistence for Candidate.
//
// The lifecycle-service must be able to:
//   - load a candidate for guard evaluation
//   - persist profile edits (which may silently reset a rejection)
//   - persist verification status transitions decided by the state machine

type ICandidateRepository interface {
	Create(ctx context.Context, c entities.Candidate) (entities.Candidate, error)
	GetByID(ctx context.Context, id string) (entities.Candidate, error)
	UpdateProfile(ctx context.Context, id string, profile entities.CandidateProfile) (entities.Candidate, error)
	UpdateVerification(ctx context.Context, id string, status entities.VerificationStatus, rejectionReason string) (entities.Candidate, error)
}
