package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmployerID     = errors.New("invalid employer id")
	ErrInvalidRelationStatus = errors.New("invalid relation status")
	ErrRelationNotFound      = errors.New("relation not found")
	ErrLockedByQuote         = errors.New("relation locked by an open quote request")
	ErrTerminalStageLocked   = errors.New("relation stage only progresses via the quote payment path")
)

// RelationKey is the composite identifier used to join quotes and interviews
// to their relation.
func RelationKey(employerID, candidateID string) string {
	return employerID + "/" + candidateID
}

// IPipelineUseCase governs the per-employer pipeline of a candidate:
// potential -> shortlisted -> asked_quote -> interviewed -> hired.
//
// Move enforces exactly two guards: an open quote locks the relation at
// asked_quote, and interviewed/hired only progress through the quote payment
// path. Beyond that any target stage is accepted; full forward-only ordering
// is deliberately not enforced here.

type IPipelineUseCase interface {
	AddToPool(ctx context.Context, actor entities.Actor, employerID, candidateID string) (entities.Relation, error)
	Move(ctx context.Context, actor entities.Actor, employerID, candidateID string, target entities.RelationStatus) (entities.Relation, error)
	ListByEmployer(ctx context.Context, actor entities.Actor, employerID string) ([]entities.Relation, error)
}

type PipelineUseCase struct {
	relations interfaces.IRelationRepository
	quotes    interfaces.IQuoteRepository
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(relations interfaces.IRelationRepository, quotes interfaces.IQuoteRepository) *PipelineUseCase {
	return &PipelineUseCase{relations: relations, quotes: quotes}
}

// AddToPool creates the relation the first time an employer engages a
// candidate. Idempotent: an existing relation is returned unchanged.
func (u *PipelineUseCase) AddToPool(ctx context.Context, actor entities.Actor, employerID, candidateID string) (entities.Relation, error) {
	employerID = strings.TrimSpace(employerID)
	candidateID = strings.TrimSpace(candidateID)
	if employerID == "" {
		return entities.Relation{}, ErrInvalidEmployerID
	}
	if candidateID == "" {
		return entities.Relation{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleEmployer, employerID) && !actor.IsStaff() {
		return entities.Relation{}, ErrNotAuthorized
	}

	existing, err := u.relations.Get(ctx, employerID, candidateID)
	if err != nil {
		return entities.Relation{}, err
	}
	if existing.EmployerID != "" {
		return existing, nil
	}

	now := time.Now().UTC()
	return u.relations.Create(ctx, entities.Relation{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      entities.RelationStatusPotential,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Move applies a direct status edit (drag-and-drop in the UI) after running
// the pipeline guards in order. Entering asked_quote auto-creates a quote
// request; if one is already open the creation is a no-op.
func (u *PipelineUseCase) Move(ctx context.Context, actor entities.Actor, employerID, candidateID string, target entities.RelationStatus) (entities.Relation, error) {
	employerID = strings.TrimSpace(employerID)
	candidateID = strings.TrimSpace(candidateID)
	if employerID == "" {
		return entities.Relation{}, ErrInvalidEmployerID
	}
	if candidateID == "" {
		return entities.Relation{}, ErrInvalidCandidateID
	}
	if !target.IsValid() {
		return entities.Relation{}, ErrInvalidRelationStatus
	}
	if !actor.Is(entities.RoleEmployer, employerID) && !actor.IsStaff() {
		return entities.Relation{}, ErrNotAuthorized
	}

	rel, err := u.relations.Get(ctx, employerID, candidateID)
	if err != nil {
		return entities.Relation{}, err
	}
	if rel.EmployerID == "" {
		return entities.Relation{}, ErrRelationNotFound
	}

	// Guard 1: an open quote pins the relation at asked_quote. Only the
	// quote workflow itself (reject or pay) releases it.
	if rel.Status == entities.RelationStatusAskedQuote {
		open, err := u.quotes.GetOpenByRelationID(ctx, RelationKey(employerID, candidateID))
		if err != nil {
			return entities.Relation{}, err
		}
		if open.ID != "" {
			return entities.Relation{}, ErrLockedByQuote
		}
	}

	// Guard 2: interviewed and hired never regress or move by direct edit.
	if rel.IsTerminalStage() {
		return entities.Relation{}, ErrTerminalStageLocked
	}

	if target == entities.RelationStatusAskedQuote {
		if err := u.ensureOpenQuote(ctx, rel); err != nil {
			return entities.Relation{}, err
		}
	}

	return u.relations.UpdateStatus(ctx, employerID, candidateID, target)
}

// ListByEmployer returns every relation on an employer's board.
func (u *PipelineUseCase) ListByEmployer(ctx context.Context, actor entities.Actor, employerID string) ([]entities.Relation, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return nil, ErrInvalidEmployerID
	}
	if !actor.Is(entities.RoleEmployer, employerID) && !actor.IsStaff() {
		return nil, ErrNotAuthorized
	}
	return u.relations.ListByEmployerID(ctx, employerID)
}

func (u *PipelineUseCase) ensureOpenQuote(ctx context.Context, rel entities.Relation) error {
	relationID := RelationKey(rel.EmployerID, rel.CandidateID)
	open, err := u.quotes.GetOpenByRelationID(ctx, relationID)
	if err != nil {
		return err
	}
	if open.ID != "" {
		return nil
	}

	_, err = u.quotes.Create(ctx, entities.QuoteRequest{
		ID:          uuid.NewString(),
		RelationID:  relationID,
		EmployerID:  rel.EmployerID,
		CandidateID: rel.CandidateID,
		Status:      entities.QuoteStatusPending,
		RequestedAt: time.Now().UTC(),
	})
	return err
}
