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
	ErrInvalidInterviewID       = errors.New("invalid interview id")
	ErrInterviewNotFound        = errors.New("interview not found")
	ErrCandidateNotVerified     = errors.New("candidate is not verified")
	ErrRelationNotInterviewable = errors.New("relation stage does not allow interviews")
	ErrNoProposedTimes          = errors.New("at least one proposed time is required")
	ErrInterviewNotPending      = errors.New("interview is not pending")
	ErrInterviewNotConfirmed    = errors.New("interview is not confirmed")
	ErrInterviewTerminal        = errors.New("interview is already completed or cancelled")
	ErrInvalidChosenTime        = errors.New("chosen time is not among the proposed times")
)

// IInterviewUseCase runs the interview workflow attached to a relation:
// pending -> confirmed -> completed | cancelled.
//
// Scheduling requires a verified candidate and a relation at shortlisted or
// later; completion feeds back into the pipeline by forcing the relation to
// interviewed when it has not reached that stage yet.

type IInterviewUseCase interface {
	Schedule(ctx context.Context, actor entities.Actor, employerID, candidateID string, proposedTimes []entities.ProposedTime, notes string) (entities.Interview, error)
	Confirm(ctx context.Context, actor entities.Actor, interviewID string, chosenTime time.Time) (entities.Interview, error)
	Complete(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, *entities.Relation, error)
	Cancel(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, error)
	GetByID(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, error)
}

type InterviewUseCase struct {
	interviews interfaces.IInterviewRepository
	relations  interfaces.IRelationRepository
	candidates interfaces.ICandidateRepository
}

var _ IInterviewUseCase = (*InterviewUseCase)(nil)

func NewInterviewUseCase(interviews interfaces.IInterviewRepository, relations interfaces.IRelationRepository, candidates interfaces.ICandidateRepository) *InterviewUseCase {
	return &InterviewUseCase{interviews: interviews, relations: relations, candidates: candidates}
}

// interviewableStages are the relation stages from which an interview may be
// scheduled. Re-scheduling from interviewed is allowed; hired is not.
var interviewableStages = map[entities.RelationStatus]bool{
	entities.RelationStatusShortlisted: true,
	entities.RelationStatusAskedQuote:  true,
	entities.RelationStatusInterviewed: true,
}

// Schedule creates a pending interview with one or more proposed slots.
func (u *InterviewUseCase) Schedule(ctx context.Context, actor entities.Actor, employerID, candidateID string, proposedTimes []entities.ProposedTime, notes string) (entities.Interview, error) {
	employerID = strings.TrimSpace(employerID)
	candidateID = strings.TrimSpace(candidateID)
	if employerID == "" {
		return entities.Interview{}, ErrInvalidEmployerID
	}
	if candidateID == "" {
		return entities.Interview{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleEmployer, employerID) && !actor.IsStaff() {
		return entities.Interview{}, ErrNotAuthorized
	}
	if len(proposedTimes) == 0 {
		return entities.Interview{}, ErrNoProposedTimes
	}

	rel, err := u.relations.Get(ctx, employerID, candidateID)
	if err != nil {
		return entities.Interview{}, err
	}
	if rel.EmployerID == "" {
		return entities.Interview{}, ErrRelationNotFound
	}
	if !interviewableStages[rel.Status] {
		return entities.Interview{}, ErrRelationNotInterviewable
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return entities.Interview{}, err
	}
	if c.ID == "" {
		return entities.Interview{}, ErrCandidateNotFound
	}
	if c.VerificationStatus != entities.VerificationStatusVerified {
		return entities.Interview{}, ErrCandidateNotVerified
	}

	now := time.Now().UTC()
	return u.interviews.Create(ctx, entities.Interview{
		ID:            uuid.NewString(),
		RelationID:    RelationKey(employerID, candidateID),
		EmployerID:    employerID,
		CandidateID:   candidateID,
		Status:        entities.InterviewStatusPending,
		ProposedTimes: proposedTimes,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// Confirm picks one of the proposed slots and assigns the video room token.
func (u *InterviewUseCase) Confirm(ctx context.Context, actor entities.Actor, interviewID string, chosenTime time.Time) (entities.Interview, error) {
	iv, err := u.loadForParticipant(ctx, actor, interviewID)
	if err != nil {
		return entities.Interview{}, err
	}
	if iv.Status != entities.InterviewStatusPending {
		return entities.Interview{}, ErrInterviewNotPending
	}

	var chosen *entities.ProposedTime
	for i := range iv.ProposedTimes {
		if iv.ProposedTimes[i].DateTime.Equal(chosenTime) {
			chosen = &iv.ProposedTimes[i]
			break
		}
	}
	if chosen == nil {
		return entities.Interview{}, ErrInvalidChosenTime
	}

	iv.Status = entities.InterviewStatusConfirmed
	iv.ChosenTime = chosen
	iv.RoomID = uuid.NewString()
	iv.UpdatedAt = time.Now().UTC()
	return u.interviews.Update(ctx, iv)
}

// Complete closes a confirmed interview and forces the relation to
// interviewed unless it is already at or past that stage. The updated
// relation is returned when the cascade fired.
func (u *InterviewUseCase) Complete(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, *entities.Relation, error) {
	if !actor.IsStaff() && actor.Role != entities.RoleEmployer {
		return entities.Interview{}, nil, ErrNotAuthorized
	}
	iv, err := u.loadForParticipant(ctx, actor, interviewID)
	if err != nil {
		return entities.Interview{}, nil, err
	}
	if iv.Status != entities.InterviewStatusConfirmed {
		return entities.Interview{}, nil, ErrInterviewNotConfirmed
	}

	iv.Status = entities.InterviewStatusCompleted
	iv.UpdatedAt = time.Now().UTC()
	updated, err := u.interviews.Update(ctx, iv)
	if err != nil {
		return entities.Interview{}, nil, err
	}

	rel, err := u.relations.Get(ctx, iv.EmployerID, iv.CandidateID)
	if err != nil {
		return entities.Interview{}, nil, err
	}
	if rel.EmployerID == "" || rel.Status.AtOrPast(entities.RelationStatusInterviewed) {
		return updated, nil, nil
	}

	moved, err := u.relations.UpdateStatus(ctx, iv.EmployerID, iv.CandidateID, entities.RelationStatusInterviewed)
	if err != nil {
		return entities.Interview{}, nil, err
	}
	return updated, &moved, nil
}

// Cancel aborts any non-terminal interview. No relation side effect.
func (u *InterviewUseCase) Cancel(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, error) {
	iv, err := u.loadForParticipant(ctx, actor, interviewID)
	if err != nil {
		return entities.Interview{}, err
	}
	if iv.IsTerminal() {
		return entities.Interview{}, ErrInterviewTerminal
	}

	iv.Status = entities.InterviewStatusCancelled
	iv.UpdatedAt = time.Now().UTC()
	return u.interviews.Update(ctx, iv)
}

// GetByID returns one interview for any of its participants or staff.
func (u *InterviewUseCase) GetByID(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, error) {
	return u.loadForParticipant(ctx, actor, interviewID)
}

func (u *InterviewUseCase) loadForParticipant(ctx context.Context, actor entities.Actor, interviewID string) (entities.Interview, error) {
	interviewID = strings.TrimSpace(interviewID)
	if interviewID == "" {
		return entities.Interview{}, ErrInvalidInterviewID
	}

	iv, err := u.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return entities.Interview{}, err
	}
	if iv.ID == "" {
		return entities.Interview{}, ErrInterviewNotFound
	}
	if !actor.IsStaff() && !actor.Is(entities.RoleEmployer, iv.EmployerID) && !actor.Is(entities.RoleCandidate, iv.CandidateID) {
		return entities.Interview{}, ErrNotAuthorized
	}
	return iv, nil
}
