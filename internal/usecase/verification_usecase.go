package usecase

import (
	"context"
	"errors"
	"strings"

	"talentbruecke/internal/domain/checklist"
	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase/interfaces"
)

var (
	ErrInvalidCandidateID            = errors.New("invalid candidate id")
	ErrCandidateNotFound             = errors.New("candidate not found")
	ErrInvalidVerificationStatus     = errors.New("invalid verification status")
	ErrInvalidVerificationTransition = errors.New("invalid verification transition")
	ErrRejectionReasonRequired       = errors.New("rejection reason required")
	ErrVerificationAlreadyInProgress = errors.New("verification already in progress")
)

// IncompleteProfileError rejects a review submission and enumerates every
// missing checklist item, not just the first, so the candidate sees the full
// gap at once.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return "profile incomplete: missing " + strings.Join(e.Missing, ", ")
}

// Missing-document markers appended after the profile field names.
const (
	missingIDDocument        = "idDocument"
	missingEducationDocument = "educationDocument"
	missingCVDocument        = "cvDocument"
)

// ChecklistView is the read model for the candidate's completeness panel.
type ChecklistView struct {
	Profile   checklist.ProfileEvaluation  `json:"profile"`
	Documents checklist.DocumentEvaluation `json:"documents"`
	CanSubmit bool                         `json:"can_submit"`
}

// IVerificationUseCase governs a candidate's trust status:
// unverified -> pending -> verified | rejected, with pending -> unverified
// (withdrawal) and rejected -> unverified (silent reset on profile edit).
// Review is mandatory: no transition skips pending.

type IVerificationUseCase interface {
	SubmitForReview(ctx context.Context, actor entities.Actor, candidateID string) (entities.Candidate, error)
	Withdraw(ctx context.Context, actor entities.Actor, candidateID string) (entities.Candidate, error)
	SetStatus(ctx context.Context, actor entities.Actor, candidateID string, status entities.VerificationStatus, reason string) (entities.Candidate, error)
	UpdateProfile(ctx context.Context, actor entities.Actor, candidateID string, profile entities.CandidateProfile) (entities.Candidate, error)
	GetChecklist(ctx context.Context, actor entities.Actor, candidateID string) (ChecklistView, error)
}

type VerificationUseCase struct {
	candidates interfaces.ICandidateRepository
	documents  interfaces.IDocumentRepository
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(candidates interfaces.ICandidateRepository, documents interfaces.IDocumentRepository) *VerificationUseCase {
	return &VerificationUseCase{candidates: candidates, documents: documents}
}

// SubmitForReview moves a candidate into the staff review queue. The
// completeness guard runs from the unverified-equivalent rules, so a
// resubmission after rejection behaves identically to a first submission.
func (u *VerificationUseCase) SubmitForReview(ctx context.Context, actor entities.Actor, candidateID string) (entities.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Candidate{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) {
		return entities.Candidate{}, ErrNotAuthorized
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if c.ID == "" {
		return entities.Candidate{}, ErrCandidateNotFound
	}

	switch c.VerificationStatus {
	case entities.VerificationStatusUnverified, entities.VerificationStatusRejected:
		// resubmission after rejection re-runs the same guard
	case entities.VerificationStatusPending:
		return entities.Candidate{}, ErrVerificationAlreadyInProgress
	default:
		return entities.Candidate{}, ErrInvalidVerificationTransition
	}

	docs, err := u.documents.ListByCandidateID(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}

	if missing := submissionGaps(c, docs); len(missing) > 0 {
		return entities.Candidate{}, &IncompleteProfileError{Missing: missing}
	}

	return u.candidates.UpdateVerification(ctx, candidateID, entities.VerificationStatusPending, "")
}

// Withdraw lets the candidate pull a submission back while staff have not
// decided yet.
func (u *VerificationUseCase) Withdraw(ctx context.Context, actor entities.Actor, candidateID string) (entities.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Candidate{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) {
		return entities.Candidate{}, ErrNotAuthorized
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if c.ID == "" {
		return entities.Candidate{}, ErrCandidateNotFound
	}
	if c.VerificationStatus != entities.VerificationStatusPending {
		return entities.Candidate{}, ErrInvalidVerificationTransition
	}

	return u.candidates.UpdateVerification(ctx, candidateID, entities.VerificationStatusUnverified, "")
}

// SetStatus applies a staff decision. Legal staff transitions:
//   - pending -> verified
//   - pending -> rejected (reason required)
//   - verified -> unverified (admin escape hatch)
func (u *VerificationUseCase) SetStatus(ctx context.Context, actor entities.Actor, candidateID string, status entities.VerificationStatus, reason string) (entities.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Candidate{}, ErrInvalidCandidateID
	}
	if !actor.IsStaff() {
		return entities.Candidate{}, ErrNotAuthorized
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if c.ID == "" {
		return entities.Candidate{}, ErrCandidateNotFound
	}

	reason = strings.TrimSpace(reason)
	switch status {
	case entities.VerificationStatusVerified:
		if c.VerificationStatus != entities.VerificationStatusPending {
			return entities.Candidate{}, ErrInvalidVerificationTransition
		}
		reason = ""
	case entities.VerificationStatusRejected:
		if c.VerificationStatus != entities.VerificationStatusPending {
			return entities.Candidate{}, ErrInvalidVerificationTransition
		}
		if reason == "" {
			return entities.Candidate{}, ErrRejectionReasonRequired
		}
	case entities.VerificationStatusUnverified:
		if c.VerificationStatus != entities.VerificationStatusVerified {
			return entities.Candidate{}, ErrInvalidVerificationTransition
		}
		reason = ""
	default:
		return entities.Candidate{}, ErrInvalidVerificationStatus
	}

	return u.candidates.UpdateVerification(ctx, candidateID, status, reason)
}

// UpdateProfile persists candidate edits. Editing after a rejection resets
// the status to unverified and clears the rejection reason, so the next
// submission starts clean.
func (u *VerificationUseCase) UpdateProfile(ctx context.Context, actor entities.Actor, candidateID string, profile entities.CandidateProfile) (entities.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Candidate{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) {
		return entities.Candidate{}, ErrNotAuthorized
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if c.ID == "" {
		return entities.Candidate{}, ErrCandidateNotFound
	}

	updated, err := u.candidates.UpdateProfile(ctx, candidateID, profile)
	if err != nil {
		return entities.Candidate{}, err
	}

	if c.VerificationStatus == entities.VerificationStatusRejected {
		return u.candidates.UpdateVerification(ctx, candidateID, entities.VerificationStatusUnverified, "")
	}
	return updated, nil
}

// GetChecklist exposes the completeness panel without side effects.
func (u *VerificationUseCase) GetChecklist(ctx context.Context, actor entities.Actor, candidateID string) (ChecklistView, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return ChecklistView{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) && !actor.IsStaff() {
		return ChecklistView{}, ErrNotAuthorized
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return ChecklistView{}, err
	}
	if c.ID == "" {
		return ChecklistView{}, ErrCandidateNotFound
	}
	docs, err := u.documents.ListByCandidateID(ctx, candidateID)
	if err != nil {
		return ChecklistView{}, err
	}

	return ChecklistView{
		Profile:   checklist.EvaluateProfile(c),
		Documents: checklist.EvaluateDocuments(docs),
		CanSubmit: checklist.CanSubmitForReview(c, docs),
	}, nil
}

// submissionGaps collects the missing profile fields followed by the missing
// required document categories.
func submissionGaps(c entities.Candidate, docs []entities.Document) []string {
	profile := checklist.EvaluateProfile(c)
	missing := append([]string{}, profile.Missing...)

	categories := checklist.EvaluateDocuments(docs)
	if !categories.HasID {
		missing = append(missing, missingIDDocument)
	}
	if !categories.HasEducation {
		missing = append(missing, missingEducationDocument)
	}
	if !categories.HasCV {
		missing = append(missing, missingCVDocument)
	}
	return missing
}
