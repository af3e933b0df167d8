package response

import (
	"time"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase"
)

type CandidateResponse struct {
	ID                 string                    `json:"id"`
	Email              string                    `json:"email"`
	Profile            entities.CandidateProfile `json:"profile"`
	VerificationStatus string                    `json:"verification_status"`
	RejectionReason    string                    `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func FromCandidate(c entities.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:                 c.ID,
		Email:              c.Email,
		Profile:            c.Profile,
		VerificationStatus: string(c.VerificationStatus),
		RejectionReason:    c.RejectionReason,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

type ChecklistResponse struct {
	ProfileComplete bool     `json:"profile_complete"`
	ProfileMissing  []string `json:"profile_missing"`
	HasID           bool     `json:"has_id_document"`
	HasEducation    bool     `json:"has_education_document"`
	HasCV           bool     `json:"has_cv"`
	HasReferences   bool     `json:"has_references"`
	CanSubmit       bool     `json:"can_submit"`
}

func FromChecklist(v usecase.ChecklistView) ChecklistResponse {
	missing := v.Profile.Missing
	if missing == nil {
		missing = []string{}
	}
	return ChecklistResponse{
		ProfileComplete: v.Profile.Complete,
		ProfileMissing:  missing,
		HasID:           v.Documents.HasID,
		HasEducation:    v.Documents.HasEducation,
		HasCV:           v.Documents.HasCV,
		HasReferences:   v.Documents.HasReferences,
		CanSubmit:       v.CanSubmit,
	}
}
