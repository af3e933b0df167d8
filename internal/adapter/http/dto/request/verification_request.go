package request

import "talentbruecke/internal/domain/entities"

// VerificationDecisionRequest is the staff payload for setting a candidate's
// verification status. Reason is required when the status is rejected.
type VerificationDecisionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (r VerificationDecisionRequest) ResolveStatus() entities.VerificationStatus {
	return entities.VerificationStatus(r.Status)
}
