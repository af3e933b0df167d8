package response

import (
	"time"

	"talentbruecke/internal/domain/entities"
)

type RelationResponse struct {
	EmployerID  string    `json:"employer_id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRelation(r entities.Relation) RelationResponse {
	return RelationResponse{
		EmployerID:  r.EmployerID,
		CandidateID: r.CandidateID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRelations(relations []entities.Relation) []RelationResponse {
	out := make([]RelationResponse, 0, len(relations))
	for _, r := range relations {
		out = append(out, FromRelation(r))
	}
	return out
}
