package response

import (
	"time"

	"talentbruecke/internal/domain/entities"
)

type DocumentResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Type        string    `json:"type"`
	FileName    string    `json:"file_name"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		CandidateID: d.CandidateID,
		Type:        string(d.Type),
		FileName:    d.FileName,
		Status:      string(d.Status),
		UploadedAt:  d.UploadedAt,
	}
}

func FromDocuments(documents []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(documents))
	for _, d := range documents {
		out = append(out, FromDocument(d))
	}
	return out
}
