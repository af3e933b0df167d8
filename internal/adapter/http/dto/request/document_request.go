package request

import (
	"encoding/base64"
	"errors"

	"talentbruecke/internal/domain/entities"
)

var ErrEmptyDocumentContent = errors.New("document content is empty")

// DocumentUploadRequest carries the file inline as base64. The service stores
// the bytes in the document store and keeps only metadata itself.
type DocumentUploadRequest struct {
	Type          string `json:"type" binding:"required"`
	FileName      string `json:"file_name" binding:"required"`
	ContentBase64 string `json:"content_base64" binding:"required"`
}

func (r DocumentUploadRequest) ResolveType() entities.DocumentType {
	return entities.DocumentType(r.Type)
}

func (r DocumentUploadRequest) DecodeContent() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.ContentBase64)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyDocumentContent
	}
	return data, nil
}

// DocumentReviewRequest is the staff verdict on one document.
type DocumentReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r DocumentReviewRequest) ResolveStatus() entities.DocumentStatus {
	return entities.DocumentStatus(r.Status)
}
