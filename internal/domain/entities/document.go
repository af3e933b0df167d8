package entities

import "time"

// DocumentType is the declared kind of an uploaded document. The checklist
// matches the raw string against keyword sets, so free-form values like
// "university diploma" still count.
type DocumentType string

const (
	DocumentTypeCV          DocumentType = "cv"
	DocumentTypePassport    DocumentType = "passport"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeDiploma     DocumentType = "diploma"
	DocumentTypeReference   DocumentType = "reference"
	DocumentTypeOther       DocumentType = "other"
)

// DocumentStatus is the staff review state of a single document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Document is the metadata record for one uploaded file.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (candidate_id-index): candidate_id
//
// The file bytes live in the external document store; StorageKey is the
// opaque handle returned by it.
type Document struct {
	ID          string         `json:"id"`
	CandidateID string         `json:"candidate_id"`
	Type        DocumentType   `json:"type"`
	FileName    string         `json:"file_name"`
	StorageKey  string         `json:"storage_key,omitempty"`
	Status      DocumentStatus `json:"status"`
	UploadedAt  time.Time      `json:"uploaded_at"`
}
