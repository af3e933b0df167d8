package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDocumentID     = errors.New("invalid document id")
	ErrInvalidDocument       = errors.New("invalid document")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentNotDeletable  = errors.New("only pending documents can be deleted")
	ErrInvalidDocumentStatus = errors.New("invalid document review status")
)

// IDocumentUseCase owns document metadata and the rules around it; the file
// bytes go through the external storage port.

type IDocumentUseCase interface {
	Upload(ctx context.Context, actor entities.Actor, candidateID string, docType entities.DocumentType, fileName string, data []byte) (entities.Document, error)
	ListByCandidate(ctx context.Context, actor entities.Actor, candidateID string) ([]entities.Document, error)
	Delete(ctx context.Context, actor entities.Actor, documentID string) error
	Review(ctx context.Context, actor entities.Actor, documentID string, status entities.DocumentStatus) (entities.Document, error)
}

type DocumentUseCase struct {
	documents interfaces.IDocumentRepository
	storage   interfaces.IDocumentStorage
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(documents interfaces.IDocumentRepository, storage interfaces.IDocumentStorage) *DocumentUseCase {
	return &DocumentUseCase{documents: documents, storage: storage}
}

// Upload stores the file in the external document store and records its
// metadata as pending review.
func (u *DocumentUseCase) Upload(ctx context.Context, actor entities.Actor, candidateID string, docType entities.DocumentType, fileName string, data []byte) (entities.Document, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Document{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) {
		return entities.Document{}, ErrNotAuthorized
	}
	if strings.TrimSpace(string(docType)) == "" || strings.TrimSpace(fileName) == "" || len(data) == 0 {
		return entities.Document{}, ErrInvalidDocument
	}
	if u.storage == nil {
		return entities.Document{}, errors.New("document storage not configured")
	}

	key, err := u.storage.Put(ctx, candidateID, fileName, data)
	if err != nil {
		return entities.Document{}, err
	}

	return u.documents.Create(ctx, entities.Document{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Type:        docType,
		FileName:    fileName,
		StorageKey:  key,
		Status:      entities.DocumentStatusPending,
		UploadedAt:  time.Now().UTC(),
	})
}

// ListByCandidate returns the candidate's documents to the owner or staff.
func (u *DocumentUseCase) ListByCandidate(ctx context.Context, actor entities.Actor, candidateID string) ([]entities.Document, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return nil, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleCandidate, candidateID) && !actor.IsStaff() {
		return nil, ErrNotAuthorized
	}
	return u.documents.ListByCandidateID(ctx, candidateID)
}

// Delete removes a document that is still pending review. Owner only; a
// reviewed document is frozen for audit.
func (u *DocumentUseCase) Delete(ctx context.Context, actor entities.Actor, documentID string) error {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return ErrInvalidDocumentID
	}

	d, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return ErrDocumentNotFound
	}
	if !actor.Is(entities.RoleCandidate, d.CandidateID) {
		return ErrNotAuthorized
	}
	if d.Status != entities.DocumentStatusPending {
		return ErrDocumentNotDeletable
	}

	if u.storage != nil && d.StorageKey != "" {
		// Metadata is the source of truth; an orphaned blob is acceptable.
		if err := u.storage.Delete(ctx, d.StorageKey); err != nil {
			log.Printf("[document][usecase] storage delete failed document_id=%s err=%v", d.ID, err)
		}
	}
	return u.documents.Delete(ctx, documentID)
}

// Review records the staff verdict on a single document.
func (u *DocumentUseCase) Review(ctx context.Context, actor entities.Actor, documentID string, status entities.DocumentStatus) (entities.Document, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	if !actor.IsStaff() {
		return entities.Document{}, ErrNotAuthorized
	}
	if status != entities.DocumentStatusVerified && status != entities.DocumentStatusRejected {
		return entities.Document{}, ErrInvalidDocumentStatus
	}

	d, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}

	return u.documents.UpdateStatus(ctx, documentID, status)
}
