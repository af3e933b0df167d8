package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentbruecke/internal/domain/entities"
	mock_interfaces "talentbruecke/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingDocument() entities.Document {
	return entities.Document{
		ID:          "doc-1",
		CandidateID: "cand-1",
		Type:        entities.DocumentTypePassport,
		FileName:    "passport.pdf",
		StorageKey:  "cand-1/passport.pdf",
		Status:      entities.DocumentStatusPending,
		UploadedAt:  time.Now().UTC(),
	}
}

func TestDocumentUseCase_Upload(t *testing.T) {
	t.Run("stores the file then records pending metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(documents, storage)

		storage.EXPECT().Put(gomock.Any(), "cand-1", "passport.pdf", []byte("bytes")).Return("cand-1/passport.pdf", nil)
		documents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Status != entities.DocumentStatusPending || d.StorageKey != "cand-1/passport.pdf" {
					t.Fatalf("unexpected document %+v", d)
				}
				return d, nil
			})

		d, err := uc.Upload(context.Background(), candidateActor("cand-1"), "cand-1", entities.DocumentTypePassport, "passport.pdf", []byte("bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == "" {
			t.Fatal("expected a generated document id")
		}
	})

	t.Run("only the owner uploads", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Upload(context.Background(), candidateActor("cand-2"), "cand-1", entities.DocumentTypeCV, "cv.pdf", []byte("x"))
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Upload(context.Background(), candidateActor("cand-1"), "cand-1", entities.DocumentTypeCV, "cv.pdf", nil)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})
}

func TestDocumentUseCase_ListByCandidate(t *testing.T) {
	t.Run("staff may list any candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(documents, nil)

		documents.EXPECT().ListByCandidateID(gomock.Any(), "cand-1").Return([]entities.Document{pendingDocument()}, nil)

		out, err := uc.ListByCandidate(context.Background(), staffActor(), "cand-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 document, got %d", len(out))
		}
	})

	t.Run("employers may not browse documents", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.ListByCandidate(context.Background(), employerActor("emp-1"), "cand-1")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestDocumentUseCase_Delete(t *testing.T) {
	t.Run("owner deletes a pending document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(documents, storage)

		documents.EXPECT().GetByID(gomock.Any(), "doc-1").Return(pendingDocument(), nil)
		storage.EXPECT().Delete(gomock.Any(), "cand-1/passport.pdf").Return(nil)
		documents.EXPECT().Delete(gomock.Any(), "doc-1").Return(nil)

		if err := uc.Delete(context.Background(), candidateActor("cand-1"), "doc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failure does not block the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(documents, storage)

		documents.EXPECT().GetByID(gomock.Any(), "doc-1").Return(pendingDocument(), nil)
		storage.EXPECT().Delete(gomock.Any(), "cand-1/passport.pdf").Return(errors.New("blob store down"))
		documents.EXPECT().Delete(gomock.Any(), "doc-1").Return(nil)

		if err := uc.Delete(context.Background(), candidateActor("cand-1"), "doc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reviewed documents are frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(documents, nil)

		verified := pendingDocument()
		verified.Status = entities.DocumentStatusVerified
		documents.EXPECT().GetByID(gomock.Any(), "doc-1").Return(verified, nil)

		err := uc.Delete(context.Background(), candidateActor("cand-1"), "doc-1")
		if !errors.Is(err, ErrDocumentNotDeletable) {
			t.Fatalf("expected ErrDocumentNotDeletable, got %v", err)
		}
	})

	t.Run("staff may not delete on the candidate's behalf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(documents, nil)

		documents.EXPECT().GetByID(gomock.Any(), "doc-1").Return(pendingDocument(), nil)

		err := uc.Delete(context.Background(), staffActor(), "doc-1")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestDocumentUseCase_Review(t *testing.T) {
	t.Run("staff verdict is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documents := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(documents, nil)

		documents.EXPECT().GetByID(gomock.Any(), "doc-1").Return(pendingDocument(), nil)
		verified := pendingDocument()
		verified.Status = entities.DocumentStatusVerified
		documents.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusVerified).Return(verified, nil)

		d, err := uc.Review(context.Background(), staffActor(), "doc-1", entities.DocumentStatusVerified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DocumentStatusVerified {
			t.Fatalf("expected verified, got %s", d.Status)
		}
	})

	t.Run("pending is not a review verdict", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Review(context.Background(), staffActor(), "doc-1", entities.DocumentStatusPending)
		if !errors.Is(err, ErrInvalidDocumentStatus) {
			t.Fatalf("expected ErrInvalidDocumentStatus, got %v", err)
		}
	})

	t.Run("candidates may not review", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Review(context.Background(), candidateActor("cand-1"), "doc-1", entities.DocumentStatusVerified)
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}
