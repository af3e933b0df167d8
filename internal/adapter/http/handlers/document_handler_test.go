package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentbruecke/internal/adapter/http/handlers/mocks"
	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDocumentHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid base64", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/candidates/:candidate_id/documents", h.Upload)

		payload := `{"type":"passport","file_name":"passport.pdf","content_base64":"%%%"}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/candidates/cand-1/documents", bytes.NewBufferString(payload)), "cand-1", "candidate")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/candidates/:candidate_id/documents", h.Upload)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any(), "cand-1", entities.DocumentTypePassport, "passport.pdf", []byte("bytes")).
			Return(entities.Document{ID: "doc-1", CandidateID: "cand-1", Type: entities.DocumentTypePassport, Status: entities.DocumentStatusPending}, nil)

		payload := fmt.Sprintf(`{"type":"passport","file_name":"passport.pdf","content_base64":"%s"}`,
			base64.StdEncoding.EncodeToString([]byte("bytes")))
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/candidates/cand-1/documents", bytes.NewBufferString(payload)), "cand-1", "candidate")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "doc-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reviewed document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/documents/:document_id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "doc-1").Return(usecase.ErrDocumentNotDeletable)

		req := withActor(httptest.NewRequest(http.MethodDelete, "/v1/documents/doc-1", nil), "cand-1", "candidate")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/documents/:document_id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "doc-1").Return(nil)

		req := withActor(httptest.NewRequest(http.MethodDelete, "/v1/documents/doc-1", nil), "cand-1", "candidate")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)

	r := gin.New()
	r.PATCH("/v1/documents/:document_id/review", h.Review)

	uc.EXPECT().Review(gomock.Any(), entities.Actor{ID: "staff-1", Role: entities.RoleStaff}, "doc-1", entities.DocumentStatusVerified).
		Return(entities.Document{ID: "doc-1", Status: entities.DocumentStatusVerified}, nil)

	req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/documents/doc-1/review",
		bytes.NewBufferString(`{"status":"verified"}`)), "staff-1", "staff")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestActorFromHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(id, role string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if id != "" {
			c.Request.Header.Set(HeaderActorID, id)
		}
		if role != "" {
			c.Request.Header.Set(HeaderActorRole, role)
		}
		return c
	}

	if _, appErr := actorFromHeaders(makeCtx("", "")); appErr == nil {
		t.Fatal("expected error for missing headers")
	}
	if _, appErr := actorFromHeaders(makeCtx("u1", "superuser")); appErr == nil {
		t.Fatal("expected error for unknown role")
	}

	actor, appErr := actorFromHeaders(makeCtx("u1", "Employer"))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if actor.Role != entities.RoleEmployer || actor.ID != "u1" {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestMapDocumentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidDocumentID, http.StatusBadRequest},
		{usecase.ErrInvalidDocument, http.StatusBadRequest},
		{usecase.ErrInvalidDocumentStatus, http.StatusBadRequest},
		{usecase.ErrNotAuthorized, http.StatusForbidden},
		{usecase.ErrDocumentNotFound, http.StatusNotFound},
		{usecase.ErrDocumentNotDeletable, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapDocumentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
