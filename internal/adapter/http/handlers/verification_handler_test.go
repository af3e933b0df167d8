package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentbruecke/internal/adapter/http/handlers/mocks"
	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withActor(req *http.Request, id, role string) *http.Request {
	req.Header.Set(HeaderActorID, id)
	req.Header.Set(HeaderActorRole, role)
	return req
}

func TestVerificationHandler_SubmitForReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.POST("/v1/candidates/:candidate_id/verification/submit", h.SubmitForReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/candidates/cand-1/verification/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("incomplete profile returns the missing list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.POST("/v1/candidates/:candidate_id/verification/submit", h.SubmitForReview)

		uc.EXPECT().SubmitForReview(gomock.Any(), entities.Actor{ID: "cand-1", Role: entities.RoleCandidate}, "cand-1").
			Return(entities.Candidate{}, &usecase.IncompleteProfileError{Missing: []string{"bio", "cvDocument"}})

		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/candidates/cand-1/verification/submit", nil), "cand-1", "candidate")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, _ := body["details"].(map[string]any)
		missing, _ := details["missing"].([]any)
		if len(missing) != 2 || missing[0] != "bio" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.POST("/v1/candidates/:candidate_id/verification/submit", h.SubmitForReview)

		uc.EXPECT().SubmitForReview(gomock.Any(), gomock.Any(), "cand-1").
			Return(entities.Candidate{ID: "cand-1", VerificationStatus: entities.VerificationStatusPending}, nil)

		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/candidates/cand-1/verification/submit", nil), "cand-1", "candidate")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verification_status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVerificationHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/candidates/:candidate_id/verification", h.SetStatus)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/candidates/cand-1/verification", bytes.NewBufferString("{")), "staff-1", "staff")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/candidates/:candidate_id/verification", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), entities.Actor{ID: "staff-1", Role: entities.RoleStaff}, "cand-1", entities.VerificationStatusRejected, "passport expired").
			Return(entities.Candidate{ID: "cand-1", VerificationStatus: entities.VerificationStatusRejected}, nil)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/candidates/cand-1/verification",
			bytes.NewBufferString(`{"status":"rejected","reason":"passport expired"}`)), "staff-1", "staff")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-staff is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		h := NewVerificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/candidates/:candidate_id/verification", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), gomock.Any()).
			Return(entities.Candidate{}, usecase.ErrNotAuthorized)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/candidates/cand-1/verification",
			bytes.NewBufferString(`{"status":"verified"}`)), "emp-1", "employer")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestVerificationHandler_GetChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVerificationUseCase(ctrl)
	h := NewVerificationHandler(uc)

	r := gin.New()
	r.GET("/v1/candidates/:candidate_id/checklist", h.GetChecklist)

	uc.EXPECT().GetChecklist(gomock.Any(), gomock.Any(), "cand-1").
		Return(usecase.ChecklistView{CanSubmit: true}, nil)

	req := withActor(httptest.NewRequest(http.MethodGet, "/v1/candidates/cand-1/checklist", nil), "cand-1", "candidate")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["can_submit"] != true {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapVerificationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidCandidateID, http.StatusBadRequest},
		{usecase.ErrNotAuthorized, http.StatusForbidden},
		{usecase.ErrCandidateNotFound, http.StatusNotFound},
		{usecase.ErrVerificationAlreadyInProgress, http.StatusConflict},
		{usecase.ErrInvalidVerificationStatus, http.StatusBadRequest},
		{usecase.ErrInvalidVerificationTransition, http.StatusConflict},
		{usecase.ErrRejectionReasonRequired, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapVerificationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
