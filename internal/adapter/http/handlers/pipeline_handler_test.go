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

func TestPipelineHandler_AddToPool(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPipelineUseCase(ctrl)
	h := NewPipelineHandler(uc)

	r := gin.New()
	r.POST("/v1/employers/:employer_id/pipeline/:candidate_id", h.AddToPool)

	uc.EXPECT().AddToPool(gomock.Any(), entities.Actor{ID: "emp-1", Role: entities.RoleEmployer}, "emp-1", "cand-1").
		Return(entities.Relation{EmployerID: "emp-1", CandidateID: "cand-1", Status: entities.RelationStatusPotential}, nil)

	req := withActor(httptest.NewRequest(http.MethodPost, "/v1/employers/emp-1/pipeline/cand-1", nil), "emp-1", "employer")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "potential" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPipelineHandler_Move(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.PATCH("/v1/employers/:employer_id/pipeline/:candidate_id", h.Move)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/employers/emp-1/pipeline/cand-1", bytes.NewBufferString(`{}`)), "emp-1", "employer")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked by quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.PATCH("/v1/employers/:employer_id/pipeline/:candidate_id", h.Move)

		uc.EXPECT().Move(gomock.Any(), gomock.Any(), "emp-1", "cand-1", entities.RelationStatusShortlisted).
			Return(entities.Relation{}, usecase.ErrLockedByQuote)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/employers/emp-1/pipeline/cand-1",
			bytes.NewBufferString(`{"status":"shortlisted"}`)), "emp-1", "employer")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "LOCKED_BY_QUOTE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.PATCH("/v1/employers/:employer_id/pipeline/:candidate_id", h.Move)

		uc.EXPECT().Move(gomock.Any(), gomock.Any(), "emp-1", "cand-1", entities.RelationStatusShortlisted).
			Return(entities.Relation{EmployerID: "emp-1", CandidateID: "cand-1", Status: entities.RelationStatusShortlisted}, nil)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/employers/emp-1/pipeline/cand-1",
			bytes.NewBufferString(`{"status":"shortlisted"}`)), "emp-1", "employer")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_ListByEmployer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPipelineUseCase(ctrl)
	h := NewPipelineHandler(uc)

	r := gin.New()
	r.GET("/v1/employers/:employer_id/pipeline", h.ListByEmployer)

	uc.EXPECT().ListByEmployer(gomock.Any(), gomock.Any(), "emp-1").
		Return([]entities.Relation{{EmployerID: "emp-1", CandidateID: "cand-1", Status: entities.RelationStatusPotential}}, nil)

	req := withActor(httptest.NewRequest(http.MethodGet, "/v1/employers/emp-1/pipeline", nil), "emp-1", "employer")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["candidate_id"] != "cand-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapPipelineError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidEmployerID, http.StatusBadRequest},
		{usecase.ErrInvalidCandidateID, http.StatusBadRequest},
		{usecase.ErrInvalidRelationStatus, http.StatusBadRequest},
		{usecase.ErrNotAuthorized, http.StatusForbidden},
		{usecase.ErrRelationNotFound, http.StatusNotFound},
		{usecase.ErrLockedByQuote, http.StatusConflict},
		{usecase.ErrTerminalStageLocked, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPipelineError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
