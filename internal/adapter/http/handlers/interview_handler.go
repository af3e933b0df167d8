package handlers

import (
	"errors"
	"net/http"

	request "talentbruecke/internal/adapter/http/dto/request"
	response "talentbruecke/internal/adapter/http/dto/response"
	"talentbruecke/internal/usecase"
	"talentbruecke/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInterviewPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid interview payload", http.StatusBadRequest)

// InterviewHandler handles HTTP requests for the interview workflow.

type InterviewHandler struct {
	usecase usecase.IInterviewUseCase
}

func NewInterviewHandler(uc usecase.IInterviewUseCase) *InterviewHandler {
	return &InterviewHandler{usecase: uc}
}

// Schedule proposes interview slots to a candidate.
func (h *InterviewHandler) Schedule(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.InterviewScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterviewPayload.HTTPStatus, errInvalidInterviewPayload.ToHTTPError())
		return
	}

	iv, err := h.usecase.Schedule(c.Request.Context(), actor, c.Param("employer_id"), payload.CandidateID, payload.ToProposedTimes(), payload.Notes)
	if err != nil {
		appErr := mapInterviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInterview(iv))
}

// Confirm picks one of the proposed slots.
func (h *InterviewHandler) Confirm(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.InterviewConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterviewPayload.HTTPStatus, errInvalidInterviewPayload.ToHTTPError())
		return
	}

	iv, err := h.usecase.Confirm(c.Request.Context(), actor, c.Param("interview_id"), payload.ChosenTime)
	if err != nil {
		appErr := mapInterviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInterview(iv))
}

// Complete closes a confirmed interview; the response carries the relation
// when completion moved it to interviewed.
func (h *InterviewHandler) Complete(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	iv, rel, err := h.usecase.Complete(c.Request.Context(), actor, c.Param("interview_id"))
	if err != nil {
		appErr := mapInterviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInterviewWithRelation(iv, rel))
}

// Cancel aborts a non-terminal interview.
func (h *InterviewHandler) Cancel(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	iv, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("interview_id"))
	if err != nil {
		appErr := mapInterviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInterview(iv))
}

// GetByID returns one interview to its participants or staff.
func (h *InterviewHandler) GetByID(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	iv, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("interview_id"))
	if err != nil {
		appErr := mapInterviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInterview(iv))
}

func mapInterviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInterviewID), errors.Is(err, usecase.ErrInvalidEmployerID),
		errors.Is(err, usecase.ErrInvalidCandidateID), errors.Is(err, usecase.ErrNoProposedTimes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInterviewNotFound):
		return pkg.NewDomainErrorSimple("INTERVIEW_NOT_FOUND", "Interview not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRelationNotFound):
		return pkg.NewDomainErrorSimple("RELATION_NOT_FOUND", "Relation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return pkg.NewDomainErrorSimple("CANDIDATE_NOT_FOUND", "Candidate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCandidateNotVerified):
		return pkg.NewDomainErrorSimple("CANDIDATE_NOT_VERIFIED", "Candidate must be verified before interviewing", http.StatusConflict)
	case errors.Is(err, usecase.ErrRelationNotInterviewable):
		return pkg.NewDomainErrorSimple("RELATION_NOT_INTERVIEWABLE", "Relation stage does not allow interviews", http.StatusConflict)
	case errors.Is(err, usecase.ErrInterviewNotPending):
		return pkg.NewDomainErrorSimple("INTERVIEW_NOT_PENDING", "Interview is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInterviewNotConfirmed):
		return pkg.NewDomainErrorSimple("INTERVIEW_NOT_CONFIRMED", "Interview is not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInterviewTerminal):
		return pkg.NewDomainErrorSimple("INTERVIEW_TERMINAL", "Interview is already completed or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidChosenTime):
		return pkg.NewDomainErrorSimple("INVALID_CHOSEN_TIME", "Chosen time is not among the proposed times", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
