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

var errInvalidVerificationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid verification payload", http.StatusBadRequest)

// VerificationHandler handles HTTP requests for candidate profiles and the
// verification workflow.

type VerificationHandler struct {
	usecase usecase.IVerificationUseCase
}

func NewVerificationHandler(uc usecase.IVerificationUseCase) *VerificationHandler {
	return &VerificationHandler{usecase: uc}
}

// UpdateProfile replaces the candidate's editable profile.
func (h *VerificationHandler) UpdateProfile(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVerificationPayload.HTTPStatus, errInvalidVerificationPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateProfile(c.Request.Context(), actor, c.Param("candidate_id"), payload.ToProfile())
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCandidate(updated))
}

// GetChecklist returns the candidate's completeness panel.
func (h *VerificationHandler) GetChecklist(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.usecase.GetChecklist(c.Request.Context(), actor, c.Param("candidate_id"))
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklist(view))
}

// SubmitForReview moves the candidate into the staff review queue.
func (h *VerificationHandler) SubmitForReview(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	candidate, err := h.usecase.SubmitForReview(c.Request.Context(), actor, c.Param("candidate_id"))
	if err != nil {
		var incomplete *usecase.IncompleteProfileError
		if errors.As(err, &incomplete) {
			appErr := pkg.NewDomainErrorSimple("INCOMPLETE_PROFILE", "Profile or documents are incomplete", http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{"missing": incomplete.Missing}))
			return
		}
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCandidate(candidate))
}

// Withdraw pulls a pending submission back to unverified.
func (h *VerificationHandler) Withdraw(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	candidate, err := h.usecase.Withdraw(c.Request.Context(), actor, c.Param("candidate_id"))
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCandidate(candidate))
}

// SetStatus applies the staff verification decision.
func (h *VerificationHandler) SetStatus(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.VerificationDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVerificationPayload.HTTPStatus, errInvalidVerificationPayload.ToHTTPError())
		return
	}

	candidate, err := h.usecase.SetStatus(c.Request.Context(), actor, c.Param("candidate_id"), payload.ResolveStatus(), payload.Reason)
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCandidate(candidate))
}

func mapVerificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCandidateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return pkg.NewDomainErrorSimple("CANDIDATE_NOT_FOUND", "Candidate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVerificationAlreadyInProgress):
		return pkg.NewDomainErrorSimple("VERIFICATION_IN_PROGRESS", "A verification review is already pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidVerificationStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid verification status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVerificationTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Verification transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRejectionReasonRequired):
		return pkg.NewDomainErrorSimple("REJECTION_REASON_REQUIRED", "A rejection requires a reason", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
