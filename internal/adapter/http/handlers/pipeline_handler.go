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

var errInvalidPipelinePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid pipeline payload", http.StatusBadRequest)

// PipelineHandler handles HTTP requests for the employer's candidate board.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// AddToPool puts a candidate on the employer's board at potential.
func (h *PipelineHandler) AddToPool(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rel, err := h.usecase.AddToPool(c.Request.Context(), actor, c.Param("employer_id"), c.Param("candidate_id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRelation(rel))
}

// Move applies a board drag to the target stage.
func (h *PipelineHandler) Move(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.PipelineMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPipelinePayload.HTTPStatus, errInvalidPipelinePayload.ToHTTPError())
		return
	}

	rel, err := h.usecase.Move(c.Request.Context(), actor, c.Param("employer_id"), c.Param("candidate_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRelation(rel))
}

// ListByEmployer returns every relation on the employer's board.
func (h *PipelineHandler) ListByEmployer(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relations, err := h.usecase.ListByEmployer(c.Request.Context(), actor, c.Param("employer_id"))
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRelations(relations))
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployerID), errors.Is(err, usecase.ErrInvalidCandidateID), errors.Is(err, usecase.ErrInvalidRelationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRelationNotFound):
		return pkg.NewDomainErrorSimple("RELATION_NOT_FOUND", "Relation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLockedByQuote):
		return pkg.NewDomainErrorSimple("LOCKED_BY_QUOTE", "Relation is locked by an open quote request", http.StatusConflict)
	case errors.Is(err, usecase.ErrTerminalStageLocked):
		return pkg.NewDomainErrorSimple("TERMINAL_STAGE_LOCKED", "Interviewed and hired only progress through quote payment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
