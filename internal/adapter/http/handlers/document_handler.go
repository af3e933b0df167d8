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

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid document payload", http.StatusBadRequest)

// DocumentHandler handles HTTP requests for candidate documents.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// Upload stores a new document for the candidate.
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.DocumentUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}
	data, err := payload.DecodeContent()
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.Upload(c.Request.Context(), actor, c.Param("candidate_id"), payload.ResolveType(), payload.FileName, data)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(d))
}

// ListByCandidate returns the candidate's document metadata.
func (h *DocumentHandler) ListByCandidate(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	documents, err := h.usecase.ListByCandidate(c.Request.Context(), actor, c.Param("candidate_id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(documents))
}

// Delete removes a pending document.
func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("document_id")); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Review records the staff verdict on one document.
func (h *DocumentHandler) Review(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.DocumentReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.Review(c.Request.Context(), actor, c.Param("document_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(d))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidCandidateID),
		errors.Is(err, usecase.ErrInvalidDocument), errors.Is(err, usecase.ErrInvalidDocumentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotDeletable):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_DELETABLE", "Only pending documents can be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
