package handlers

import (
	"errors"
	"log"
	"net/http"

	request "talentbruecke/internal/adapter/http/dto/request"
	response "talentbruecke/internal/adapter/http/dto/response"
	"talentbruecke/internal/usecase"
	"talentbruecke/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote/payment workflow.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Request opens a quote request for the employer/candidate relation.
func (h *QuoteHandler) Request(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.Request(c.Request.Context(), actor, c.Param("employer_id"), c.Param("candidate_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// Resolve applies the staff decision on a pending request.
func (h *QuoteHandler) Resolve(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.QuoteResolveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Resolve(c.Request.Context(), actor, c.Param("quote_id"), payload.ResolveDecision(), payload.ToOptions())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// SelectOption marks one approved option as the employer's choice.
func (h *QuoteHandler) SelectOption(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.QuoteSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SelectOption(c.Request.Context(), actor, c.Param("quote_id"), payload.OptionID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Pay captures the placement fee and closes the quote workflow.
func (h *QuoteHandler) Pay(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quoteID := c.Param("quote_id")
	log.Printf("[quote][handler] pay start quote_id=%s actor_id=%s", quoteID, actor.ID)

	paid, rel, err := h.usecase.Pay(c.Request.Context(), actor, quoteID)
	if err != nil {
		log.Printf("[quote][handler] pay failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] pay success quote_id=%s relation_status=%s", quoteID, rel.Status)

	c.JSON(http.StatusOK, response.FromQuotePayment(paid, rel))
}

// GetByID returns one quote request to its participants or staff.
func (h *QuoteHandler) GetByID(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidEmployerID),
		errors.Is(err, usecase.ErrInvalidCandidateID), errors.Is(err, usecase.ErrInvalidQuoteDecision),
		errors.Is(err, usecase.ErrQuoteOptionsRequired), errors.Is(err, usecase.ErrInvalidQuoteOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRelationNotFound):
		return pkg.NewDomainErrorSimple("RELATION_NOT_FOUND", "Relation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteOptionNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_OPTION_NOT_FOUND", "Quote option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicatePendingQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_QUOTE_REQUEST", "An open quote request already exists for this relation", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote request is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote request is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoOptionSelected):
		return pkg.NewDomainErrorSimple("NO_OPTION_SELECTED", "Select a quote option before paying", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment provider rejected the payment", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
