package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID         = errors.New("invalid quote request id")
	ErrQuoteNotFound          = errors.New("quote request not found")
	ErrDuplicatePendingQuote  = errors.New("an open quote request already exists for this relation")
	ErrInvalidQuoteDecision   = errors.New("invalid quote decision")
	ErrQuoteNotPending        = errors.New("quote request is not pending")
	ErrQuoteNotApproved       = errors.New("quote request is not approved")
	ErrQuoteOptionsRequired   = errors.New("an approval requires at least one option")
	ErrInvalidQuoteOption     = errors.New("invalid quote option")
	ErrQuoteOptionNotFound    = errors.New("quote option not found")
	ErrNoOptionSelected       = errors.New("no quote option selected")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected the payment")
)

// QuoteDecision is the staff resolution verb for a pending request.
type QuoteDecision string

const (
	QuoteDecisionApprove QuoteDecision = "approve"
	QuoteDecisionReject  QuoteDecision = "reject"
)

// IQuoteUseCase runs the quote/payment workflow attached to a relation:
// pending -> approved -> (option selected) -> paid, or pending -> rejected.
// Paying is the single permitted exit from the asked_quote/interviewed lock
// and always lands the relation on hired.

type IQuoteUseCase interface {
	Request(ctx context.Context, actor entities.Actor, employerID, candidateID string) (entities.QuoteRequest, error)
	Resolve(ctx context.Context, actor entities.Actor, requestID string, decision QuoteDecision, options []entities.QuoteOption) (entities.QuoteRequest, error)
	SelectOption(ctx context.Context, actor entities.Actor, requestID, optionID string) (entities.QuoteRequest, error)
	Pay(ctx context.Context, actor entities.Actor, requestID string) (entities.QuoteRequest, entities.Relation, error)
	GetByID(ctx context.Context, actor entities.Actor, requestID string) (entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	relations interfaces.IRelationRepository
	gateway   interfaces.IPaymentGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, relations interfaces.IRelationRepository, gateway interfaces.IPaymentGateway) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, relations: relations, gateway: gateway}
}

// Request opens a quote request for the actor's relation with the candidate.
// At most one open request may exist per relation; a second call while the
// first is unresolved fails with ErrDuplicatePendingQuote. The relation is
// pulled forward to asked_quote but never regressed from a later stage.
func (u *QuoteUseCase) Request(ctx context.Context, actor entities.Actor, employerID, candidateID string) (entities.QuoteRequest, error) {
	employerID = strings.TrimSpace(employerID)
	candidateID = strings.TrimSpace(candidateID)
	if employerID == "" {
		return entities.QuoteRequest{}, ErrInvalidEmployerID
	}
	if candidateID == "" {
		return entities.QuoteRequest{}, ErrInvalidCandidateID
	}
	if !actor.Is(entities.RoleEmployer, employerID) {
		return entities.QuoteRequest{}, ErrNotAuthorized
	}

	rel, err := u.relations.Get(ctx, employerID, candidateID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if rel.EmployerID == "" {
		return entities.QuoteRequest{}, ErrRelationNotFound
	}

	relationID := RelationKey(employerID, candidateID)
	open, err := u.quotes.GetOpenByRelationID(ctx, relationID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if open.ID != "" {
		return entities.QuoteRequest{}, ErrDuplicatePendingQuote
	}

	created, err := u.quotes.Create(ctx, entities.QuoteRequest{
		ID:          uuid.NewString(),
		RelationID:  relationID,
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      entities.QuoteStatusPending,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	if !rel.Status.AtOrPast(entities.RelationStatusAskedQuote) {
		if _, err := u.relations.UpdateStatus(ctx, employerID, candidateID, entities.RelationStatusAskedQuote); err != nil {
			return entities.QuoteRequest{}, err
		}
	}
	return created, nil
}

// Resolve applies the staff decision on a pending request. Approval attaches
// the option list; rejection is terminal and releases the relation lock.
func (u *QuoteUseCase) Resolve(ctx context.Context, actor entities.Actor, requestID string, decision QuoteDecision, options []entities.QuoteOption) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	if !actor.IsStaff() {
		return entities.QuoteRequest{}, ErrNotAuthorized
	}

	q, err := u.quotes.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.QuoteRequest{}, ErrQuoteNotPending
	}

	switch decision {
	case QuoteDecisionApprove:
		prepared, err := prepareOptions(options)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		q.Status = entities.QuoteStatusApproved
		q.Options = prepared
	case QuoteDecisionReject:
		now := time.Now().UTC()
		q.Status = entities.QuoteStatusRejected
		q.ResolvedAt = &now
	default:
		return entities.QuoteRequest{}, ErrInvalidQuoteDecision
	}

	return u.quotes.Update(ctx, q)
}

// SelectOption marks exactly one option as selected, clearing any previous
// selection. Only the relation's employer may select, and only while the
// request is approved and unpaid.
func (u *QuoteUseCase) SelectOption(ctx context.Context, actor entities.Actor, requestID, optionID string) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	optionID = strings.TrimSpace(optionID)
	if requestID == "" || optionID == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	if !actor.Is(entities.RoleEmployer, q.EmployerID) {
		return entities.QuoteRequest{}, ErrNotAuthorized
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.QuoteRequest{}, ErrQuoteNotApproved
	}

	found := false
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			q.Options[i].Selected = true
			found = true
		} else {
			q.Options[i].Selected = false
		}
	}
	if !found {
		return entities.QuoteRequest{}, ErrQuoteOptionNotFound
	}

	return u.quotes.Update(ctx, q)
}

// Pay captures the placement fee for the selected option and closes the
// workflow: the request becomes paid and the owning relation is forced to
// hired regardless of its prior stage.
func (u *QuoteUseCase) Pay(ctx context.Context, actor entities.Actor, requestID string) (entities.QuoteRequest, entities.Relation, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, entities.Relation{}, ErrInvalidQuoteID
	}
	if u.gateway == nil {
		return entities.QuoteRequest{}, entities.Relation{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotes.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, entities.Relation{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, entities.Relation{}, ErrQuoteNotFound
	}
	if !actor.Is(entities.RoleEmployer, q.EmployerID) {
		return entities.QuoteRequest{}, entities.Relation{}, ErrNotAuthorized
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.QuoteRequest{}, entities.Relation{}, ErrQuoteNotApproved
	}
	option, ok := q.SelectedOption()
	if !ok {
		return entities.QuoteRequest{}, entities.Relation{}, ErrNoOptionSelected
	}

	amount := option.Total()
	log.Printf("[quote][usecase] pay start request_id=%s option_id=%s amount=%.2f", q.ID, option.ID, amount)

	payload, err := json.Marshal(map[string]any{
		"external_reference": q.ID,
		"description":        fmt.Sprintf("Placement quote %s option %s", q.ID, option.Name),
		"transaction_amount": amount,
	})
	if err != nil {
		return entities.QuoteRequest{}, entities.Relation{}, err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[quote][usecase] payment gateway failed request_id=%s err=%v", q.ID, err)
		return entities.QuoteRequest{}, entities.Relation{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[quote][usecase] payment not approved request_id=%s provider_payment_id=%s provider_status=%s", q.ID, providerPaymentID, providerStatus)
		return entities.QuoteRequest{}, entities.Relation{}, ErrPaymentGatewayRejected
	}
	log.Printf("[quote][usecase] payment captured request_id=%s provider_payment_id=%s", q.ID, providerPaymentID)

	now := time.Now().UTC()
	q.Status = entities.QuoteStatusPaid
	q.ResolvedAt = &now
	paid, err := u.quotes.Update(ctx, q)
	if err != nil {
		return entities.QuoteRequest{}, entities.Relation{}, err
	}

	rel, err := u.relations.UpdateStatus(ctx, q.EmployerID, q.CandidateID, entities.RelationStatusHired)
	if err != nil {
		log.Printf("[quote][usecase] hired cascade failed request_id=%s relation_id=%s err=%v", q.ID, q.RelationID, err)
		return entities.QuoteRequest{}, entities.Relation{}, err
	}
	log.Printf("[quote][usecase] pay success request_id=%s relation_id=%s relation_status=%s", q.ID, q.RelationID, rel.Status)

	return paid, rel, nil
}

// GetByID returns one request for its employer, its candidate, or staff.
func (u *QuoteUseCase) GetByID(ctx context.Context, actor entities.Actor, requestID string) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	if !actor.IsStaff() && !actor.Is(entities.RoleEmployer, q.EmployerID) && !actor.Is(entities.RoleCandidate, q.CandidateID) {
		return entities.QuoteRequest{}, ErrNotAuthorized
	}
	return q, nil
}

// prepareOptions normalizes staff-provided options: IDs are assigned when
// absent, selections are cleared, and the cost estimate defaults to the sum
// of the line items. Negative line amounts are rejected.
func prepareOptions(options []entities.QuoteOption) ([]entities.QuoteOption, error) {
	if len(options) == 0 {
		return nil, ErrQuoteOptionsRequired
	}

	prepared := make([]entities.QuoteOption, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o.Name) == "" {
			return nil, ErrInvalidQuoteOption
		}
		for _, it := range o.Items {
			if it.Amount < 0 {
				return nil, ErrInvalidQuoteOption
			}
		}
		if strings.TrimSpace(o.ID) == "" {
			o.ID = uuid.NewString()
		}
		o.Selected = false
		if o.CostEstimate == 0 {
			o.CostEstimate = o.Total()
		}
		prepared = append(prepared, o)
	}
	return prepared, nil
}
