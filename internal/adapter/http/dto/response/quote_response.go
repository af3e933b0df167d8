package response

import (
	"time"

	"talentbruecke/internal/domain/entities"
)

type QuoteItemResponse struct {
	Label       string  `json:"label"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type QuoteOptionResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	CostEstimate float64             `json:"cost_estimate"`
	Total        float64             `json:"total"`
	Perks        []string            `json:"perks,omitempty"`
	Items        []QuoteItemResponse `json:"items"`
	Selected     bool                `json:"selected"`
}

type QuoteResponse struct {
	ID          string                `json:"id"`
	RelationID  string                `json:"relation_id"`
	EmployerID  string                `json:"employer_id"`
	CandidateID string                `json:"candidate_id"`
	Status      string                `json:"status"`
	Options     []QuoteOptionResponse `json:"options"`
	RequestedAt time.Time             `json:"requested_at"`
	ResolvedAt  *time.Time            `json:"resolved_at,omitempty"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	options := make([]QuoteOptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		items := make([]QuoteItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, QuoteItemResponse{Label: it.Label, Amount: it.Amount, Description: it.Description})
		}
		options = append(options, QuoteOptionResponse{
			ID:           o.ID,
			Name:         o.Name,
			CostEstimate: o.CostEstimate,
			Total:        o.Total(),
			Perks:        o.Perks,
			Items:        items,
			Selected:     o.Selected,
		})
	}

	return QuoteResponse{
		ID:          q.ID,
		RelationID:  q.RelationID,
		EmployerID:  q.EmployerID,
		CandidateID: q.CandidateID,
		Status:      string(q.Status),
		Options:     options,
		RequestedAt: q.RequestedAt,
		ResolvedAt:  q.ResolvedAt,
	}
}

// QuotePaymentResponse is returned by the pay endpoint; it carries the paid
// request together with the relation the payment moved to hired.
type QuotePaymentResponse struct {
	Quote    QuoteResponse    `json:"quote"`
	Relation RelationResponse `json:"relation"`
}

func FromQuotePayment(q entities.QuoteRequest, r entities.Relation) QuotePaymentResponse {
	return QuotePaymentResponse{Quote: FromQuote(q), Relation: FromRelation(r)}
}
