package entities

import "time"

// QuoteStatus is the lifecycle of a placement quote request.
//
// pending and approved-without-payment are "open": an open quote locks its
// relation at asked_quote. rejected and paid are terminal.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusPaid     QuoteStatus = "paid"
)

// QuoteItem is one cost line inside a quote option.
type QuoteItem struct {
	Label       string  `json:"label"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// QuoteOption is one selectable placement package offered to the employer.
// At most one option per request carries Selected=true.
type QuoteOption struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	CostEstimate float64     `json:"cost_estimate"`
	Perks        []string    `json:"perks,omitempty"`
	Items        []QuoteItem `json:"items"`
	Selected     bool        `json:"selected"`
}

// Total sums the option's line items. Amounts are non-negative and
// currency-agnostic; rendering with a currency symbol happens at the
// boundary.
func (o QuoteOption) Total() float64 {
	total := 0.0
	for _, it := range o.Items {
		if it.Amount > 0 {
			total += it.Amount
		}
	}
	return total
}

// QuoteRequest is the quote aggregate attached to one relation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (relation_id-index): relation_id
//
// RelationID is the composite "employerID/candidateID" key of the owning
// relation. At most one open request may exist per relation.
type QuoteRequest struct {
	ID          string        `json:"id"`
	RelationID  string        `json:"relation_id"`
	EmployerID  string        `json:"employer_id"`
	CandidateID string        `json:"candidate_id"`
	Status      QuoteStatus   `json:"status"`
	Options     []QuoteOption `json:"options,omitempty"`
	RequestedAt time.Time     `json:"requested_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

// IsOpen reports whether the request still locks its relation. A paid or
// rejected request releases the lock.
func (q QuoteRequest) IsOpen() bool {
	return q.Status == QuoteStatusPending || q.Status == QuoteStatusApproved
}

// SelectedOption returns the currently selected option, if any.
func (q QuoteRequest) SelectedOption() (QuoteOption, bool) {
	for _, o := range q.Options {
		if o.Selected {
			return o, true
		}
	}
	return QuoteOption{}, false
}
