package request

import (
	"talentbruecke/internal/domain/entities"
	"talentbruecke/internal/usecase"
)

type QuoteItemRequest struct {
	Label       string  `json:"label" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type QuoteOptionRequest struct {
	Name         string             `json:"name" binding:"required"`
	CostEstimate float64            `json:"cost_estimate"`
	Perks        []string           `json:"perks"`
	Items        []QuoteItemRequest `json:"items"`
}

// QuoteResolveRequest is the staff payload for resolving a pending quote
// request. Options are required when the decision is approve and ignored when
// it is reject.
type QuoteResolveRequest struct {
	Decision string               `json:"decision" binding:"required"`
	Options  []QuoteOptionRequest `json:"options"`
}

func (r QuoteResolveRequest) ResolveDecision() usecase.QuoteDecision {
	return usecase.QuoteDecision(r.Decision)
}

func (r QuoteResolveRequest) ToOptions() []entities.QuoteOption {
	options := make([]entities.QuoteOption, 0, len(r.Options))
	for _, o := range r.Options {
		items := make([]entities.QuoteItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, entities.QuoteItem{Label: it.Label, Amount: it.Amount, Description: it.Description})
		}
		options = append(options, entities.QuoteOption{
			Name:         o.Name,
			CostEstimate: o.CostEstimate,
			Perks:        o.Perks,
			Items:        items,
		})
	}
	return options
}

// QuoteSelectRequest picks one of the approved options.
type QuoteSelectRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}
