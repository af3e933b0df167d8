package entities

import "time"

// RelationStatus is the pipeline stage of one employer/candidate relation.
//
// The stages are ordered, but the engine only enforces the two documented
// locks (open quote, terminal stage); any other move is accepted. Full
// forward-only ordering is a product decision that has not been taken.
type RelationStatus string

const (
	RelationStatusPotential   RelationStatus = "potential"
	RelationStatusShortlisted RelationStatus = "shortlisted"
	RelationStatusAskedQuote  RelationStatus = "asked_quote"
	RelationStatusInterviewed RelationStatus = "interviewed"
	RelationStatusHired       RelationStatus = "hired"
)

var relationStageRank = map[RelationStatus]int{
	RelationStatusPotential:   0,
	RelationStatusShortlisted: 1,
	RelationStatusAskedQuote:  2,
	RelationStatusInterviewed: 3,
	RelationStatusHired:       4,
}

// IsValid reports whether s is a known pipeline stage.
func (s RelationStatus) IsValid() bool {
	_, ok := relationStageRank[s]
	return ok
}

// AtOrPast reports whether s is at the given stage or further along the
// pipeline. Used by the interview cascade, which must never regress a
// relation.
func (s RelationStatus) AtOrPast(other RelationStatus) bool {
	return relationStageRank[s] >= relationStageRank[other]
}

// Relation is the per-employer tracking record for one candidate.
//
// Storage model (DynamoDB):
//   - PK: employer_id
//   - SK: candidate_id
//
// Relations are never hard-deleted, only status-transitioned. Lock state is
// not stored: it is derived at read time from the relation's open quote
// request, so there is a single source of truth.
type Relation struct {
	EmployerID  string         `json:"employer_id"`
	CandidateID string         `json:"candidate_id"`
	Status      RelationStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsTerminalStage reports whether the relation sits in a stage that direct
// status edits may not leave. Interviewed and hired only progress through
// the quote/payment path.
func (r Relation) IsTerminalStage() bool {
	return r.Status == RelationStatusInterviewed || r.Status == RelationStatusHired
}
