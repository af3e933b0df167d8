package entities

import "time"

// InterviewStatus is the scheduling lifecycle of one interview.
type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "pending"
	InterviewStatusConfirmed InterviewStatus = "confirmed"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// ProposedTime is one candidate slot offered when scheduling.
type ProposedTime struct {
	DateTime time.Time `json:"datetime"`
	Duration int       `json:"duration_minutes"`
}

// Interview is the interview aggregate attached to one relation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (relation_id-index): relation_id
//
// RoomID is an opaque token for joining the video session; it is assigned
// on confirmation and never interpreted by this service.
type Interview struct {
	ID            string          `json:"id"`
	RelationID    string          `json:"relation_id"`
	EmployerID    string          `json:"employer_id"`
	CandidateID   string          `json:"candidate_id"`
	Status        InterviewStatus `json:"status"`
	ProposedTimes []ProposedTime  `json:"proposed_times"`
	ChosenTime    *ProposedTime   `json:"chosen_time,omitempty"`
	RoomID        string          `json:"room_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsTerminal reports whether the interview can no longer change state.
func (i Interview) IsTerminal() bool {
	return i.Status == InterviewStatusCompleted || i.Status == InterviewStatusCancelled
}
