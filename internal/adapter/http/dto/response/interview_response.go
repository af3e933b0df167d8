package response

import (
	"time"

	"talentbruecke/internal/domain/entities"
)

type ProposedTimeResponse struct {
	DateTime        time.Time `json:"date_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

type InterviewResponse struct {
	ID            string                 `json:"id"`
	RelationID    string                 `json:"relation_id"`
	EmployerID    string                 `json:"employer_id"`
	CandidateID   string                 `json:"candidate_id"`
	Status        string                 `json:"status"`
	ProposedTimes []ProposedTimeResponse `json:"proposed_times"`
	ChosenTime    *ProposedTimeResponse  `json:"chosen_time,omitempty"`
	RoomID        string                 `json:"room_id,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`

	// Relation is set when completing the interview moved the relation.
	Relation *RelationResponse `json:"relation,omitempty"`
}

func FromInterview(iv entities.Interview) InterviewResponse {
	times := make([]ProposedTimeResponse, 0, len(iv.ProposedTimes))
	for _, p := range iv.ProposedTimes {
		times = append(times, ProposedTimeResponse{DateTime: p.DateTime, DurationMinutes: p.Duration})
	}
	var chosen *ProposedTimeResponse
	if iv.ChosenTime != nil {
		chosen = &ProposedTimeResponse{DateTime: iv.ChosenTime.DateTime, DurationMinutes: iv.ChosenTime.Duration}
	}

	return InterviewResponse{
		ID:            iv.ID,
		RelationID:    iv.RelationID,
		EmployerID:    iv.EmployerID,
		CandidateID:   iv.CandidateID,
		Status:        string(iv.Status),
		ProposedTimes: times,
		ChosenTime:    chosen,
		RoomID:        iv.RoomID,
		Notes:         iv.Notes,
		CreatedAt:     iv.CreatedAt,
		UpdatedAt:     iv.UpdatedAt,
	}
}

func FromInterviewWithRelation(iv entities.Interview, rel *entities.Relation) InterviewResponse {
	out := FromInterview(iv)
	if rel != nil {
		r := FromRelation(*rel)
		out.Relation = &r
	}
	return out
}
