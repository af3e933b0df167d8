package request

import (
	"time"

	"talentbruecke/internal/domain/entities"
)

type ProposedTimeRequest struct {
	DateTime        time.Time `json:"date_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
}

const defaultInterviewDurationMinutes = 45

// InterviewScheduleRequest proposes one or more slots to the candidate.
type InterviewScheduleRequest struct {
	CandidateID   string                `json:"candidate_id" binding:"required"`
	ProposedTimes []ProposedTimeRequest `json:"proposed_times" binding:"required"`
	Notes         string                `json:"notes"`
}

func (r InterviewScheduleRequest) ToProposedTimes() []entities.ProposedTime {
	times := make([]entities.ProposedTime, 0, len(r.ProposedTimes))
	for _, p := range r.ProposedTimes {
		duration := p.DurationMinutes
		if duration <= 0 {
			duration = defaultInterviewDurationMinutes
		}
		times = append(times, entities.ProposedTime{DateTime: p.DateTime, Duration: duration})
	}
	return times
}

// InterviewConfirmRequest picks one of the proposed slots.
type InterviewConfirmRequest struct {
	ChosenTime time.Time `json:"chosen_time" binding:"required"`
}
