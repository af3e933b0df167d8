package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentbruecke/internal/domain/entities"
	mock_interfaces "talentbruecke/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func proposedSlots() []entities.ProposedTime {
	return []entities.ProposedTime{
		{DateTime: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), Duration: 45},
		{DateTime: time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC), Duration: 45},
	}
}

func pendingInterview() entities.Interview {
	now := time.Now().UTC()
	return entities.Interview{
		ID:            "iv-1",
		RelationID:    "emp-1/cand-1",
		EmployerID:    "emp-1",
		CandidateID:   "cand-1",
		Status:        entities.InterviewStatusPending,
		ProposedTimes: proposedSlots(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func confirmedInterview() entities.Interview {
	iv := pendingInterview()
	iv.Status = entities.InterviewStatusConfirmed
	iv.ChosenTime = &iv.ProposedTimes[0]
	iv.RoomID = "room-1"
	return iv
}

func TestInterviewUseCase_Schedule(t *testing.T) {
	t.Run("requires proposed times", func(t *testing.T) {
		uc := NewInterviewUseCase(nil, nil, nil)
		_, err := uc.Schedule(context.Background(), employerActor("emp-1"), "emp-1", "cand-1", nil, "")
		if !errors.Is(err, ErrNoProposedTimes) {
			t.Fatalf("expected ErrNoProposedTimes, got %v", err)
		}
	})

	t.Run("candidates may not schedule", func(t *testing.T) {
		uc := NewInterviewUseCase(nil, nil, nil)
		_, err := uc.Schedule(context.Background(), candidateActor("cand-1"), "emp-1", "cand-1", proposedSlots(), "")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("relation stage must allow interviews", func(t *testing.T) {
		for _, from := range []entities.RelationStatus{
			entities.RelationStatusPotential,
			entities.RelationStatusHired,
		} {
			t.Run(string(from), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
				relations := mock_interfaces.NewMockIRelationRepository(ctrl)
				candidates := mock_interfaces.NewMockICandidateRepository(ctrl)
				uc := NewInterviewUseCase(interviews, relations, candidates)

				relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(from), nil)

				_, err := uc.Schedule(context.Background(), employerActor("emp-1"), "emp-1", "cand-1", proposedSlots(), "")
				if !errors.Is(err, ErrRelationNotInterviewable) {
					t.Fatalf("expected ErrRelationNotInterviewable, got %v", err)
				}
			})
		}
	})

	t.Run("candidate must be verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		relations := mock_interfaces.NewMockIRelationRepository(ctrl)
		candidates := mock_interfaces.NewMockICandidateRepository(ctrl)
		uc := NewInterviewUseCase(interviews, relations, candidates)

		relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(entities.RelationStatusShortlisted), nil)
		candidates.EXPECT().GetByID(gomock.Any(), "cand-1").Return(verifiableCandidate(entities.VerificationStatusPending), nil)

		_, err := uc.Schedule(context.Background(), employerActor("emp-1"), "emp-1", "cand-1", proposedSlots(), "")
		if !errors.Is(err, ErrCandidateNotVerified) {
			t.Fatalf("expected ErrCandidateNotVerified, got %v", err)
		}
	})

	t.Run("creates pending interview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		relations := mock_interfaces.NewMockIRelationRepository(ctrl)
		candidates := mock_interfaces.NewMockICandidateRepository(ctrl)
		uc := NewInterviewUseCase(interviews, relations, candidates)

		relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(entities.RelationStatusShortlisted), nil)
		candidates.EXPECT().GetByID(gomock.Any(), "cand-1").Return(verifiableCandidate(entities.VerificationStatusVerified), nil)
		interviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, iv entities.Interview) (entities.Interview, error) {
				if iv.Status != entities.InterviewStatusPending || iv.RelationID != "emp-1/cand-1" {
					t.Fatalf("unexpected interview %+v", iv)
				}
				if len(iv.ProposedTimes) != 2 {
					t.Fatalf("expected 2 proposed times, got %d", len(iv.ProposedTimes))
				}
				return iv, nil
			})

		if _, err := uc.Schedule(context.Background(), employerActor("emp-1"), "emp-1", "cand-1", proposedSlots(), "second round"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-scheduling from interviewed is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		relations := mock_interfaces.NewMockIRelationRepository(ctrl)
		candidates := mock_interfaces.NewMockICandidateRepository(ctrl)
		uc := NewInterviewUseCase(interviews, relations, candidates)

		relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(entities.RelationStatusInterviewed), nil)
		candidates.EXPECT().GetByID(gomock.Any(), "cand-1").Return(verifiableCandidate(entities.VerificationStatusVerified), nil)
		interviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, iv entities.Interview) (entities.Interview, error) { return iv, nil })

		if _, err := uc.Schedule(context.Background(), employerActor("emp-1"), "emp-1", "cand-1", proposedSlots(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInterviewUseCase_Confirm(t *testing.T) {
	t.Run("confirm assigns the slot and a room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(pendingInterview(), nil)
		interviews.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, iv entities.Interview) (entities.Interview, error) {
				if iv.Status != entities.InterviewStatusConfirmed {
					t.Fatalf("expected confirmed, got %s", iv.Status)
				}
				if iv.ChosenTime == nil || !iv.ChosenTime.DateTime.Equal(proposedSlots()[1].DateTime) {
					t.Fatalf("expected the second slot chosen, got %+v", iv.ChosenTime)
				}
				if iv.RoomID == "" {
					t.Fatal("expected a room id")
				}
				return iv, nil
			})

		if _, err := uc.Confirm(context.Background(), candidateActor("cand-1"), "iv-1", proposedSlots()[1].DateTime); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("chosen time must be one of the proposals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(pendingInterview(), nil)

		_, err := uc.Confirm(context.Background(), candidateActor("cand-1"), "iv-1", time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrInvalidChosenTime) {
			t.Fatalf("expected ErrInvalidChosenTime, got %v", err)
		}
	})

	t.Run("only pending interviews confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(confirmedInterview(), nil)

		_, err := uc.Confirm(context.Background(), candidateActor("cand-1"), "iv-1", proposedSlots()[0].DateTime)
		if !errors.Is(err, ErrInterviewNotPending) {
			t.Fatalf("expected ErrInterviewNotPending, got %v", err)
		}
	})

	t.Run("outsiders may not touch the interview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(pendingInterview(), nil)

		_, err := uc.Confirm(context.Background(), employerActor("emp-2"), "iv-1", proposedSlots()[0].DateTime)
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestInterviewUseCase_Complete(t *testing.T) {
	t.Run("candidates may not complete", func(t *testing.T) {
		uc := NewInterviewUseCase(nil, nil, nil)
		_, _, err := uc.Complete(context.Background(), candidateActor("cand-1"), "iv-1")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("completion cascades the relation to interviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		relations := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewInterviewUseCase(interviews, relations, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(confirmedInterview(), nil)
		interviews.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, iv entities.Interview) (entities.Interview, error) {
				if iv.Status != entities.InterviewStatusCompleted {
					t.Fatalf("expected completed, got %s", iv.Status)
				}
				return iv, nil
			})
		relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(entities.RelationStatusShortlisted), nil)
		relations.EXPECT().UpdateStatus(gomock.Any(), "emp-1", "cand-1", entities.RelationStatusInterviewed).
			Return(relationAt(entities.RelationStatusInterviewed), nil)

		_, rel, err := uc.Complete(context.Background(), employerActor("emp-1"), "iv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rel == nil || rel.Status != entities.RelationStatusInterviewed {
			t.Fatalf("expected cascade to interviewed, got %+v", rel)
		}
	})

	t.Run("no cascade when the relation is already hired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		relations := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewInterviewUseCase(interviews, relations, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(confirmedInterview(), nil)
		interviews.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, iv entities.Interview) (entities.Interview, error) { return iv, nil })
		relations.EXPECT().Get(gomock.Any(), "emp-1", "cand-1").Return(relationAt(entities.RelationStatusHired), nil)

		_, rel, err := uc.Complete(context.Background(), employerActor("emp-1"), "iv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rel != nil {
			t.Fatalf("expected no relation cascade, got %+v", rel)
		}
	})

	t.Run("only confirmed interviews complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(pendingInterview(), nil)

		_, _, err := uc.Complete(context.Background(), employerActor("emp-1"), "iv-1")
		if !errors.Is(err, ErrInterviewNotConfirmed) {
			t.Fatalf("expected ErrInterviewNotConfirmed, got %v", err)
		}
	})
}

func TestInterviewUseCase_Cancel(t *testing.T) {
	t.Run("pending and confirmed interviews cancel", func(t *testing.T) {
		for name, iv := range map[string]entities.Interview{
			"pending":   pendingInterview(),
			"confirmed": confirmedInterview(),
		} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
				uc := NewInterviewUseCase(interviews, nil, nil)

				interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(iv, nil)
				interviews.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated entities.Interview) (entities.Interview, error) {
						if updated.Status != entities.InterviewStatusCancelled {
							t.Fatalf("expected cancelled, got %s", updated.Status)
						}
						return updated, nil
					})

				if _, err := uc.Cancel(context.Background(), candidateActor("cand-1"), "iv-1"); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
		}
	})

	t.Run("terminal interviews stay put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		interviews := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewInterviewUseCase(interviews, nil, nil)

		done := confirmedInterview()
		done.Status = entities.InterviewStatusCompleted
		interviews.EXPECT().GetByID(gomock.Any(), "iv-1").Return(done, nil)

		_, err := uc.Cancel(context.Background(), candidateActor("cand-1"), "iv-1")
		if !errors.Is(err, ErrInterviewTerminal) {
			t.Fatalf("expected ErrInterviewTerminal, got %v", err)
		}
	})
}
