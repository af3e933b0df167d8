// Package board is the server-side model of the employer's drag-and-drop
// pipeline board. A move is applied to the local card immediately, the card is
// disabled while the persistence call is in flight, and the card snaps back to
// its previous column when the call fails.
package board

import (
	"context"
	"errors"
	"sort"
	"sync"

	"talentbruecke/internal/domain/entities"
)

var (
	ErrUnknownCard  = errors.New("candidate is not on this board")
	ErrMoveInFlight = errors.New("a move for this candidate is already in flight")
)

// Mover persists a pipeline move. *usecase.PipelineUseCase satisfies it.
type Mover interface {
	Move(ctx context.Context, actor entities.Actor, employerID, candidateID string, target entities.RelationStatus) (entities.Relation, error)
}

type Board struct {
	mover      Mover
	actor      entities.Actor
	employerID string

	mu       sync.Mutex
	cards    map[string]*entities.Relation
	inFlight map[string]bool
}

// New builds a board over an employer's relations, one card per candidate.
func New(mover Mover, actor entities.Actor, employerID string, relations []entities.Relation) *Board {
	cards := make(map[string]*entities.Relation, len(relations))
	for i := range relations {
		r := relations[i]
		cards[r.CandidateID] = &r
	}
	return &Board{
		mover:      mover,
		actor:      actor,
		employerID: employerID,
		cards:      cards,
		inFlight:   make(map[string]bool),
	}
}

// Columns groups the cards by pipeline stage, each column sorted by candidate
// id for a stable rendering order.
func (b *Board) Columns() map[entities.RelationStatus][]entities.Relation {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make(map[entities.RelationStatus][]entities.Relation)
	for _, card := range b.cards {
		columns[card.Status] = append(columns[card.Status], *card)
	}
	for _, column := range columns {
		sort.Slice(column, func(i, j int) bool { return column[i].CandidateID < column[j].CandidateID })
	}
	return columns
}

// InFlight reports whether the candidate's card is currently disabled.
func (b *Board) InFlight(candidateID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight[candidateID]
}

// Move drags a card to the target column. The card moves optimistically and
// is disabled until the persistence call settles; on failure it is restored
// to its snapshot and the error is returned unchanged.
func (b *Board) Move(ctx context.Context, candidateID string, target entities.RelationStatus) (entities.Relation, error) {
	b.mu.Lock()
	card, ok := b.cards[candidateID]
	if !ok {
		b.mu.Unlock()
		return entities.Relation{}, ErrUnknownCard
	}
	if b.inFlight[candidateID] {
		b.mu.Unlock()
		return entities.Relation{}, ErrMoveInFlight
	}
	cmd := Begin(*card, func() { card.Status = target })
	b.inFlight[candidateID] = true
	b.mu.Unlock()

	moved, err := b.mover.Move(ctx, b.actor, b.employerID, candidateID, target)

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, candidateID)
	if err != nil {
		cmd.Rollback(func(s entities.Relation) { *card = s })
		return entities.Relation{}, err
	}
	cmd.Commit(func() { *card = moved })
	return moved, nil
}
