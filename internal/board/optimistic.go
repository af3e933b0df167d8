package board

import "errors"

var ErrCommandSettled = errors.New("optimistic command already committed or rolled back")

type commandState int

const (
	commandApplied commandState = iota
	commandCommitted
	commandRolledBack
)

// Command is a single optimistic mutation over a state of type S. Begin takes
// a snapshot and applies the mutation immediately; the caller later settles
// the command exactly once, with Commit when the server confirmed the change
// or Rollback to restore the snapshot when it did not.
type Command[S any] struct {
	snapshot S
	state    commandState
}

// Begin snapshots the current state and runs the mutation.
func Begin[S any](snapshot S, apply func()) *Command[S] {
	apply()
	return &Command[S]{snapshot: snapshot, state: commandApplied}
}

// Applied reports whether the command is still awaiting Commit or Rollback.
func (c *Command[S]) Applied() bool {
	return c.state == commandApplied
}

// Commit settles the command. reconcile, when non-nil, overwrites the
// optimistic state with the server echo.
func (c *Command[S]) Commit(reconcile func()) error {
	if c.state != commandApplied {
		return ErrCommandSettled
	}
	if reconcile != nil {
		reconcile()
	}
	c.state = commandCommitted
	return nil
}

// Rollback settles the command by restoring the snapshot.
func (c *Command[S]) Rollback(restore func(S)) error {
	if c.state != commandApplied {
		return ErrCommandSettled
	}
	restore(c.snapshot)
	c.state = commandRolledBack
	return nil
}
