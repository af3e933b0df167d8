package usecase

import "errors"

// ErrNotAuthorized rejects an operation attempted by the wrong role or the
// wrong principal. It is checked before any mutation.
var ErrNotAuthorized = errors.New("actor not authorized for this operation")
