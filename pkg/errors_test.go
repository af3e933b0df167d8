package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("LOCKED_BY_QUOTE", "Relation is locked by an open quote", http.StatusConflict)
		if e.Error() != "LOCKED_BY_QUOTE: Relation is locked by an open quote" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
		body := e.ToHTTPError()
		if body.Code != "LOCKED_BY_QUOTE" || body.Details != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into the body")
		}
	})

	t.Run("with details", func(t *testing.T) {
		e := NewDomainErrorSimple("INCOMPLETE_PROFILE", "Profile is incomplete", http.StatusUnprocessableEntity)
		body := e.ToHTTPErrorWithDetails(map[string]any{"missing": []string{"bio", "skills"}})
		if body.Details == nil {
			t.Fatalf("expected details payload")
		}
	})
}
