package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	body := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound).ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Not found" {
		t.Fatalf("unexpected http error: %+v", body)
	}
}
