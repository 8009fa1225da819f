package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Auth("nope"), fiber.StatusUnauthorized},
		{Validation("missing field"), fiber.StatusBadRequest},
		{NotFound("gone"), fiber.StatusNotFound},
		{Conflict("self add"), fiber.StatusConflict},
		{Storage("db down", errors.New("boom")), fiber.StatusInternalServerError},
		{errors.New("untyped"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := StatusCode(tc.err); got != tc.status {
			t.Fatalf("StatusCode(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestPublicMessageHidesStorageDetail(t *testing.T) {
	err := Storage("failed to send message", errors.New("pq: connection refused"))
	if got := PublicMessage(err); got != "internal server error" {
		t.Fatalf("storage detail leaked: %q", got)
	}

	if got := PublicMessage(Validation("message must have a body or an attachment")); got != "message must have a body or an attachment" {
		t.Fatalf("validation message should pass through, got %q", got)
	}
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Storage("db down", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be reachable via errors.Is")
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var appErr *Error
	if !errors.As(wrapped, &appErr) || appErr.Kind != KindStorage {
		t.Fatal("expected the typed error through a wrap")
	}
}
