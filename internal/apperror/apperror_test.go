package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/theirongolddev/switchride/internal/calc"
)

func TestErrorMessagePriority(t *testing.T) {
	err := &Error{Kind: KindValidation, Msg: "km must be a number", Err: errors.New("strconv")}
	if err.Error() != "km must be a number" {
		t.Fatalf("Error() = %q, want msg", err.Error())
	}

	err = &Error{Kind: KindValidation, Err: errors.New("strconv")}
	if err.Error() != "strconv" {
		t.Fatalf("Error() = %q, want wrapped text", err.Error())
	}

	err = &Error{Kind: KindNotFound}
	if err.Error() != string(KindNotFound) {
		t.Fatalf("Error() = %q, want kind", err.Error())
	}
}

func TestUnwrapReachesDomainError(t *testing.T) {
	err := BadParam("budget", "unknown budget", calc.ErrUnknownBudget)
	if !errors.Is(err, calc.ErrUnknownBudget) {
		t.Fatal("wrapped domain error not reachable via errors.Is")
	}
	if ParamOf(fmt.Errorf("range: %w", err)) != "budget" {
		t.Fatalf("ParamOf = %q, want budget", ParamOf(err))
	}
	if KindOf(err) != KindValidation {
		t.Fatalf("KindOf = %q, want validation", KindOf(err))
	}
}

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:    http.StatusNotFound,
		KindValidation:  http.StatusBadRequest,
		KindRateLimit:   http.StatusTooManyRequests,
		KindUnavailable: http.StatusServiceUnavailable,
		"":              http.StatusInternalServerError,
	}
	for k, want := range cases {
		if got := k.Status(); got != want {
			t.Errorf("Kind(%q).Status() = %d, want %d", k, got, want)
		}
	}
}

func TestIsMatchesWrappedKind(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("no such slide", nil))
	if !Is(wrapped, KindNotFound) {
		t.Fatal("Is did not match wrapped kind")
	}
	if Is(wrapped, KindValidation) {
		t.Fatal("Is matched a different kind")
	}
	if KindOf(wrapped) != KindNotFound {
		t.Fatalf("KindOf = %q, want not_found", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("KindOf of untyped error should be empty")
	}
}
