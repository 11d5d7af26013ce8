package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/pontaoski/cadet/types"
)

func TestParseErrorMessage(t *testing.T) {
	err := ParseError{
		Expected: "'&' after auth",
		Got:      types.Token{Kind: types.IDENT, Text: "a", Offset: 5, Length: 1},
	}
	want := `got IDENT("a"), expected '&' after auth. offset 5`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrorsAreMatchable(t *testing.T) {
	wrapped := fmt.Errorf("parsing: %w", ParseError{Expected: "')'"})
	var pe ParseError
	if !goerrors.As(wrapped, &pe) || pe.Expected != "')'" {
		t.Fatalf("errors.As failed on %v", wrapped)
	}
	if !goerrors.Is(fmt.Errorf("x: %w", EOF), EOF) {
		t.Fatal("errors.Is failed for EOF")
	}
}
