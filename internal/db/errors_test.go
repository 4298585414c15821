package db

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_WrapsOperation(t *testing.T) {
	cause := errors.New("no reachable servers")
	err := &Error{Op: OpListCollections, Err: cause}

	if got, want := err.Error(), "listCollections: no reachable servers"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}

	wrapped := fmt.Errorf("dispatch: %w", err)
	var dbErr *Error
	if !errors.As(wrapped, &dbErr) {
		t.Fatal("errors.As failed to find *db.Error")
	}
	if dbErr.Op != OpListCollections {
		t.Errorf("Op = %q, want %q", dbErr.Op, OpListCollections)
	}
}
