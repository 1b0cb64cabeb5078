package elections

import (
	"errors"
	"fmt"
)

var (
	// ErrConstituencyNotFound is returned when a constituency search has no match
	ErrConstituencyNotFound = errors.New("constituency not found")

	errMissingHeader = errors.New("missing header row")
)

// RowError describes a data row that could not be turned into a
// constituency. Line is the 1-based line of the row in the source file.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
