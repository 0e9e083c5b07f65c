package autocomplete

import (
	"errors"
	"fmt"
)

// ErrNotCycling is returned by SelectMatch when no match is active.
var ErrNotCycling = errors.New("no active match to select")

// NoMatchesError is returned when a completion request finds no candidates.
// It is recoverable: the caller reports it and the user keeps typing.
type NoMatchesError struct {
	Prefix string
	Dir    string
}

func (e *NoMatchesError) Error() string {
	if e.Prefix == "" {
		return fmt.Sprintf("no matches in %s", e.Dir)
	}
	return fmt.Sprintf("no matches for %q in %s", e.Prefix, e.Dir)
}
