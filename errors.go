package search

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is matched by every *ExhaustedError.
	ErrExhausted = errors.New("search: frontier exhausted before reaching a goal")

	// ErrNoInitialState is returned when Search is called before SetState.
	ErrNoInitialState = errors.New("search: initial state not set")

	// ErrMissingCost is returned when an informed strategy gets a nil cost function.
	ErrMissingCost = errors.New("search: strategy requires a cost function")

	// ErrUnknownStrategy is returned for a Strategy value outside the known set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNilGraph is returned when the engine was built without a graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSearchInProgress is returned when Search is re-entered from a graph callback.
	ErrSearchInProgress = errors.New("search: search already in progress")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// ExhaustedError reports that the whole reachable space was explored
// without satisfying the goal predicate.
type ExhaustedError struct {
	Strategy   Strategy
	Expanded   int
	Discovered int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("search: %s exhausted the frontier after %d expansions (%d states discovered)",
		e.Strategy, e.Expanded, e.Discovered)
}

// Is makes errors.Is(err, ErrExhausted) hold.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
