package dfa

import (
	"errors"
	"fmt"
)

// Sentinel causes for the three error kinds. Callers match them with
// errors.Is; the typed wrappers below carry the offending name/symbol for
// callers that need detail (errors.As).
var (
	// ErrBuilderConsumed is returned by every Builder method after a
	// successful Build.
	ErrBuilderConsumed = errors.New("builder already consumed")

	// ErrNoStates is returned by Build when no state was registered.
	ErrNoStates = errors.New("no states")

	// ErrEmptyAlphabet is returned by Build when the alphabet is empty.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrNoInitialState is returned by Build when no initial state was
	// designated.
	ErrNoInitialState = errors.New("no initial state")

	// ErrIncompleteTransitions is returned by Build when some state lacks
	// a transition for an alphabet symbol.
	ErrIncompleteTransitions = errors.New("incomplete transitions")

	// ErrEmptyStateName is returned by AddState for an empty or
	// whitespace-only name.
	ErrEmptyStateName = errors.New("empty name")

	// ErrDuplicateState is returned by AddState when the name is taken.
	ErrDuplicateState = errors.New("duplicate state name")

	// ErrUndefinedState is returned when a referenced state name does not
	// resolve.
	ErrUndefinedState = errors.New("undefined state")

	// ErrDuplicateTransition is returned by AddTransition when a
	// transition already exists for the (from, symbol) pair.
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrInvalidSymbol is returned by Process or Step when an input
	// symbol is not a member of the alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrTransitionNotDefined guards the table lookup during execution.
	// It is unreachable for machines produced by Build, whose completeness
	// check covers the same alphabet the lookup uses.
	ErrTransitionNotDefined = errors.New("transition not defined")
)

// ConfigurationError reports a structural failure: the builder cannot
// produce a machine, or has already produced one.
type ConfigurationError struct {
	Err     error    // one of the sentinel causes above
	State   string   // offending state for incompleteness failures
	Missing []Symbol // alphabet symbols with no outgoing transition
}

func (e *ConfigurationError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("configuration: %v: state %q has no transition for %v", e.Err, e.State, e.Missing)
	}
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// StateError reports a bad state reference: an unknown name, a duplicate
// registration, or an empty name.
type StateError struct {
	Err  error
	Name string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %q: %v", e.Name, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

// TransitionError reports a transition collision at configuration time,
// or an invalid symbol during execution.
type TransitionError struct {
	Err  error
	From string // state the machine was in (or the edge's origin)
	On   Symbol
}

func (e *TransitionError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("transition: %v: (%s, %s)", e.Err, e.From, e.On)
	}
	return fmt.Sprintf("transition: %v: %q", e.Err, e.On)
}

func (e *TransitionError) Unwrap() error { return e.Err }
