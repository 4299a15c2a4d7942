package dfa

// State represents an immutable named node of a machine.
//
// Identity is the name alone: two states sharing a name are the same state
// even if their accepting flags differ. The Builder's registry is keyed by
// name and refuses duplicates, so two flag-divergent views of one name can
// never coexist inside a built Machine.
type State struct {
	Name      string `json:"name" yaml:"name"`
	Accepting bool   `json:"accepting,omitempty" yaml:"accepting,omitempty"`
}

// String renders the state for diagnostics: "<name>" or
// "<name> (accepting)".
func (s State) String() string {
	if s.Accepting {
		return s.Name + " (accepting)"
	}
	return s.Name
}
