package dfa

import "strings"

// Builder accumulates the configuration of a Machine and validates it in
// Build. A Builder is strictly single-use: after a successful Build every
// further configuration or build call fails with ErrBuilderConsumed, so a
// produced Machine can never be altered through the object that made it.
//
// Builder is not safe for concurrent use.
type Builder struct {
	alphabet    []Symbol
	alphaSet    map[Symbol]struct{}
	order       []string // state names in registration order
	states      map[string]State
	transitions []Transition
	table       map[string]map[Symbol]string
	initial     string
	hasInitial  bool
	consumed    bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		alphaSet: make(map[Symbol]struct{}),
		states:   make(map[string]State),
		table:    make(map[string]map[Symbol]string),
	}
}

// SetAlphabet replaces the alphabet with the given ordered sequence of
// symbols. Symbols are accepted as-is: any token is a valid atomic unit,
// matched by exact equality during execution. The caller is responsible
// for passing a de-duplicated sequence.
func (b *Builder) SetAlphabet(symbols ...Symbol) error {
	if b.consumed {
		return &ConfigurationError{Err: ErrBuilderConsumed}
	}
	b.alphabet = append([]Symbol(nil), symbols...)
	b.alphaSet = make(map[Symbol]struct{}, len(symbols))
	for _, sym := range symbols {
		b.alphaSet[sym] = struct{}{}
	}
	return nil
}

// AddState registers a non-accepting state under the given name.
func (b *Builder) AddState(name string) error {
	return b.addState(name, false)
}

// AddAcceptingState registers an accepting state under the given name.
func (b *Builder) AddAcceptingState(name string) error {
	return b.addState(name, true)
}

func (b *Builder) addState(name string, accepting bool) error {
	if b.consumed {
		return &ConfigurationError{Err: ErrBuilderConsumed}
	}
	if strings.TrimSpace(name) == "" {
		return &StateError{Err: ErrEmptyStateName, Name: name}
	}
	if _, ok := b.states[name]; ok {
		return &StateError{Err: ErrDuplicateState, Name: name}
	}
	b.states[name] = State{Name: name, Accepting: accepting}
	b.order = append(b.order, name)
	return nil
}

// SetInitialState designates the initial state. The name must already be
// registered.
func (b *Builder) SetInitialState(name string) error {
	if b.consumed {
		return &ConfigurationError{Err: ErrBuilderConsumed}
	}
	if _, ok := b.states[name]; !ok {
		return &StateError{Err: ErrUndefinedState, Name: name}
	}
	b.initial = name
	b.hasInitial = true
	return nil
}

// AddTransition registers the edge (from, on) -> to. Both endpoints must
// be registered states. Determinism is enforced here, not deferred to
// Build: a second transition for the same (from, on) pair is rejected
// immediately.
func (b *Builder) AddTransition(from string, on Symbol, to string) error {
	if b.consumed {
		return &ConfigurationError{Err: ErrBuilderConsumed}
	}
	if _, ok := b.states[from]; !ok {
		return &StateError{Err: ErrUndefinedState, Name: from}
	}
	if _, ok := b.states[to]; !ok {
		return &StateError{Err: ErrUndefinedState, Name: to}
	}
	row, ok := b.table[from]
	if !ok {
		row = make(map[Symbol]string)
		b.table[from] = row
	}
	if _, ok := row[on]; ok {
		return &TransitionError{Err: ErrDuplicateTransition, From: from, On: on}
	}
	row[on] = to
	b.transitions = append(b.transitions, Transition{From: from, On: on, To: to})
	return nil
}

// Build validates the accumulated configuration, marks the builder
// consumed, and returns an immutable Machine snapshot.
//
// Validation order is fixed, so a multiply-invalid configuration always
// fails the same way: no states, then empty alphabet, then no initial
// state, then per-state completeness. The completeness check walks the
// indexed table once per (state, symbol) pair.
func (b *Builder) Build() (*Machine, error) {
	if b.consumed {
		return nil, &ConfigurationError{Err: ErrBuilderConsumed}
	}
	if len(b.states) == 0 {
		return nil, &ConfigurationError{Err: ErrNoStates}
	}
	if len(b.alphabet) == 0 {
		return nil, &ConfigurationError{Err: ErrEmptyAlphabet}
	}
	if !b.hasInitial {
		return nil, &ConfigurationError{Err: ErrNoInitialState}
	}

	for _, name := range b.order {
		row := b.table[name]
		var missing []Symbol
		for _, sym := range b.alphabet {
			if _, ok := row[sym]; !ok {
				missing = append(missing, sym)
			}
		}
		if len(missing) > 0 {
			return nil, &ConfigurationError{
				Err:     ErrIncompleteTransitions,
				State:   name,
				Missing: missing,
			}
		}
	}

	b.consumed = true
	return newMachine(b), nil
}
