package dfa

import "sync"

// Machine is an immutable deterministic finite automaton: states, ordered
// alphabet, a transition table indexed by (state, symbol), one initial
// state and the set of accepting states, all frozen at Build time.
//
// Process walks a call-local cursor, so concurrent Process calls on a
// shared Machine never interfere. The separately held shared cursor
// (Step, Reset, CurrentState) supports incremental execution and is
// guarded by a mutex.
type Machine struct {
	states      []State
	byName      map[string]State
	alphabet    []Symbol
	alphaSet    map[Symbol]struct{}
	transitions []Transition
	table       map[string]map[Symbol]string
	initial     State
	accepting   map[string]struct{}

	mu      sync.Mutex
	current State
}

// newMachine freezes the builder-owned configuration. The builder is
// already marked consumed, but the snapshot copies everything anyway so
// no aliasing with builder internals survives.
func newMachine(b *Builder) *Machine {
	m := &Machine{
		states:      make([]State, 0, len(b.order)),
		byName:      make(map[string]State, len(b.order)),
		alphabet:    append([]Symbol(nil), b.alphabet...),
		alphaSet:    make(map[Symbol]struct{}, len(b.alphabet)),
		transitions: append([]Transition(nil), b.transitions...),
		table:       make(map[string]map[Symbol]string, len(b.table)),
		accepting:   make(map[string]struct{}),
	}
	for _, name := range b.order {
		st := b.states[name]
		m.states = append(m.states, st)
		m.byName[name] = st
		if st.Accepting {
			m.accepting[name] = struct{}{}
		}
	}
	for _, sym := range b.alphabet {
		m.alphaSet[sym] = struct{}{}
	}
	for from, row := range b.table {
		frozen := make(map[Symbol]string, len(row))
		for sym, to := range row {
			frozen[sym] = to
		}
		m.table[from] = frozen
	}
	m.initial = m.byName[b.initial]
	m.current = m.initial
	return m
}

// Process runs the sequence from the initial state and reports whether
// the final state is accepting. Each call is independent: the walk uses a
// cursor local to the call, and only its outcome is published to the
// shared cursor for introspection.
//
// An empty sequence performs zero transitions and evaluates acceptance
// directly against the initial state.
//
// A symbol outside the alphabet aborts the walk with a TransitionError;
// the shared cursor is left at the last state reached before the bad
// symbol.
func (m *Machine) Process(seq []Symbol) (bool, error) {
	cur := m.initial
	for _, sym := range seq {
		next, err := m.lookup(cur, sym)
		if err != nil {
			m.publish(cur)
			return false, err
		}
		cur = next
	}
	m.publish(cur)
	_, ok := m.accepting[cur.Name]
	return ok, nil
}

// ProcessString runs the string as a sequence of one-character symbols.
func (m *Machine) ProcessString(s string) (bool, error) {
	return m.Process(Symbols(s))
}

// Step advances the shared cursor by one symbol and returns the state
// reached. It serves callers that want to inspect the current state
// mid-sequence; batch callers should prefer Process.
func (m *Machine) Step(sym Symbol) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := m.lookup(m.current, sym)
	if err != nil {
		return State{}, err
	}
	m.current = next
	return next, nil
}

// Reset returns the shared cursor to the initial state without processing
// input.
func (m *Machine) Reset() {
	m.mu.Lock()
	m.current = m.initial
	m.mu.Unlock()
}

// CurrentState returns the shared cursor's state: the initial state, or
// wherever the last Process or Step left it.
func (m *Machine) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Accepts reports whether the shared cursor currently sits on an
// accepting state.
func (m *Machine) Accepts() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.accepting[m.current.Name]
	return ok
}

// States returns the machine's states in registration order.
func (m *Machine) States() []State {
	return append([]State(nil), m.states...)
}

// Alphabet returns the ordered alphabet.
func (m *Machine) Alphabet() []Symbol {
	return append([]Symbol(nil), m.alphabet...)
}

// Transitions returns the transitions in registration order.
func (m *Machine) Transitions() []Transition {
	return append([]Transition(nil), m.transitions...)
}

// InitialState returns the designated initial state.
func (m *Machine) InitialState() State {
	return m.initial
}

// AcceptingStates returns the accepting subset in registration order. The
// subset is the snapshot taken at Build time.
func (m *Machine) AcceptingStates() []State {
	out := make([]State, 0, len(m.accepting))
	for _, st := range m.states {
		if st.Accepting {
			out = append(out, st)
		}
	}
	return out
}

// State looks a state up by name.
func (m *Machine) State(name string) (State, error) {
	st, ok := m.byName[name]
	if !ok {
		return State{}, &StateError{Err: ErrUndefinedState, Name: name}
	}
	return st, nil
}

// lookup resolves one execution step from cur on sym.
func (m *Machine) lookup(cur State, sym Symbol) (State, error) {
	if _, ok := m.alphaSet[sym]; !ok {
		return State{}, &TransitionError{Err: ErrInvalidSymbol, From: cur.Name, On: sym}
	}
	to, ok := m.table[cur.Name][sym]
	if !ok {
		// Unreachable for machines produced by Build: completeness was
		// proven over the same alphabet this lookup uses.
		return State{}, &TransitionError{Err: ErrTransitionNotDefined, From: cur.Name, On: sym}
	}
	return m.byName[to], nil
}

func (m *Machine) publish(cur State) {
	m.mu.Lock()
	m.current = cur
	m.mu.Unlock()
}
