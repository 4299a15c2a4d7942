/*
Package dfa implements a deterministic finite automaton toolkit: a staged,
single-use Builder that validates and freezes a state-transition table, and
an immutable Machine that runs symbol sequences against it to decide
acceptance.

The package is kept pure: no I/O, no persistence, no logging. Adapters
(definition files, stores, HTTP, CLI) live elsewhere and consume only the
public contract defined here.

# Key Entities

  - State: an immutable named node with an accepting flag. Identity is the
    name alone.
  - Transition: an immutable directed edge (from state, symbol, to state).
  - Builder: accumulates states, alphabet, transitions and an initial
    state, then validates and freezes them into a Machine. Strictly
    single-use.
  - Machine: the frozen automaton. Process is a pure function of the
    machine and the input sequence; a shared cursor supports incremental
    stepping and introspection.

# Usage

	b := dfa.NewBuilder()
	b.SetAlphabet("0", "1")
	b.AddAcceptingState("S0")
	b.AddState("S1")
	b.AddState("S2")
	b.SetInitialState("S0")
	b.AddTransition("S0", "0", "S0")
	// ... one transition per (state, symbol) pair ...

	m, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	ok, err := m.ProcessString("1001")

Build enforces the DFA invariants up front: at least one state, a non-empty
alphabet, a registered initial state, and exactly one transition per
(state, symbol) pair. A Machine therefore never has to make a policy
decision mid-run; execution is a table walk.
*/
package dfa
