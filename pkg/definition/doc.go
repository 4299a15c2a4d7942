/*
Package definition implements the declarative machine definition format:
a small YAML/JSON document describing alphabet, states, initial state and
transitions, compiled into a dfa.Machine through the builder.

	name: div3
	alphabet: ["0", "1"]
	states:
	  - name: S0
	    accepting: true
	  - name: S1
	  - name: S2
	initial: S0
	transitions:
	  - {from: S0, on: "0", to: S0}
	  - {from: S0, on: "1", to: S1}
	  # ...

Definitions are the only persisted representation in the toolkit: stores
save them, the HTTP API exchanges them, and the CLI loads them from disk.
Compilation reuses the builder's validation wholesale, so a definition
that compiles is exactly a definition that satisfies the DFA invariants.
*/
package definition
