/*
Package automat is a deterministic finite automaton (DFA) toolkit: build
validated state machines programmatically or from declarative YAML/JSON
definitions, then run symbol sequences against them to decide acceptance.

# Concept

A machine is assembled through a staged, single-use builder that enforces
the DFA invariants up front: unique non-empty state names, a non-empty
alphabet, a registered initial state, and exactly one transition per
(state, symbol) pair. Once built, a machine is immutable; processing a
sequence is a pure table walk, reproducible for the same machine and
input.

# Key Features

  - Deterministic Execution: acceptance is a pure function of the machine
    and the input sequence.
  - Validated Construction: invalid configurations fail at build time
    with typed, matchable errors, never mid-run.
  - Hexagonal Architecture: the core is decoupled from adapters (stores,
    HTTP, MCP, CLI).
  - Declarative Definitions: machines round-trip through a small YAML
    document, persisted by the memory, file and redis stores.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/automat"
	)

	func main() {
		m, err := automat.LoadFile("machine.yaml")
		if err != nil {
			log.Fatal(err)
		}

		accepted, err := m.ProcessString("1001")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(accepted)
	}

For programmatic construction and the full core contract, see
package pkg/dfa. For the definition format, see package pkg/definition.
*/
package automat
