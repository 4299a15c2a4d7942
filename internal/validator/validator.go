package validator

import (
	"github.com/aretw0/automat/pkg/dfa"
)

// Lint holds advisory findings about a built machine. Nothing here is an
// error: Build already enforced the hard invariants. Lint surfaces shape
// problems a machine author usually wants to know about.
type Lint struct {
	// Unreachable lists states that no input can ever reach from the
	// initial state, in registration order.
	Unreachable []string

	// Traps lists non-accepting states whose every transition loops back
	// to themselves. Once entered, the machine can never accept.
	Traps []string
}

// Clean reports whether the lint found nothing.
func (l Lint) Clean() bool {
	return len(l.Unreachable) == 0 && len(l.Traps) == 0
}

// Check crawls the machine's transition table from the initial state and
// collects advisory findings.
func Check(m *dfa.Machine) Lint {
	adjacency := make(map[string][]string)
	selfOnly := make(map[string]bool)
	for _, st := range m.States() {
		selfOnly[st.Name] = true
	}
	for _, tr := range m.Transitions() {
		adjacency[tr.From] = append(adjacency[tr.From], tr.To)
		if tr.To != tr.From {
			selfOnly[tr.From] = false
		}
	}

	visited := make(map[string]bool)
	queue := []string{m.InitialState().Name}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, next := range adjacency[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var lint Lint
	for _, st := range m.States() {
		if !visited[st.Name] {
			lint.Unreachable = append(lint.Unreachable, st.Name)
			continue
		}
		if selfOnly[st.Name] && !st.Accepting {
			lint.Traps = append(lint.Traps, st.Name)
		}
	}
	return lint
}
