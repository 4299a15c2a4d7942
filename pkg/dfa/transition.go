package dfa

import "fmt"

// Transition defines a directed edge: reading On while in From moves the
// machine to To. A Transition carries no constraints of its own; the DFA
// rules (no duplicate (from, symbol) pairs, completeness) are enforced by
// the Builder.
type Transition struct {
	From string `json:"from" yaml:"from"`
	On   Symbol `json:"on" yaml:"on"`
	To   string `json:"to" yaml:"to"`
}

// String renders the edge for diagnostics: "<from> --[<symbol>]--> <to>".
func (t Transition) String() string {
	return fmt.Sprintf("%s --[%s]--> %s", t.From, t.On, t.To)
}
