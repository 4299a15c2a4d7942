package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/automat/pkg/dfa"
)

// RenderMachine formats a machine summary for the terminal: alphabet,
// states and the transition table. With color enabled, accepting states
// are green and the initial state is bold.
func RenderMachine(name string, m *dfa.Machine, color bool) string {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}

	paint := func(s string, st dfa.State) string {
		out := termenv.String(s)
		if st.Accepting {
			out = out.Foreground(profile.Color("#22c55e"))
		}
		if st.Name == m.InitialState().Name {
			out = out.Bold()
		}
		return out.String()
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "machine: %s\n", name)
	}

	symbols := make([]string, 0, len(m.Alphabet()))
	for _, sym := range m.Alphabet() {
		symbols = append(symbols, string(sym))
	}
	fmt.Fprintf(&b, "alphabet: %s\n", strings.Join(symbols, " "))

	b.WriteString("states:\n")
	for _, st := range m.States() {
		marker := " "
		if st.Name == m.InitialState().Name {
			marker = ">"
		}
		fmt.Fprintf(&b, "  %s %s\n", marker, paint(st.String(), st))
	}

	b.WriteString("transitions:\n")
	for _, tr := range m.Transitions() {
		from, _ := m.State(tr.From)
		to, _ := m.State(tr.To)
		fmt.Fprintf(&b, "  %s --[%s]--> %s\n", paint(tr.From, from), tr.On, paint(tr.To, to))
	}

	return b.String()
}

// RenderVerdict formats a single accept/reject line for an input.
func RenderVerdict(input string, accepted bool, color bool) string {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}

	verdict := termenv.String("reject").Foreground(profile.Color("#ef4444"))
	if accepted {
		verdict = termenv.String("accept").Foreground(profile.Color("#22c55e"))
	}
	label := input
	if label == "" {
		label = `""`
	}
	return fmt.Sprintf("%-16s %s", label, verdict.String())
}
