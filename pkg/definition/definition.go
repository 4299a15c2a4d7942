package definition

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/automat/pkg/dfa"
)

// ErrNotFound is returned by stores when no definition exists under the
// requested name.
var ErrNotFound = errors.New("definition not found")

// Definition is the declarative form of a machine. It reuses the core
// State and Transition values directly, so a definition round-trips
// through a compiled machine without loss.
type Definition struct {
	Name        string           `json:"name" yaml:"name"`
	Alphabet    []dfa.Symbol     `json:"alphabet" yaml:"alphabet"`
	States      []dfa.State      `json:"states" yaml:"states"`
	Initial     string           `json:"initial" yaml:"initial"`
	Transitions []dfa.Transition `json:"transitions" yaml:"transitions"`
}

// Parse decodes a YAML (or JSON, which YAML subsumes) document.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to parse definition: %w", err)
	}
	return def, nil
}

// ParseFile reads and decodes a definition file.
func ParseFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// FromMap decodes a definition out of an already-decoded generic payload,
// as produced by JSON bodies or embedding configuration systems. Field
// matching is case-insensitive (mapstructure defaults).
func FromMap(raw map[string]any) (Definition, error) {
	var def Definition
	if err := mapstructure.Decode(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}
	return def, nil
}

// Marshal encodes the definition as YAML.
func (d Definition) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return data, nil
}

// Compile drives a dfa.Builder with the definition's content and returns
// the built machine. All core errors (duplicate states, incomplete
// transitions, ...) pass through untouched, so callers can match them
// with the dfa sentinels.
func (d Definition) Compile() (*dfa.Machine, error) {
	b := dfa.NewBuilder()
	if err := b.SetAlphabet(d.Alphabet...); err != nil {
		return nil, err
	}
	for _, st := range d.States {
		var err error
		if st.Accepting {
			err = b.AddAcceptingState(st.Name)
		} else {
			err = b.AddState(st.Name)
		}
		if err != nil {
			return nil, err
		}
	}
	if d.Initial != "" {
		if err := b.SetInitialState(d.Initial); err != nil {
			return nil, err
		}
	}
	for _, tr := range d.Transitions {
		if err := b.AddTransition(tr.From, tr.On, tr.To); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// FromMachine snapshots a built machine back into its declarative form.
func FromMachine(name string, m *dfa.Machine) Definition {
	return Definition{
		Name:        name,
		Alphabet:    m.Alphabet(),
		States:      m.States(),
		Initial:     m.InitialState().Name,
		Transitions: m.Transitions(),
	}
}
