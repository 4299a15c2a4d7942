package automat

import (
	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
)

// Version is the toolkit release, reported by the CLI and the MCP server.
const Version = "0.2.0"

// NewBuilder creates an empty machine builder. It is a convenience
// re-export so simple consumers only import the root package.
func NewBuilder() *dfa.Builder {
	return dfa.NewBuilder()
}

// Load parses a YAML or JSON definition document and compiles it into a
// ready-to-run machine.
func Load(data []byte) (*dfa.Machine, error) {
	def, err := definition.Parse(data)
	if err != nil {
		return nil, err
	}
	return def.Compile()
}

// LoadFile reads a definition file and compiles it into a ready-to-run
// machine.
func LoadFile(path string) (*dfa.Machine, error) {
	def, err := definition.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return def.Compile()
}
