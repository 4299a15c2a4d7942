package ports

import (
	"context"

	"github.com/aretw0/automat/pkg/definition"
)

// DefinitionStore defines the interface for persisting machine
// definitions. This allows the toolkit to keep a catalog of named
// machines across processes (file, redis) or within one (memory).
type DefinitionStore interface {
	// Save persists the definition under its name, replacing any
	// existing definition with that name.
	Save(ctx context.Context, def definition.Definition) error

	// Load retrieves the definition stored under name.
	// Returns definition.ErrNotFound if no such definition exists.
	Load(ctx context.Context, name string) (definition.Definition, error)

	// Delete removes the definition stored under name. Deleting a
	// missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored definition names in lexical order.
	List(ctx context.Context) ([]string, error)
}
