// Package file provides a filesystem-backed DefinitionStore: one YAML
// file per machine under a base directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automat/pkg/definition"
)

const ext = ".yaml"

// Store implements ports.DefinitionStore using the local filesystem.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".automat/machines".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".automat", "machines")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+ext)
}

// Save persists the definition to a YAML file atomically.
// It writes to a temporary file first and then renames it into place, so
// a crash mid-write never leaves a truncated definition behind.
func (s *Store) Save(ctx context.Context, def definition.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}
	if def.Name != filepath.Base(def.Name) {
		return fmt.Errorf("definition name %q must not contain path separators", def.Name)
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure machine directory: %w", err)
	}

	data, err := def.Marshal()
	if err != nil {
		return err
	}

	// Temp file in the same directory so the rename stays on one
	// filesystem (required for atomicity).
	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+def.Name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(def.Name)); err != nil {
		return fmt.Errorf("failed to finalize definition file: %w", err)
	}
	return nil
}

// Load reads a definition file by name.
func (s *Store) Load(ctx context.Context, name string) (definition.Definition, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return definition.Definition{}, definition.ErrNotFound
		}
		return definition.Definition{}, fmt.Errorf("failed to read definition file: %w", err)
	}
	return definition.Parse(data)
}

// Delete removes a definition file. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete definition file: %w", err)
	}
	return nil
}

// List returns the names of all stored definitions in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list machine directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		if strings.HasPrefix(entry.Name(), "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}
