// Package memory provides an in-memory DefinitionStore, primarily for
// tests and single-process setups.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
)

// Store implements ports.DefinitionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]definition.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]definition.Definition),
	}
}

// Save persists the definition in memory.
func (s *Store) Save(ctx context.Context, def definition.Definition) error {
	// Definitions hold slices; copy them so the caller can't mutate the
	// stored value through its own reference.
	stored := def
	stored.Alphabet = append([]dfa.Symbol(nil), def.Alphabet...)
	stored.States = append([]dfa.State(nil), def.States...)
	stored.Transitions = append([]dfa.Transition(nil), def.Transitions...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[def.Name] = stored
	return nil
}

// Load retrieves the definition from memory.
func (s *Store) Load(ctx context.Context, name string) (definition.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return definition.Definition{}, definition.ErrNotFound
	}

	// Copy on read so the caller can't mutate store state.
	ret := def
	ret.Alphabet = append([]dfa.Symbol(nil), def.Alphabet...)
	ret.States = append([]dfa.State(nil), def.States...)
	ret.Transitions = append([]dfa.Transition(nil), def.Transitions...)
	return ret, nil
}

// Delete removes the definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored definition names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
