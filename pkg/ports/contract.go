package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
)

// RunDefinitionStoreContract runs a suite of tests to verify that a
// DefinitionStore implementation adheres to the interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()

	toggle := definition.Definition{
		Name:     "contract-toggle",
		Alphabet: []dfa.Symbol{"t"},
		States: []dfa.State{
			{Name: "off"},
			{Name: "on", Accepting: true},
		},
		Initial: "off",
		Transitions: []dfa.Transition{
			{From: "off", On: "t", To: "on"},
			{From: "on", On: "t", To: "off"},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, toggle), "Save should not return error")

		loaded, err := store.Load(ctx, toggle.Name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, toggle, loaded)

		// A loaded definition must still compile.
		_, err = loaded.Compile()
		assert.NoError(t, err)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		updated := toggle
		updated.Initial = "on"
		require.NoError(t, store.Save(ctx, updated))

		loaded, err := store.Load(ctx, toggle.Name)
		require.NoError(t, err)
		assert.Equal(t, "on", loaded.Initial)

		// Restore for the remaining subtests.
		require.NoError(t, store.Save(ctx, toggle))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		assert.ErrorIs(t, err, definition.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		second := toggle
		second.Name = "contract-second"
		require.NoError(t, store.Save(ctx, second))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, toggle.Name)
		assert.Contains(t, names, second.Name)
		assert.IsIncreasing(t, names, "List should return lexical order")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, toggle.Name), "Delete should not return error")

		_, err := store.Load(ctx, toggle.Name)
		assert.ErrorIs(t, err, definition.ErrNotFound, "Load after Delete should return ErrNotFound")

		// Deleting a missing name is a no-op.
		assert.NoError(t, store.Delete(ctx, toggle.Name))
	})
}
