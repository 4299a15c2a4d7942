package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/internal/adapters/file"
	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
	"github.com/aretw0/automat/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunDefinitionStoreContract(t, store)
}

func TestFileStore_RejectsBadNames(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	err := store.Save(ctx, definition.Definition{})
	assert.Error(t, err)

	err = store.Save(ctx, definition.Definition{Name: "../escape"})
	assert.Error(t, err)
}

func TestFileStore_ListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	def := definition.Definition{
		Name:     "only",
		Alphabet: []dfa.Symbol{"a"},
		States:   []dfa.State{{Name: "s", Accepting: true}},
		Initial:  "s",
		Transitions: []dfa.Transition{
			{From: "s", On: "a", To: "s"},
		},
	}
	require.NoError(t, store.Save(ctx, def))

	// Stray files in the directory must not show up as machines.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-only-123.yaml"), []byte("partial"), 0o644))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, names)
}
