package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/pkg/dfa"
)

// div3Builder configures the worked example: a binary machine accepting
// numbers divisible by three. State Sn tracks value mod 3; reading a bit
// moves Sn to S((2n+bit) mod 3).
func div3Builder(t *testing.T) *dfa.Builder {
	t.Helper()

	b := dfa.NewBuilder()
	require.NoError(t, b.SetAlphabet("0", "1"))
	require.NoError(t, b.AddAcceptingState("S0"))
	require.NoError(t, b.AddState("S1"))
	require.NoError(t, b.AddState("S2"))
	require.NoError(t, b.SetInitialState("S0"))

	require.NoError(t, b.AddTransition("S0", "0", "S0"))
	require.NoError(t, b.AddTransition("S0", "1", "S1"))
	require.NoError(t, b.AddTransition("S1", "0", "S2"))
	require.NoError(t, b.AddTransition("S1", "1", "S0"))
	require.NoError(t, b.AddTransition("S2", "0", "S1"))
	require.NoError(t, b.AddTransition("S2", "1", "S2"))

	return b
}

func TestBuilder_Build(t *testing.T) {
	m, err := div3Builder(t).Build()
	require.NoError(t, err)

	assert.Len(t, m.States(), 3)
	assert.Equal(t, []dfa.Symbol{"0", "1"}, m.Alphabet())
	assert.Len(t, m.Transitions(), 6)
	assert.Equal(t, "S0", m.InitialState().Name)
	assert.True(t, m.InitialState().Accepting)

	accepting := m.AcceptingStates()
	require.Len(t, accepting, 1)
	assert.Equal(t, "S0", accepting[0].Name)
}

func TestBuilder_AddState(t *testing.T) {
	t.Run("Duplicate Name", func(t *testing.T) {
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))

		err := b.AddState("S0")
		assert.ErrorIs(t, err, dfa.ErrDuplicateState)

		var stateErr *dfa.StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "S0", stateErr.Name)
	})

	t.Run("Duplicate Name Different Flag", func(t *testing.T) {
		// Identity is the name alone: a second registration is rejected
		// even if the accepting flag differs.
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))
		assert.ErrorIs(t, b.AddAcceptingState("S0"), dfa.ErrDuplicateState)
	})

	t.Run("Empty Name", func(t *testing.T) {
		b := dfa.NewBuilder()
		assert.ErrorIs(t, b.AddState(""), dfa.ErrEmptyStateName)
		assert.ErrorIs(t, b.AddState("   \t"), dfa.ErrEmptyStateName)
	})
}

func TestBuilder_SetInitialState(t *testing.T) {
	b := dfa.NewBuilder()
	require.NoError(t, b.AddState("S0"))

	assert.NoError(t, b.SetInitialState("S0"))
	assert.ErrorIs(t, b.SetInitialState("S9"), dfa.ErrUndefinedState)
}

func TestBuilder_AddTransition(t *testing.T) {
	t.Run("Undefined Endpoints", func(t *testing.T) {
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))

		assert.ErrorIs(t, b.AddTransition("S9", "0", "S0"), dfa.ErrUndefinedState)
		assert.ErrorIs(t, b.AddTransition("S0", "0", "S9"), dfa.ErrUndefinedState)
	})

	t.Run("Duplicate Pair", func(t *testing.T) {
		// Determinism is enforced at configuration time: the second edge
		// for (S0, "0") fails immediately, not at Build.
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))
		require.NoError(t, b.AddState("S1"))
		require.NoError(t, b.AddTransition("S0", "0", "S0"))

		err := b.AddTransition("S0", "0", "S1")
		assert.ErrorIs(t, err, dfa.ErrDuplicateTransition)

		var trErr *dfa.TransitionError
		require.ErrorAs(t, err, &trErr)
		assert.Equal(t, "S0", trErr.From)
		assert.Equal(t, dfa.Symbol("0"), trErr.On)
	})
}

func TestBuilder_ValidationOrder(t *testing.T) {
	t.Run("No States", func(t *testing.T) {
		b := dfa.NewBuilder()
		_, err := b.Build()
		assert.ErrorIs(t, err, dfa.ErrNoStates)
	})

	t.Run("Empty Alphabet", func(t *testing.T) {
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))
		_, err := b.Build()
		assert.ErrorIs(t, err, dfa.ErrEmptyAlphabet)
	})

	t.Run("No Initial State", func(t *testing.T) {
		b := dfa.NewBuilder()
		require.NoError(t, b.AddState("S0"))
		require.NoError(t, b.SetAlphabet("0"))
		_, err := b.Build()
		assert.ErrorIs(t, err, dfa.ErrNoInitialState)
	})

	t.Run("Incomplete Transitions", func(t *testing.T) {
		b := dfa.NewBuilder()
		require.NoError(t, b.SetAlphabet("0", "1"))
		require.NoError(t, b.AddState("S0"))
		require.NoError(t, b.SetInitialState("S0"))
		require.NoError(t, b.AddTransition("S0", "0", "S0"))

		_, err := b.Build()
		assert.ErrorIs(t, err, dfa.ErrIncompleteTransitions)

		var cfgErr *dfa.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "S0", cfgErr.State)
		assert.Equal(t, []dfa.Symbol{"1"}, cfgErr.Missing)
	})

	t.Run("Deterministic Failure", func(t *testing.T) {
		// The same invalid configuration fails the same way every time.
		build := func() error {
			b := dfa.NewBuilder()
			_ = b.AddState("S0")
			// alphabet never set, initial never set
			_, err := b.Build()
			return err
		}
		assert.ErrorIs(t, build(), dfa.ErrEmptyAlphabet)
		assert.ErrorIs(t, build(), dfa.ErrEmptyAlphabet)
	})
}

func TestBuilder_SingleUse(t *testing.T) {
	b := div3Builder(t)
	_, err := b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.SetAlphabet("0"), dfa.ErrBuilderConsumed)
	assert.ErrorIs(t, b.AddState("S3"), dfa.ErrBuilderConsumed)
	assert.ErrorIs(t, b.AddAcceptingState("S3"), dfa.ErrBuilderConsumed)
	assert.ErrorIs(t, b.SetInitialState("S0"), dfa.ErrBuilderConsumed)
	assert.ErrorIs(t, b.AddTransition("S0", "0", "S0"), dfa.ErrBuilderConsumed)

	_, err = b.Build()
	assert.ErrorIs(t, err, dfa.ErrBuilderConsumed)
}

func TestBuilder_FailedBuildIsReusable(t *testing.T) {
	// Only a successful Build consumes the builder; a failed validation
	// leaves it open for correction.
	b := dfa.NewBuilder()
	require.NoError(t, b.SetAlphabet("0"))
	require.NoError(t, b.AddState("S0"))
	require.NoError(t, b.SetInitialState("S0"))

	_, err := b.Build()
	require.ErrorIs(t, err, dfa.ErrIncompleteTransitions)

	require.NoError(t, b.AddTransition("S0", "0", "S0"))
	_, err = b.Build()
	assert.NoError(t, err)
}
