package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/pkg/dfa"
)

func build(t *testing.T, configure func(b *dfa.Builder)) *dfa.Machine {
	t.Helper()
	b := dfa.NewBuilder()
	configure(b)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestCheck_Clean(t *testing.T) {
	m := build(t, func(b *dfa.Builder) {
		_ = b.SetAlphabet("t")
		_ = b.AddState("off")
		_ = b.AddAcceptingState("on")
		_ = b.SetInitialState("off")
		_ = b.AddTransition("off", "t", "on")
		_ = b.AddTransition("on", "t", "off")
	})

	lint := Check(m)
	assert.True(t, lint.Clean())
}

func TestCheck_Unreachable(t *testing.T) {
	m := build(t, func(b *dfa.Builder) {
		_ = b.SetAlphabet("a")
		_ = b.AddAcceptingState("start")
		_ = b.AddState("island")
		_ = b.SetInitialState("start")
		_ = b.AddTransition("start", "a", "start")
		_ = b.AddTransition("island", "a", "island")
	})

	lint := Check(m)
	assert.False(t, lint.Clean())
	assert.Equal(t, []string{"island"}, lint.Unreachable)
	// island is unreachable, so it is not also reported as a trap
	assert.Empty(t, lint.Traps)
}

func TestCheck_Trap(t *testing.T) {
	// start --a--> sink, and sink only loops on itself without accepting.
	m := build(t, func(b *dfa.Builder) {
		_ = b.SetAlphabet("a", "b")
		_ = b.AddAcceptingState("start")
		_ = b.AddState("sink")
		_ = b.SetInitialState("start")
		_ = b.AddTransition("start", "a", "sink")
		_ = b.AddTransition("start", "b", "start")
		_ = b.AddTransition("sink", "a", "sink")
		_ = b.AddTransition("sink", "b", "sink")
	})

	lint := Check(m)
	assert.Equal(t, []string{"sink"}, lint.Traps)
	assert.Empty(t, lint.Unreachable)
}
