package dsl_test

import (
	"testing"

	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	a, err := dsl.New().
		Alphabet("a", "b").
		Initial("q0").
		Accept("q1").
		State("q0").On("a", "q1").Epsilon("q1").
		State("q1").On("b", "q0").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1"}, a.States)
	assert.Equal(t, "q0", a.Initial)
	assert.True(t, a.IsAccepting("q1"))
	require.Len(t, a.Transitions, 3)
	assert.Equal(t, domain.Epsilon, a.Transitions[1].Symbol)
}

func TestBuilder_DeclaresMentionedStates(t *testing.T) {
	// "q1" is only ever mentioned as a destination.
	a, err := dsl.New().
		Alphabet("a").
		Initial("q0").
		State("q0").On("a", "q1").
		Build()
	require.NoError(t, err)

	assert.True(t, a.HasState("q1"))
	assert.Equal(t, []string{"q0", "q1"}, a.States)
}

func TestBuilder_TransitionOrderIsCallOrder(t *testing.T) {
	// First-match simulation must see the first On call first.
	a, err := dsl.New().
		Alphabet("a").
		Initial("q0").
		Accept("win").
		State("q0").On("a", "dead").On("a", "win").
		Build()
	require.NoError(t, err)

	results := runtime.NewEngine().Process(a, []string{"a"})
	assert.Equal(t, domain.VerdictReject, results[0].Verdict)
}

func TestBuilder_InvalidDefinitions(t *testing.T) {
	_, err := dsl.New().Build()
	assert.ErrorIs(t, err, domain.ErrNoStates)

	_, err = dsl.New().
		Alphabet("a").
		Initial("q0").
		State("q0").On("z", "q0").
		Build()
	assert.ErrorIs(t, err, domain.ErrUnknownTransitionSymbol)

	_, err = dsl.New().
		Alphabet("a", domain.Epsilon).
		Initial("q0").
		Build()
	assert.ErrorIs(t, err, domain.ErrReservedSymbol)
}
