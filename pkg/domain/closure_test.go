package domain_test

import (
	"testing"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// epsilonChain builds q0 -&-> q1 -&-> q2 with a plain 'a' edge q2 -> q3.
func epsilonChain(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q1", Symbol: domain.Epsilon, To: "q2"},
			{From: "q2", Symbol: "a", To: "q3"},
		},
		"q0",
		[]string{"q3"},
	)
	require.NoError(t, err)
	return a
}

func TestClosure_FollowsEpsilonChain(t *testing.T) {
	a := epsilonChain(t)

	closure := a.Closure("q0")
	assert.Equal(t, "q0,q1,q2", closure.Name())

	// q3 is only reachable by reading 'a', not by epsilon.
	assert.False(t, closure.Contains("q3"))

	// A state with no epsilon edges closes over itself alone.
	assert.Equal(t, "q3", a.Closure("q3").Name())
}

func TestClosure_EpsilonCycle(t *testing.T) {
	a, err := domain.New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q1", Symbol: domain.Epsilon, To: "q0"},
		},
		"q0",
		nil,
	)
	require.NoError(t, err)

	// Must terminate and include both cycle members.
	assert.Equal(t, "q0,q1", a.Closure("q0").Name())
	assert.Equal(t, "q0,q1", a.Closure("q1").Name())
}

func TestEpsilonClosure_Superset(t *testing.T) {
	a := epsilonChain(t)

	seeds := domain.NewStateSet("q1", "q3")
	closure := a.EpsilonClosure(seeds)

	for state := range seeds {
		assert.True(t, closure.Contains(state), "closure must contain seed %s", state)
	}
}

func TestEpsilonClosure_Idempotent(t *testing.T) {
	a := epsilonChain(t)

	once := a.EpsilonClosure(domain.NewStateSet("q0"))
	twice := a.EpsilonClosure(once)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, once.Name(), twice.Name())
}

func TestReachable(t *testing.T) {
	a, err := domain.New(
		[]string{"q0", "q1", "q2"},
		[]string{"a", "b"},
		[]domain.Transition{
			{From: "q0", Symbol: "a", To: "q1"},
			{From: "q0", Symbol: "a", To: "q2"},
			{From: "q1", Symbol: "b", To: "q2"},
			{From: "q0", Symbol: domain.Epsilon, To: "q2"},
		},
		"q0",
		nil,
	)
	require.NoError(t, err)

	// Both 'a' destinations, but never the epsilon one.
	assert.Equal(t, "q1,q2", a.Reachable(domain.NewStateSet("q0"), "a").Name())
	assert.True(t, a.Reachable(domain.NewStateSet("q2"), "a").Empty())
	assert.Equal(t, "q2", a.Reachable(domain.NewStateSet("q0", "q1"), "b").Name())
}
