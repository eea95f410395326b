package runtime_test

import (
	"testing"

	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingNFA has an epsilon transition and two nondeterministic 'a' branches
// out of q1. Its language is exactly {"aa", "ab"}; small enough to verify by
// hand.
//
//	q0 -&-> q1
//	q1 -a-> q2, q1 -a-> q3
//	q2 -b-> q4, q3 -a-> q4
//	accepting: q4
func branchingNFA(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New(
		[]string{"q0", "q1", "q2", "q3", "q4"},
		[]string{"a", "b"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q1", Symbol: "a", To: "q2"},
			{From: "q1", Symbol: "a", To: "q3"},
			{From: "q2", Symbol: "b", To: "q4"},
			{From: "q3", Symbol: "a", To: "q4"},
		},
		"q0",
		[]string{"q4"},
	)
	require.NoError(t, err)
	return a
}

// nfaAccepts is a reference implementation of full powerset NFA acceptance:
// it tracks every live branch instead of committing to the first transition.
func nfaAccepts(a *domain.Automaton, word string) bool {
	current := a.EpsilonClosure(domain.NewStateSet(a.Initial))
	for _, r := range word {
		current = a.EpsilonClosure(a.Reachable(current, string(r)))
		if current.Empty() {
			return false
		}
	}
	return current.IntersectsAny(a.Accepting)
}

// wordsUpTo enumerates every word over the alphabet with length <= max.
func wordsUpTo(alphabet []string, max int) []string {
	words := []string{""}
	frontier := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, w := range frontier {
			for _, sym := range alphabet {
				next = append(next, w+sym)
			}
		}
		words = append(words, next...)
		frontier = next
	}
	return words
}

func TestConvert_EpsilonScenario(t *testing.T) {
	// One epsilon move q0 -&-> q1, only q1 reads 'a' into accepting q2.
	nfa, err := domain.New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q1", Symbol: "a", To: "q2"},
		},
		"q0",
		[]string{"q2"},
	)
	require.NoError(t, err)

	dfa, err := runtime.NewEngine().Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, "q0,q1", dfa.Initial)
	assert.ElementsMatch(t, []string{"q0,q1", "q2"}, dfa.States)
	assert.Equal(t, []string{"q2"}, dfa.Accepting)
	assert.ElementsMatch(t, []domain.Transition{
		{From: "q0,q1", Symbol: "a", To: "q2"},
	}, dfa.Transitions)
}

func TestConvert_SubsetEquivalence(t *testing.T) {
	nfa := branchingNFA(t)
	engine := runtime.NewEngine()

	dfa, err := engine.Convert(nfa)
	require.NoError(t, err)

	for _, word := range wordsUpTo(nfa.Alphabet, 4) {
		want := nfaAccepts(nfa, word)
		got := engine.Process(dfa, []string{word})[0].Verdict

		if want {
			assert.Equal(t, domain.VerdictAccept, got, "word %q", word)
		} else {
			assert.Equal(t, domain.VerdictReject, got, "word %q", word)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	nfa := branchingNFA(t)
	engine := runtime.NewEngine()

	first, err := engine.Convert(nfa)
	require.NoError(t, err)
	second, err := engine.Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, first.Initial, second.Initial)
	assert.ElementsMatch(t, first.States, second.States)
	assert.ElementsMatch(t, first.Accepting, second.Accepting)
	assert.ElementsMatch(t, first.Transitions, second.Transitions)
}

func TestConvert_DoesNotMutateInput(t *testing.T) {
	nfa := branchingNFA(t)

	statesBefore := append([]string(nil), nfa.States...)
	transitionsBefore := append([]domain.Transition(nil), nfa.Transitions...)

	_, err := runtime.NewEngine().Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, statesBefore, nfa.States)
	assert.Equal(t, transitionsBefore, nfa.Transitions)
}

func TestConvert_NoEpsilonDegeneratesToPlainSubsets(t *testing.T) {
	nfa, err := domain.New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: "a", To: "q0"},
			{From: "q0", Symbol: "a", To: "q1"},
		},
		"q0",
		[]string{"q1"},
	)
	require.NoError(t, err)

	dfa, err := runtime.NewEngine().Convert(nfa)
	require.NoError(t, err)

	assert.Equal(t, "q0", dfa.Initial)
	assert.ElementsMatch(t, []string{"q0", "q0,q1"}, dfa.States)
	assert.ElementsMatch(t, []domain.Transition{
		{From: "q0", Symbol: "a", To: "q0,q1"},
		{From: "q0,q1", Symbol: "a", To: "q0,q1"},
	}, dfa.Transitions)
	assert.Equal(t, []string{"q0,q1"}, dfa.Accepting)
}

func TestConvert_ProducesPartialDFA(t *testing.T) {
	nfa := branchingNFA(t)
	engine := runtime.NewEngine()

	dfa, err := engine.Convert(nfa)
	require.NoError(t, err)

	// "bb" drives the DFA off every defined transition immediately; the walk
	// halts in the initial state set and judges acceptance there.
	results := engine.Process(dfa, []string{"bb", "abbb"})
	assert.Equal(t, domain.VerdictReject, results[0].Verdict)

	// "ab" reaches the accepting set; the trailing symbols have nowhere to
	// go, the walk halts there and still accepts.
	assert.Equal(t, domain.VerdictAccept, results[1].Verdict)
}

func TestConvert_EachStateSetVisitedOnce(t *testing.T) {
	// An epsilon cycle plus converging transitions: several explorations
	// reach the same underlying set and must collapse to one DFA state.
	nfa, err := domain.New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q1", Symbol: domain.Epsilon, To: "q0"},
			{From: "q0", Symbol: "a", To: "q2"},
			{From: "q1", Symbol: "a", To: "q2"},
			{From: "q2", Symbol: "a", To: "q2"},
		},
		"q0",
		[]string{"q2"},
	)
	require.NoError(t, err)

	dfa, err := runtime.NewEngine().Convert(nfa)
	require.NoError(t, err)

	// Duplicate state names would betray a set expanded twice.
	seen := map[string]bool{}
	for _, s := range dfa.States {
		assert.False(t, seen[s], "state %q listed twice", s)
		seen[s] = true
	}
	assert.ElementsMatch(t, []string{"q0,q1", "q2"}, dfa.States)
}
