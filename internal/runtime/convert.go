package runtime

import (
	"fmt"

	"github.com/aretw0/weft/pkg/domain"
)

// Convert runs the subset construction on the given automaton (an NFA,
// possibly with epsilon transitions) and returns an equivalent DFA. Each DFA
// state is a set of original states, named by domain.StateSet.Name, so the
// output is reproducible across runs.
//
// The input is never mutated. The resulting DFA is partial: a (state, symbol)
// pair with no reachable destination simply emits no transition, it is not
// completed with a sink state.
func (e *Engine) Convert(nfa *domain.Automaton) (*domain.Automaton, error) {
	start := nfa.EpsilonClosure(domain.NewStateSet(nfa.Initial))

	// Worklist of state sets still to expand. Discipline (LIFO here) only
	// affects output ordering; visited guarantees each set expands once.
	worklist := []domain.StateSet{start}
	visited := []domain.StateSet{start}

	var transitions []domain.Transition

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, sym := range nfa.Alphabet {
			next := nfa.EpsilonClosure(nfa.Reachable(current, sym))
			if next.Empty() {
				continue
			}

			transitions = append(transitions, domain.Transition{
				From:   current.Name(),
				Symbol: sym,
				To:     next.Name(),
			})

			if !seen(visited, next) {
				visited = append(visited, next)
				worklist = append(worklist, next)
			}
		}
	}

	states := make([]string, 0, len(visited))
	var accepting []string
	for _, set := range visited {
		states = append(states, set.Name())
		if set.IntersectsAny(nfa.Accepting) {
			accepting = append(accepting, set.Name())
		}
	}

	dfa, err := domain.New(states, nfa.Alphabet, transitions, start.Name(), accepting)
	if err != nil {
		// Unreachable on a validated input; surfaced as a defect, not hidden.
		return nil, fmt.Errorf("subset construction produced an invalid automaton: %w", err)
	}

	e.logger.Debug("conversion finished",
		"input_states", len(nfa.States),
		"output_states", len(dfa.States),
		"output_transitions", len(dfa.Transitions))

	return dfa, nil
}

// seen checks membership by set value equality. Naming is injective for
// distinct sets, but the worklist compares sets directly rather than trusting
// the serialized form.
func seen(visited []domain.StateSet, set domain.StateSet) bool {
	for _, v := range visited {
		if v.Equal(set) {
			return true
		}
	}
	return false
}
