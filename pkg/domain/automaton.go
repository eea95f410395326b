package domain

import (
	"encoding/json"
	"fmt"
)

// Epsilon is the reserved transition symbol for moves that consume no input.
// It is never a member of a declared alphabet.
const Epsilon = "&"

// Transition is one edge of the automaton: reading Symbol in state From moves
// the machine to state To. Symbol may be Epsilon. Several transitions may
// share the same (From, Symbol) pair; that is what makes an automaton
// nondeterministic.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Automaton is a finite automaton (deterministic or not). Values are built
// through New, which establishes the structural invariants, and are treated
// as immutable afterwards: no operation in this package or in the runtime
// mutates an existing Automaton.
type Automaton struct {
	States      []string     `json:"states" yaml:"states"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
	Initial     string       `json:"initial" yaml:"initial"`
	Accepting   []string     `json:"accepting" yaml:"accepting"`

	// Lookup indexes, built once by New.
	stateIndex    map[string]bool
	alphabetIndex map[string]bool
	acceptIndex   map[string]bool
}

// New validates the definition and builds an Automaton. Slices are kept in
// the given order: transition order is significant for the first-match
// simulation discipline (see runtime.Engine.Process).
func New(states, alphabet []string, transitions []Transition, initial string, accepting []string) (*Automaton, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	a := &Automaton{
		States:        states,
		Alphabet:      alphabet,
		Transitions:   transitions,
		Initial:       initial,
		Accepting:     accepting,
		stateIndex:    make(map[string]bool, len(states)),
		alphabetIndex: make(map[string]bool, len(alphabet)),
		acceptIndex:   make(map[string]bool, len(accepting)),
	}

	for _, s := range states {
		a.stateIndex[s] = true
	}
	for _, sym := range alphabet {
		if sym == Epsilon {
			return nil, fmt.Errorf("%w: %q", ErrReservedSymbol, sym)
		}
		a.alphabetIndex[sym] = true
	}
	for _, s := range accepting {
		if !a.stateIndex[s] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAccepting, s)
		}
		a.acceptIndex[s] = true
	}
	if !a.stateIndex[initial] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInitial, initial)
	}
	for _, t := range transitions {
		if !a.stateIndex[t.From] || !a.stateIndex[t.To] {
			return nil, fmt.Errorf("%w: %s %s %s", ErrUnknownTransitionState, t.From, t.Symbol, t.To)
		}
		if t.Symbol != Epsilon && !a.alphabetIndex[t.Symbol] {
			return nil, fmt.Errorf("%w: %s %s %s", ErrUnknownTransitionSymbol, t.From, t.Symbol, t.To)
		}
	}

	return a, nil
}

// HasState reports whether the name is a declared state.
func (a *Automaton) HasState(state string) bool {
	return a.stateIndex[state]
}

// HasSymbol reports whether the symbol is a member of the alphabet.
// Epsilon is not a member.
func (a *Automaton) HasSymbol(symbol string) bool {
	return a.alphabetIndex[symbol]
}

// IsAccepting reports whether the state is an accepting state.
func (a *Automaton) IsAccepting(state string) bool {
	return a.acceptIndex[state]
}

// Closure returns the epsilon closure of a single state: every state reachable
// from it through zero or more epsilon transitions, itself included.
func (a *Automaton) Closure(state string) StateSet {
	return a.EpsilonClosure(NewStateSet(state))
}

// EpsilonClosure generalizes Closure to a starting set of states. It runs a
// stack worklist with a visited guard, so it terminates on epsilon cycles.
func (a *Automaton) EpsilonClosure(states StateSet) StateSet {
	closure := make(StateSet, len(states))
	stack := make([]string, 0, len(states))
	for state := range states {
		closure[state] = true
		stack = append(stack, state)
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range a.Transitions {
			if t.From == current && t.Symbol == Epsilon && !closure[t.To] {
				closure[t.To] = true
				stack = append(stack, t.To)
			}
		}
	}

	return closure
}

// Reachable returns the destinations of every transition whose origin is in
// the given set and whose symbol equals sym. Epsilon transitions are excluded;
// callers compose with EpsilonClosure when they need them.
func (a *Automaton) Reachable(states StateSet, sym string) StateSet {
	result := make(StateSet)
	for _, t := range a.Transitions {
		if t.Symbol == sym && states[t.From] {
			result[t.To] = true
		}
	}
	return result
}

// Step returns the destination of the first transition matching the pair
// (state, sym), in declaration order. The boolean is false when no transition
// matches. This is the lookup primitive of the acceptance engine; it
// deliberately ignores any further matching transitions.
func (a *Automaton) Step(state, sym string) (string, bool) {
	for _, t := range a.Transitions {
		if t.From == state && t.Symbol == sym {
			return t.To, true
		}
	}
	return "", false
}

// automatonJSON is the serialized shape of an Automaton.
type automatonJSON struct {
	States      []string     `json:"states"`
	Alphabet    []string     `json:"alphabet"`
	Transitions []Transition `json:"transitions"`
	Initial     string       `json:"initial"`
	Accepting   []string     `json:"accepting"`
}

// MarshalJSON serializes the exported definition.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(automatonJSON{
		States:      a.States,
		Alphabet:    a.Alphabet,
		Transitions: a.Transitions,
		Initial:     a.Initial,
		Accepting:   a.Accepting,
	})
}

// UnmarshalJSON deserializes and re-validates through New, so a decoded
// Automaton carries the same invariants as a freshly built one.
func (a *Automaton) UnmarshalJSON(data []byte) error {
	var raw automatonJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := New(raw.States, raw.Alphabet, raw.Transitions, raw.Initial, raw.Accepting)
	if err != nil {
		return err
	}
	*a = *built
	return nil
}
