package dsl

import (
	"github.com/aretw0/weft/pkg/domain"
)

// Builder accumulates an automaton definition.
type Builder struct {
	alphabet    []string
	states      []string
	stateSeen   map[string]bool
	accepting   []string
	initial     string
	transitions []domain.Transition
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		stateSeen: make(map[string]bool),
	}
}

// Alphabet declares the input symbols.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// Initial sets the initial state, declaring it if needed.
func (b *Builder) Initial(state string) *Builder {
	b.declare(state)
	b.initial = state
	return b
}

// Accept marks states as accepting, declaring them if needed.
func (b *Builder) Accept(states ...string) *Builder {
	for _, s := range states {
		b.declare(s)
		b.accepting = append(b.accepting, s)
	}
	return b
}

// State declares a state and returns a scoped builder for its transitions.
// Every state mentioned anywhere is declared automatically; declaration order
// is first-mention order, and transition order is exactly the order of On and
// Epsilon calls, which the first-match simulation observes.
func (b *Builder) State(id string) *StateBuilder {
	b.declare(id)
	return &StateBuilder{id: id, builder: b}
}

// Build validates the accumulated definition and constructs the automaton.
func (b *Builder) Build() (*domain.Automaton, error) {
	return domain.New(b.states, b.alphabet, b.transitions, b.initial, b.accepting)
}

func (b *Builder) declare(state string) {
	if !b.stateSeen[state] {
		b.stateSeen[state] = true
		b.states = append(b.states, state)
	}
}

// StateBuilder adds transitions out of one state.
type StateBuilder struct {
	id      string
	builder *Builder
}

// On adds a transition reading symbol into the destination state.
func (sb *StateBuilder) On(symbol, to string) *StateBuilder {
	sb.builder.declare(to)
	sb.builder.transitions = append(sb.builder.transitions, domain.Transition{
		From:   sb.id,
		Symbol: symbol,
		To:     to,
	})
	return sb
}

// Epsilon adds an epsilon transition into the destination state.
func (sb *StateBuilder) Epsilon(to string) *StateBuilder {
	return sb.On(domain.Epsilon, to)
}

// State moves on to another state's transitions.
func (sb *StateBuilder) State(id string) *StateBuilder {
	return sb.builder.State(id)
}

// Build finishes the definition.
func (sb *StateBuilder) Build() (*domain.Automaton, error) {
	return sb.builder.Build()
}
