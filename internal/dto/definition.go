// Package dto holds the transport-layer shape of an automaton definition.
// It uses "mapstructure" tags so the same struct decodes YAML documents and
// generic JSON maps coming over HTTP, before validation in the domain.
package dto

import (
	"fmt"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Definition is the declarative form of an automaton, prior to validation.
type Definition struct {
	Alphabet    []string        `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []string        `json:"states" yaml:"states" mapstructure:"states"`
	Accepting   []string        `json:"accepting" yaml:"accepting" mapstructure:"accepting"`
	Initial     string          `json:"initial" yaml:"initial" mapstructure:"initial"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// TransitionDef is one declared transition edge.
type TransitionDef struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// Decode maps a generic document (decoded YAML or JSON) into a Definition.
func Decode(raw map[string]any) (Definition, error) {
	var def Definition
	if err := mapstructure.Decode(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}
	return def, nil
}

// ToAutomaton validates the definition and builds the domain value.
func (d Definition) ToAutomaton() (*domain.Automaton, error) {
	transitions := make([]domain.Transition, 0, len(d.Transitions))
	for _, t := range d.Transitions {
		transitions = append(transitions, domain.Transition{
			From:   t.From,
			Symbol: t.Symbol,
			To:     t.To,
		})
	}
	return domain.New(d.States, d.Alphabet, transitions, d.Initial, d.Accepting)
}

// FromAutomaton captures a built automaton back into transport shape.
func FromAutomaton(a *domain.Automaton) Definition {
	transitions := make([]TransitionDef, 0, len(a.Transitions))
	for _, t := range a.Transitions {
		transitions = append(transitions, TransitionDef{
			From:   t.From,
			Symbol: t.Symbol,
			To:     t.To,
		})
	}
	return Definition{
		Alphabet:    a.Alphabet,
		States:      a.States,
		Accepting:   a.Accepting,
		Initial:     a.Initial,
		Transitions: transitions,
	}
}
