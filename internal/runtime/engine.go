// Package runtime implements the two engines of Weft: word-acceptance
// simulation and NFA→DFA subset construction. Both consume validated,
// immutable domain.Automaton values and never mutate their input, so a single
// Engine is safe for concurrent use.
package runtime

import (
	"log/slog"

	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/domain"
)

// Engine runs simulations and conversions over automata.
type Engine struct {
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. Logging defaults to a no-op logger.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process simulates every word against the automaton and returns one result
// per word, in input order.
//
// The walk is deliberately first-match and non-backtracking: at each step the
// first transition declared for (current state, symbol) is taken and the
// alternatives are ignored. On a DFA this is exact; on a raw NFA the verdict
// depends on transition declaration order. Exact NFA semantics are obtained
// by running Convert first and simulating on the resulting DFA.
func (e *Engine) Process(a *domain.Automaton, words []string) domain.Results {
	results := make(domain.Results, 0, len(words))
	for _, word := range words {
		verdict := e.simulate(a, word)
		e.logger.Debug("word processed", "word", word, "verdict", verdict)
		results = append(results, domain.Result{Word: word, Verdict: verdict})
	}
	return results
}

func (e *Engine) simulate(a *domain.Automaton, word string) domain.Verdict {
	// A word containing a symbol outside the alphabet can never be in the
	// language; no simulation is attempted. The empty word is trivially valid.
	for _, r := range word {
		if !a.HasSymbol(string(r)) {
			return domain.VerdictInvalid
		}
	}

	current := a.Initial
	for _, r := range word {
		next, ok := a.Step(current, string(r))
		if !ok {
			// Partial automaton: no transition defined. Halt early and
			// judge acceptance from the state reached so far.
			break
		}
		current = next
	}

	if a.IsAccepting(current) {
		return domain.VerdictAccept
	}
	return domain.VerdictReject
}
