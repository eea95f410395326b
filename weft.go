package weft

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/weft/internal/adapters"
	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/internal/runtime"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
)

// Engine is the high-level entry point for the Weft library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.AutomatonLoader
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLoader injects a fixed definition loader, bypassing the per-file
// format detection of LoadFile.
func WithLoader(l ports.AutomatonLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// New initializes a Weft Engine. Construction never fails: there is no I/O
// involved until a definition is loaded.
func New(opts ...Option) *Engine {
	eng := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.runtime = runtime.NewEngine(runtime.WithLogger(eng.logger))
	return eng
}

// LoadFile reads and parses an automaton definition. The format is chosen by
// file extension (YAML for .yaml/.yml, the plain line format otherwise)
// unless a loader was injected with WithLoader.
func (e *Engine) LoadFile(path string) (*domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	loader := e.loader
	if loader == nil {
		loader = adapters.ForPath(path)
	}

	automaton, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	e.logger.Debug("automaton loaded", "path", path,
		"states", len(automaton.States), "transitions", len(automaton.Transitions))
	return automaton, nil
}

// Process simulates every word against the automaton, returning one verdict
// per word in input order.
func (e *Engine) Process(a *domain.Automaton, words []string) domain.Results {
	return e.runtime.Process(a, words)
}

// Convert runs the subset construction, returning a DFA equivalent to the
// given automaton. The input is never mutated.
func (e *Engine) Convert(a *domain.Automaton) (*domain.Automaton, error) {
	return e.runtime.Convert(a)
}
