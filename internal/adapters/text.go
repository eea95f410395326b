// Package adapters contains the loaders that parse automaton definitions
// into validated domain values, one per supported format.
package adapters

import (
	"fmt"
	"strings"

	"github.com/aretw0/weft/pkg/domain"
)

// TextLoader parses the plain line-oriented definition format:
//
//	line 1: alphabet symbols, space-separated
//	line 2: state names
//	line 3: accepting state names
//	line 4: the initial state (exactly one name)
//	lines 5+: transitions, "origin symbol destination" (symbol may be &)
//
// Any structural violation fails the load with an error naming the rule;
// nothing is silently coerced.
type TextLoader struct{}

// NewTextLoader creates a text-format loader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Load implements ports.AutomatonLoader.
func (l *TextLoader) Load(data []byte) (*domain.Automaton, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	// Trailing blank lines are an artifact of the file, not content.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < 4 {
		return nil, fmt.Errorf("invalid definition: expected at least 4 header lines, got %d", len(lines))
	}

	alphabet := strings.Fields(lines[0])
	states := strings.Fields(lines[1])
	accepting := strings.Fields(lines[2])

	initialFields := strings.Fields(lines[3])
	if len(initialFields) != 1 {
		return nil, fmt.Errorf("invalid initial state line: %q", lines[3])
	}
	initial := initialFields[0]

	var transitions []domain.Transition
	for _, line := range lines[4:] {
		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid transition: %q", line)
		}
		transitions = append(transitions, domain.Transition{
			From:   parts[0],
			Symbol: parts[1],
			To:     parts[2],
		})
	}

	return domain.New(states, alphabet, transitions, initial, accepting)
}
