// Package tui renders automata and verdicts for terminal consumption.
package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// BuildReport produces a markdown inspection report for an automaton.
func BuildReport(title string, a *domain.Automaton) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "- **States**: %d (`%s`)\n", len(a.States), strings.Join(a.States, "`, `"))
	fmt.Fprintf(&sb, "- **Alphabet**: `%s`\n", strings.Join(a.Alphabet, "`, `"))
	fmt.Fprintf(&sb, "- **Initial**: `%s`\n", a.Initial)
	if len(a.Accepting) > 0 {
		fmt.Fprintf(&sb, "- **Accepting**: `%s`\n", strings.Join(a.Accepting, "`, `"))
	} else {
		sb.WriteString("- **Accepting**: none (every word is rejected)\n")
	}

	epsilons := 0
	for _, t := range a.Transitions {
		if t.Symbol == domain.Epsilon {
			epsilons++
		}
	}
	fmt.Fprintf(&sb, "- **Transitions**: %d (%d epsilon)\n\n", len(a.Transitions), epsilons)

	if len(a.Transitions) > 0 {
		sb.WriteString("| From | Symbol | To |\n|------|--------|----|\n")
		for _, t := range a.Transitions {
			symbol := t.Symbol
			if symbol == domain.Epsilon {
				symbol = "ε"
			}
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", t.From, symbol, t.To)
		}
	}

	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour,
// auto-detecting the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		// Fall back to raw markdown when the terminal cannot be probed.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
