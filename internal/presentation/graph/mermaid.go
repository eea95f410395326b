// Package graph renders automata as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/weft/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR) for the automaton.
// Styling conventions:
//   - the initial state is drawn as a circle ((...))
//   - accepting states get the "accepting" class (thick border)
//   - epsilon transitions use dashed arrows labeled with the epsilon marker
func GenerateMermaid(a *domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, state := range a.States {
		safeID := sanitizeMermaidID(state)

		opener, closer := "[", "]"
		if state == a.Initial {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))
	}

	for _, t := range a.Transitions {
		from := sanitizeMermaidID(t.From)
		to := sanitizeMermaidID(t.To)

		arrow := fmt.Sprintf("-- \"%s\" -->", t.Symbol)
		if t.Symbol == domain.Epsilon {
			arrow = fmt.Sprintf("-. \"%s\" .->", domain.Epsilon)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	if len(a.Accepting) > 0 {
		sb.WriteString("\n    classDef accepting stroke-width:4px;\n")
		for _, state := range a.Accepting {
			sb.WriteString(fmt.Sprintf("    class %s accepting;\n", sanitizeMermaidID(state)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID strips characters Mermaid treats as syntax. Converted
// automata have commas in their state names, so this matters in practice.
func sanitizeMermaidID(id string) string {
	replacer := strings.NewReplacer(",", "_", ".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return replacer.Replace(id)
}
