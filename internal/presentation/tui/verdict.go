package tui

import (
	"github.com/aretw0/weft/pkg/domain"
	"github.com/muesli/termenv"
)

// ColorVerdict returns the verdict string colored for the current terminal:
// green for ACCEPT, red for REJECT, yellow for INVALID. On dumb terminals the
// profile degrades to plain text.
func ColorVerdict(v domain.Verdict) string {
	p := termenv.ColorProfile()

	var color string
	switch v {
	case domain.VerdictAccept:
		color = "#22c55e"
	case domain.VerdictReject:
		color = "#ef4444"
	default:
		color = "#eab308"
	}

	return termenv.String(string(v)).Foreground(p.Color(color)).Bold().String()
}
