package tui_test

import (
	"testing"

	"github.com/aretw0/weft/internal/presentation/tui"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	a, err := domain.New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]domain.Transition{
			{From: "q0", Symbol: domain.Epsilon, To: "q1"},
			{From: "q0", Symbol: "a", To: "q1"},
		},
		"q0",
		[]string{"q1"},
	)
	require.NoError(t, err)

	report := tui.BuildReport("machine.txt", a)

	assert.Contains(t, report, "# machine.txt")
	assert.Contains(t, report, "**States**: 2")
	assert.Contains(t, report, "**Initial**: `q0`")
	assert.Contains(t, report, "2 (1 epsilon)")
	assert.Contains(t, report, "| q0 | ε | q1 |")
	assert.Contains(t, report, "| q0 | a | q1 |")
}

func TestBuildReport_NoAccepting(t *testing.T) {
	a, err := domain.New([]string{"q0"}, []string{"a"}, nil, "q0", nil)
	require.NoError(t, err)

	report := tui.BuildReport("empty", a)
	assert.Contains(t, report, "none (every word is rejected)")
}
