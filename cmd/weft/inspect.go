package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/weft/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Render a readable report of an automaton",
	Long:  `Loads the definition and renders a markdown report (states, alphabet, transition table) in the terminal.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		automaton, err := eng.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		report := tui.BuildReport(filepath.Base(args[0]), automaton)
		render := tui.NewRenderer()
		out, err := render(report)
		if err != nil {
			// Rendering is cosmetic; fall back to the raw markdown.
			out = report
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
