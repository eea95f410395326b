package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/weft/internal/dto"
	"github.com/aretw0/weft/internal/presentation/graph"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an NFA into an equivalent DFA",
	Long: `Runs the subset construction on the automaton and prints the resulting DFA.

Each DFA state is a set of original states, named by the sorted comma-joined
member names. The output is a summary by default, a Mermaid diagram with
--graph, or a JSON definition with --json.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asGraph, _ := cmd.Flags().GetBool("graph")
		asJSON, _ := cmd.Flags().GetBool("json")

		eng := newEngine(cmd)
		nfa, err := eng.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		dfa, err := eng.Convert(nfa)
		if err != nil {
			fmt.Printf("Error converting automaton: %v\n", err)
			os.Exit(1)
		}

		switch {
		case asGraph:
			fmt.Print(graph.GenerateMermaid(dfa))
		case asJSON:
			_ = json.NewEncoder(os.Stdout).Encode(dto.FromAutomaton(dfa))
		default:
			printSummary(nfa, dfa)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Bool("graph", false, "Print the DFA as a Mermaid diagram")
	convertCmd.Flags().Bool("json", false, "Print the DFA definition as JSON")
}

func printSummary(nfa, dfa *domain.Automaton) {
	fmt.Printf("Converted %d NFA states into %d DFA states.\n\n", len(nfa.States), len(dfa.States))
	fmt.Printf("Initial:   %s\n", dfa.Initial)
	if len(dfa.Accepting) > 0 {
		fmt.Printf("Accepting: %v\n", dfa.Accepting)
	} else {
		fmt.Println("Accepting: none")
	}
	fmt.Println("Transitions:")
	for _, t := range dfa.Transitions {
		fmt.Printf("  {%s} --%s--> {%s}\n", t.From, t.Symbol, t.To)
	}
}
