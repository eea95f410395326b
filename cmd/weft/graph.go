package main

import (
	"fmt"
	"os"

	"github.com/aretw0/weft/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the automaton visualization",
	Long:  `Loads the definition and outputs a Mermaid diagram (graph LR): the initial state as a circle, accepting states with a thick border, epsilon transitions dashed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		automaton, err := eng.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(automaton))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
