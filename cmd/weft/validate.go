package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an automaton definition for consistency",
	Long:  `Parses the definition and verifies every structural rule: declared states and symbols, the initial state, the accepting set, and each transition endpoint. Reports the violated rule on failure.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		if _, err := eng.LoadFile(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
