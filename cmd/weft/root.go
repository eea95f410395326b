package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Weft is a finite automata toolkit",
	Long:  `Weft loads finite automata (NFA/DFA) from declarative definitions, simulates word acceptance, and converts epsilon-NFAs into equivalent DFAs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger honoring the --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// newEngine builds the library engine used by the file-based commands.
func newEngine(cmd *cobra.Command) *weft.Engine {
	return weft.New(weft.WithLogger(newLogger(cmd)))
}
