package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/presentation/tui"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run <file> [words...]",
	Short: "Simulate words against an automaton",
	Long: `Loads an automaton definition and decides ACCEPT, REJECT or INVALID for each word.

Words come from the arguments, from piped stdin (one per line), or from an
interactive prompt when stdin is a terminal.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")

		eng := newEngine(cmd)
		automaton, err := eng.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading automaton: %v\n", err)
			os.Exit(1)
		}

		words := args[1:]
		if len(words) == 0 {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				runInteractive(eng, automaton)
				return
			}
			words = readWords(os.Stdin)
		}

		results := eng.Process(automaton, words)
		if jsonOut {
			_ = json.NewEncoder(os.Stdout).Encode(results)
			return
		}
		for _, res := range results {
			fmt.Printf("%s: %s\n", displayWord(res.Word), tui.ColorVerdict(res.Verdict))
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("json", false, "Emit results as JSON")
}

// runInteractive prompts for words one at a time until EOF or an exit command.
func runInteractive(eng *weft.Engine, automaton *domain.Automaton) {
	fmt.Println("Enter words, one per line (empty word is allowed; 'exit' to quit).")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		word := strings.TrimSpace(line)
		if word == "exit" || word == "quit" {
			return
		}

		res := eng.Process(automaton, []string{word})[0]
		fmt.Printf("%s: %s\n", displayWord(res.Word), tui.ColorVerdict(res.Verdict))
	}
}

func readWords(f *os.File) []string {
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, strings.TrimSpace(scanner.Text()))
	}
	return words
}

// displayWord keeps the empty word visible in the output.
func displayWord(word string) string {
	if word == "" {
		return "(empty)"
	}
	return word
}
