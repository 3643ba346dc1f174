// numguess is a terminal number guessing game.
//
// Usage:
//
//	numguess                 - Play the game
//	numguess difficulties    - List difficulty levels
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/games/guess"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(os.Stdout, err))
	}
}

// report prints err the way the player should see it and returns the exit code.
func report(w io.Writer, err error) int {
	if errors.Is(err, guess.ErrEarlyQuit) {
		fmt.Fprintln(w, err)
	} else {
		fmt.Fprintf(w, "Application error: %v\n", err)
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "numguess",
	Short: "Guess the secret number in as few attempts as possible",
	Long: `numguess picks a secret number and tells you whether each guess is
too high or too low until you find it or run out of attempts.

Difficulty levels:
  0 Unlimited  - No attempt limit
  1 Easy       - 10 attempts
  2 Medium     - 5 attempts
  3 Hard       - 3 attempts

Type q at any prompt to quit.

Examples:
  numguess
  numguess --seed 42
  numguess --config ./my-numguess.yaml
  numguess difficulties`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(difficultiesCmd)
}
