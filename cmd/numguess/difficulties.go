package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/games/guess"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty levels",
	Long:  `Shows the difficulty levels and their attempt budgets from the active config.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Secret number range: %d-%d\n", cfg.Range.Min, cfg.Range.Max)
	fmt.Fprintln(out)

	// Calculate column widths
	maxLabelLen := len("Level")
	for _, d := range guess.Difficulties {
		if l := len(cfg.Difficulty(d.Key()).Label); l > maxLabelLen {
			maxLabelLen = l
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-6s  %-*s  %s\n", "Choice", maxLabelLen, "Level", "Attempts")
	fmt.Fprintf(out, "  %-6s  %-*s  %s\n", "------", maxLabelLen, "-----", "--------")

	// Print levels
	for i, d := range guess.Difficulties {
		spec := cfg.Difficulty(d.Key())
		fmt.Fprintf(out, "  %-6d  %-*s  %s\n", i, maxLabelLen, spec.Label, spec.Describe())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'numguess' to play.")
	return nil
}
