package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
	"github.com/vovakirdan/numguess/internal/games/guess"
	"github.com/vovakirdan/numguess/internal/platform/console"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Terminal width only sizes the banner
	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	ch := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithWidth(width))
	state := guess.NewState(core.NewRand(flagSeed), cfg)
	controller := guess.NewController(ch, state, core.SystemClock{}, logger)

	logger.Debug("starting game", "seed", flagSeed, "min", cfg.Range.Min, "max", cfg.Range.Max)
	return controller.Run()
}

// newLogger creates the structured logger used for diagnostics on w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "numguess",
		Level:           lvl,
	})
	return logger, nil
}
