package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyscroll/internal/platform/window"
)

var (
	flagScale float64
	flagDemo  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. Keyboard, mouse, touch and the
first gamepad are all supported.

Controls:
  Space/Up/Gamepad A  - Fly
  P/Esc               - Pause
  Ctrl+Q              - Quit

Examples:
  skyscroll window
  skyscroll window --scale 2
  skyscroll window --demo`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the viewport")
	windowCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run in attract mode")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(logger, flagDemo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := window.Run(ctx, game, window.Options{Title: "Skyscroll", Scale: flagScale}); err != nil {
		logger.Error("window host stopped", "error", err)
		os.Exit(1)
	}
}
