package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/platform/tui"
)

var (
	flagKeyHold  time.Duration
	flagHeadless bool
	flagDuration time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The canvas is drawn with half-block
characters, so a larger terminal gives a sharper picture.

Controls:
  Space/Up   - Fly
  P/Esc      - Pause
  Mouse      - Press the on-screen buttons
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Terminals report key presses but not releases, so a press counts as held
for --key-hold. Key auto-repeat keeps it held.

Difficulty options:
  easy   - Start at lowest difficulty, more coins, slower planes
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, heavier bird, more planes
  fixed  - No progression, stays at config's initial level

Examples:
  skyscroll play
  skyscroll play --difficulty easy
  skyscroll play --log ~/.skyscroll/play.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  func(cmd *cobra.Command, args []string) { runTerminal(false) },
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot (attract mode)",
	Long: `Run the game in attract mode: the autopilot flies and a crash starts
a new run instead of ending the game.

With --headless the engine runs without a terminal for --duration and
reports how far it got.

Examples:
  skyscroll demo
  skyscroll demo --headless --duration 30s`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagHeadless {
			runHeadless()
			return
		}
		runTerminal(true)
	},
}

func init() {
	for _, c := range []*cobra.Command{playCmd, demoCmd} {
		c.Flags().DurationVar(&flagKeyHold, "key-hold", core.DefaultConfig().KeyHold, "How long a key press counts as held")
	}
	demoCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal")
	demoCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "How long a headless demo runs")
}

func runTerminal(demo bool) {
	// The alternate screen owns the terminal, so logs only go to --log.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(logger, demo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = game.Engine.Config().FrameRate
	cfg.KeyHold = flagKeyHold
	cfg.Demo = demo

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tui.Run(ctx, game, cfg); err != nil {
		logger.Error("terminal host stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless() {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	if err := game.Engine.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resets := 0
	engine.On(game.Engine.Bus(), func(engine.Reset) { resets++ })

	ec := game.Engine.Config()
	surface := core.NewCanvas(ec.ViewportWidth, ec.ViewportHeight)
	err = game.Engine.Run(ctx, engine.SystemClock{}, surface)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := game.Engine.State()
	logger.Info("demo finished",
		"ticks", st.Ticks(),
		"viewportX", st.ViewportX(),
		"generatedUpTo", st.GeneratedUpTo(),
		"resets", resets,
		"objects", game.Engine.Objects().Len(),
		"handlerFailures", game.Engine.Bus().Failures(),
	)
}
