package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyscroll/internal/app"
)

var (
	flagFrom          int
	flagSegmentsCount int
	flagVerifyCount   int
)

var segmentsCmd = &cobra.Command{
	Use:   "segments [startX...]",
	Short: "Print generated segment layouts",
	Long: `Prepare world segments with the enabled modules and print what they
placed. Segments are seeded by their start X, so the output is the same on
every run.

Without arguments, --count segments are prepared from --from onwards.

Examples:
  skyscroll segments 0 800 1600
  skyscroll segments --from 8000 --count 5
  skyscroll segments --difficulty easy 0`,
	Run: runSegments,
}

func init() {
	for _, c := range []*cobra.Command{segmentsCmd, verifyCmd} {
		c.Flags().IntVar(&flagFrom, "from", 0, "First segment start X")
	}
	segmentsCmd.Flags().IntVar(&flagSegmentsCount, "count", 4, "Number of consecutive segments")
	verifyCmd.Flags().IntVar(&flagVerifyCount, "count", 50, "Number of consecutive segments")
}

func runSegments(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, starts, err := surveyGame(logger, args, flagSegmentsCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Modules: %s\n\n", strings.Join(game.IDs(), ", "))
	for _, r := range game.Survey(starts...) {
		fmt.Printf("Segment [%d, %d)  fingerprint %016x\n", r.StartX, r.EndX, r.Hash)
		for _, rect := range r.Reserved {
			fmt.Printf("  reserved  x=%-6d y=%-4d %dx%d\n", rect.X, rect.Y, rect.W, rect.H)
		}
		for _, kind := range slices.Sorted(maps.Keys(r.Objects)) {
			fmt.Printf("  spawned   %-12s x%d\n", kind, r.Objects[kind])
		}
		if len(r.Reserved) == 0 && r.ObjectCount() == 0 {
			fmt.Println("  (empty)")
		}
	}
}

// surveyGame builds a loaded, unstarted game and resolves the segment start
// positions from args, or count segments from --from.
func surveyGame(logger *log.Logger, args []string, count int) (*app.Game, []int, error) {
	game, err := newGame(logger, false)
	if err != nil {
		return nil, nil, err
	}
	if err := game.Load(context.Background()); err != nil {
		return nil, nil, err
	}

	width := game.Engine.Config().SegmentWidth
	var starts []int
	if len(args) == 0 {
		for i := range count {
			starts = append(starts, flagFrom+i*width)
		}
		return game, starts, nil
	}
	for _, a := range args {
		x, err := strconv.Atoi(a)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start X %q", a)
		}
		starts = append(starts, x)
	}
	return game, starts, nil
}
