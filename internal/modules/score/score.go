// Package score keeps the running total of the current run and draws it in
// the corner of the screen.
package score

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "score"

const (
	textSize = 24
	margin   = 10
)

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Score",
		Order:  70,
		Attach: attach,
	})
}

// Board is the score keeper. It implements contract.Score.
type Board struct {
	total int
	best  int

	label      *image.NRGBA
	labelTotal int
	logger     *log.Logger
}

var _ contract.Score = (*Board)(nil)

func attach(env *registry.Env) error {
	b := &Board{labelTotal: -1, logger: env.Logger}
	registry.Provide[contract.Score](env, b)

	bus := env.Bus()
	engine.On(bus, func(ev engine.ScoreChanged) {
		b.total += ev.Score
		b.best = max(b.best, b.total)
	})
	engine.On(bus, func(engine.Reset) { b.total = 0 })
	engine.On(bus, func(ev engine.StateChanged) {
		if ev.To == engine.PhaseGameOver {
			env.Logger.Info("final score", "score", b.total, "best", b.best)
		}
	})
	engine.On(bus, b.draw)
	return nil
}

// Total is the score of the current run.
func (b *Board) Total() int { return b.total }

// Best is the highest total reached since the module attached.
func (b *Board) Best() int { return b.best }

func (b *Board) draw(ev engine.DrawStaticUI) {
	if b.label == nil || b.labelTotal != b.total {
		img, err := sprite.Text(fmt.Sprintf("SCORE %d", b.total), textSize, core.Palette.HighlightText)
		if err != nil {
			b.logger.Warn("render score", "error", err)
			return
		}
		b.label, b.labelTotal = img, b.total
	}
	core.Blit(ev.Surface, b.label, margin, margin)
}
