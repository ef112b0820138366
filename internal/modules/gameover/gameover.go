// Package gameover slides a "GAME OVER" banner up from below the screen when
// a run ends. Once it has settled, any key, touch or gamepad button starts a
// new run.
package gameover

import (
	"image"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "gameover"

const (
	text     = "GAME OVER"
	textSize = 48

	// startBelow is how far below the bottom edge the banner starts.
	startBelow = 50
)

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Game over",
		Order:  90,
		Attach: attach,
	})
}

type banner struct {
	img     *image.NRGBA
	centreX int
	targetY int
	startY  int
	speed   int
	bus     *engine.Bus

	active  bool
	settled bool
	y       int
}

func attach(env *registry.Env) error {
	img, err := sprite.Text(text, textSize, core.Palette.HighlightText)
	if err != nil {
		return err
	}
	cfg := env.Engine.Config()
	b := &banner{
		img:     img,
		centreX: cfg.ViewportWidth / 2,
		targetY: cfg.ViewportHeight / 2,
		startY:  cfg.ViewportHeight + startBelow,
		speed:   max(1, env.Config.UI.GameOverSpeed),
		bus:     env.Bus(),
	}

	bus := env.Bus()
	engine.On(bus, func(ev engine.StateChanged) {
		if ev.To == engine.PhaseGameOver {
			b.active, b.settled, b.y = true, false, b.startY
			return
		}
		b.active = false
	})
	engine.On(bus, b.draw)
	engine.On(bus, b.input)
	return nil
}

// draw advances the slide by one step per frame, so the banner moves at the
// display rate rather than the simulation rate.
func (b *banner) draw(ev engine.DrawStaticUI) {
	if !b.active {
		return
	}
	if !b.settled {
		b.y -= b.speed
		if b.y <= b.targetY {
			b.y = b.targetY
			b.settled = true
		}
	}
	sprite.DrawCentered(ev.Surface, b.img, b.centreX, b.y)
}

func (b *banner) input(ev engine.InputChanged) {
	if !b.active || !b.settled {
		return
	}
	in := ev.Input
	if !in.AnyKeyDown() && len(in.Touches) == 0 && !in.Gamepad.AnyPressed() {
		return
	}
	b.active, b.settled = false, false
	b.bus.Emit(engine.Reset{})
}
