// Package pausebutton toggles pause from the on-screen button in the top
// right corner, or from the P and Escape keys.
package pausebutton

import (
	"image"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "pausebutton"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Pause button",
		Order:  80,
		Attach: attach,
	})
}

type button struct {
	rect  core.Rect
	state engine.StateView
	bus   *engine.Bus

	// previous input, so holding a key or a finger toggles only once
	touching bool
	keyed    bool

	bg, pause, play, banner *image.NRGBA
	centre                  core.Point
}

func attach(env *registry.Env) error {
	cfg := env.Engine.Config()
	ui := env.Config.UI.PauseButton
	b := &button{
		rect:   core.NewRect(cfg.ViewportWidth-ui.Width-ui.Margin, ui.Margin, ui.Width, ui.Height),
		state:  env.Engine.State(),
		bus:    env.Bus(),
		centre: core.Point{X: cfg.ViewportWidth / 2, Y: cfg.ViewportHeight / 2},
	}
	if err := b.render(); err != nil {
		return err
	}

	engine.On(env.Bus(), b.input)
	engine.On(env.Bus(), b.draw)
	return nil
}

func (b *button) render() error {
	w, h := b.rect.W, b.rect.H
	b.bg = sprite.RoundedRect(w, h, min(w, h)/5, core.Palette.ButtonBg)

	// two bars
	b.pause = image.NewNRGBA(image.Rect(0, 0, w, h))
	barW, barH := max(1, w/5), h*3/5
	core.FillRect(b.pause, core.NewRect(w/2-barW-barW/2, (h-barH)/2, barW, barH), core.Palette.ButtonText)
	core.FillRect(b.pause, core.NewRect(w/2+barW/2, (h-barH)/2, barW, barH), core.Palette.ButtonText)

	b.play = sprite.Triangle(w/2, h*3/5, core.Palette.ButtonText)

	banner, err := sprite.Text("PAUSED", 36, core.Palette.HighlightText)
	if err != nil {
		return err
	}
	b.banner = banner
	return nil
}

func (b *button) input(ev engine.InputChanged) {
	touching := len(ev.TouchesInArea(b.rect.X, b.rect.Y, b.rect.W, b.rect.H)) > 0
	keyed := ev.Input.KeyDown(core.KeyP) || ev.Input.KeyDown(core.KeyEscape)
	pressed := (touching && !b.touching) || (keyed && !b.keyed)
	b.touching, b.keyed = touching, keyed
	if !pressed {
		return
	}

	switch b.state.Phase() {
	case engine.PhasePlaying:
		b.bus.Emit(engine.Paused{})
	case engine.PhasePaused:
		b.bus.Emit(engine.Unpaused{})
	}
}

func (b *button) draw(ev engine.DrawStaticUI) {
	core.Blit(ev.Surface, b.bg, b.rect.X, b.rect.Y)
	cx, cy := b.rect.X+b.rect.W/2, b.rect.Y+b.rect.H/2
	if b.state.Phase() == engine.PhasePaused {
		sprite.DrawCentered(ev.Surface, b.play, cx+b.rect.W/10, cy)
		sprite.DrawCentered(ev.Surface, b.banner, b.centre.X, b.centre.Y)
		return
	}
	sprite.DrawCentered(ev.Surface, b.pause, cx, cy)
}
