// Package moduletest builds engines with a chosen set of modules for tests.
package moduletest

import (
	"context"
	"image"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/app"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
)

// Config returns the default configuration restricted to ids.
func Config(ids ...string) config.Config {
	cfg := config.DefaultConfig()
	cfg.Modules = ids
	return cfg
}

// New attaches the configured modules to a fresh engine.
func New(t testing.TB, cfg config.Config, demo bool) *app.Game {
	t.Helper()
	g, err := app.New(app.Options{Config: cfg, Demo: demo, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("attach modules: %v", err)
	}
	return g
}

// Started is New followed by a successful engine Init.
func Started(t testing.TB, cfg config.Config, demo bool) *app.Game {
	t.Helper()
	g := New(t, cfg, demo)
	if err := g.Engine.Init(context.Background()); err != nil {
		t.Fatalf("engine init: %v", err)
	}
	return g
}

// Keys builds an input state with the given keys held.
func Keys(codes ...string) core.InputState {
	in := core.NewInputState()
	for _, c := range codes {
		in.KeysDown[c] = true
	}
	return in
}

// Touch builds an input state with a single touch.
func Touch(x, y int) core.InputState {
	in := core.NewInputState()
	in.Touches = []core.Point{{X: x, Y: y}}
	return in
}

// Ticks runs n engine ticks.
func Ticks(e *engine.Engine, n int) {
	for range n {
		e.Tick()
	}
}

// Emitted counts events of type E from now on.
func Emitted[E engine.Event](e *engine.Engine) *[]E {
	var got []E
	engine.On(e.Bus(), func(ev E) { got = append(got, ev) })
	return &got
}

// Canvas allocates a surface of the engine's viewport size.
func Canvas(e *engine.Engine) *image.RGBA {
	cfg := e.Config()
	return core.NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight)
}
