// Package window runs the engine in a desktop window.
package window

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyscroll/internal/app"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
)

// Options configures the window.
type Options struct {
	Title string
	Scale float64 // window size relative to the viewport
}

// Game adapts an engine to ebiten.Game. Ebiten scales the viewport-sized
// canvas to the window.
type Game struct {
	engine *engine.Engine
	pacer  *engine.Pacer
	canvas *image.RGBA
	last   core.InputState
	keys   []ebiten.Key
	pads   []ebiten.GamepadID
	touch  []ebiten.TouchID
	done   <-chan struct{}
}

var _ ebiten.Game = (*Game)(nil)

// New wraps an initialized engine.
func New(e *engine.Engine) *Game {
	cfg := e.Config()
	return &Game{
		engine: e,
		pacer:  engine.NewPacer(engine.SystemClock{}),
		canvas: core.NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight),
		last:   core.NewInputState(),
	}
}

// Update polls devices, publishes changed input and advances the engine.
func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	in := g.poll()
	if !in.Equal(g.last) {
		g.last = in
		g.engine.Input(in.Clone())
	}
	g.engine.Advance(g.pacer.Elapsed())
	return nil
}

func (g *Game) poll() core.InputState {
	in := core.NewInputState()

	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code := keyCode(k); code != "" {
			in.KeysDown[code] = true
		}
	}

	g.touch = ebiten.AppendTouchIDs(g.touch[:0])
	for _, id := range g.touch {
		x, y := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, core.Point{X: x, Y: y})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Touches = append(in.Touches, core.Point{X: x, Y: y})
	}

	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	if len(g.pads) > 0 {
		id := g.pads[0]
		pad := &core.Gamepad{
			Buttons: make([]bool, ebiten.GamepadButtonCount(id)),
			Axes:    make([]float64, ebiten.GamepadAxisCount(id)),
		}
		for i := range pad.Buttons {
			pad.Buttons[i] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
		}
		for i := range pad.Axes {
			pad.Axes[i] = ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(i))
		}
		in.Gamepad = pad
	}
	return in
}

// keyCode maps an ebiten key to its KeyboardEvent.code name.
func keyCode(k ebiten.Key) string {
	name := k.String()
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return "Key" + name
	case name == "":
		return ""
	}
	return name
}

// Draw renders the engine frame into the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(g.canvas)
	screen.WritePixels(g.canvas.Pix)
}

// Layout keeps the logical screen at the viewport size.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Run initializes the engine and blocks until the window closes.
func Run(ctx context.Context, game *app.Game, opts Options) error {
	if err := game.Engine.Init(ctx); err != nil {
		return err
	}
	cfg := game.Engine.Config()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.ViewportWidth)*scale), int(float64(cfg.ViewportHeight)*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FrameRate)

	g := New(game.Engine)
	g.done = ctx.Done()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
