// Package background paints the sky behind the world and the scrolling grass
// strip in front of it.
package background

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "background"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Sky and grass",
		Order:  10,
		Attach: attach,
	})
}

type scenery struct {
	sky   *image.NRGBA
	grass *image.NRGBA
}

type module struct {
	width, height int
	grassHeight   int
	state         engine.StateView
	art           atomic.Pointer[scenery]
}

func attach(env *registry.Env) error {
	cfg := env.Engine.Config()
	m := &module{
		width:       cfg.ViewportWidth,
		height:      cfg.ViewportHeight,
		grassHeight: env.Config.UI.GrassHeight,
		state:       env.Engine.State(),
	}
	bus := env.Bus()
	engine.On(bus, func(ev engine.Init) { ev.WaitFor(ID, m.load) })
	engine.On(bus, m.drawBackground)
	engine.On(bus, m.drawGrass)
	return nil
}

func (m *module) load(ctx context.Context) error {
	grass, err := sprite.Asset("grass")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	art := &scenery{sky: skyGradient(m.width, m.height)}
	if m.grassHeight > 0 {
		// keep the mask's aspect ratio
		b := grass.Bounds()
		tileW := max(1, b.Dx()*m.grassHeight/b.Dy())
		art.grass = sprite.Scale(grass, tileW, m.grassHeight)
	}
	m.art.Store(art)
	return nil
}

func (m *module) drawBackground(ev engine.DrawBackground) {
	core.Clear(ev.Surface, core.Palette.Background)
	if art := m.art.Load(); art != nil {
		core.Blit(ev.Surface, art.sky, 0, 0)
	}
}

func (m *module) drawGrass(ev engine.DrawStaticUI) {
	art := m.art.Load()
	if art == nil || art.grass == nil {
		return
	}
	tileW := art.grass.Bounds().Dx()
	offset := m.state.ViewportX() % tileW
	y := m.height - m.grassHeight
	for x := -offset; x < m.width; x += tileW {
		core.Blit(ev.Surface, art.grass, x, y)
	}
}

// skyGradient fades from the palette's sky colour at the top to the
// background colour at the bottom.
func skyGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top, bottom := core.Palette.Sky, core.Palette.Background
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(1, h-1))
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xFF,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
