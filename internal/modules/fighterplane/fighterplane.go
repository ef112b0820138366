// Package fighterplane sends planes at the player from beyond the right edge
// of the screen. Planes are optional: if the sprite cannot be loaded the
// module stays inert.
package fighterplane

import (
	"context"
	"image"
	"math"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/skyscroll/internal/collision"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "fighterplane"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Fighter planes",
		Order:  60,
		Attach: attach,
	})
}

type art struct {
	img    *image.NRGBA
	hitMap *collision.HitMap
}

type squadron struct {
	env    *registry.Env
	avatar contract.Avatar
	art    atomic.Pointer[art]
}

// Plane flies left at a constant speed and removes itself once it is a full
// viewport behind the screen.
type Plane struct {
	x     float64
	y     int
	speed float64 // px/s
	sq    *squadron
}

var (
	_ engine.Ticker = (*Plane)(nil)
	_ engine.Drawer = (*Plane)(nil)
)

func attach(env *registry.Env) error {
	avatar, err := registry.Lookup[contract.Avatar](env)
	if err != nil {
		return err
	}
	sq := &squadron{env: env, avatar: avatar}
	bus := env.Bus()
	engine.On(bus, func(ev engine.Init) { ev.WaitForOptional(ID, sq.load) })
	engine.On(bus, sq.prepare)
	return nil
}

func (sq *squadron) load(ctx context.Context) error {
	cfg := sq.env.Config.Planes
	var (
		src *image.NRGBA
		err error
	)
	if cfg.Sprite != "" {
		src, err = sprite.Load(cfg.Sprite)
	} else {
		src, err = sprite.Asset("plane")
	}
	if err != nil {
		return err
	}
	if cfg.Flip {
		src = sprite.FlipH(src)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	img := sprite.Scale(src, cfg.Width, cfg.Height)
	sq.art.Store(&art{img: img, hitMap: collision.Rasterize(img)})
	sq.env.Logger.Debug("plane sprite ready", "size", img.Bounds().Size())
	return nil
}

// ready reports whether the sprite has loaded.
func (sq *squadron) ready() bool { return sq.art.Load() != nil }

func (sq *squadron) prepare(ev engine.PrepareSegment) {
	if !sq.ready() {
		return
	}
	cfg := sq.env.Config.Planes
	ecfg := sq.env.Engine.Config()
	ticks := sq.env.Engine.State().Ticks()
	rng := ev.Builder.RNG

	chance := sq.env.Difficulty.Chance(cfg.Chance, ev.StartX, ticks)
	if !rng.Chance(chance) {
		return
	}
	// Planes are in motion, so they claim no space in the segment.
	y := rng.NextInt(cfg.Height, ecfg.ViewportHeight-cfg.Height)
	sq.env.Engine.Objects().Add(&Plane{
		x:     float64(ev.EndX + ecfg.ViewportWidth/2),
		y:     y,
		speed: sq.env.Difficulty.Speed(cfg.Speed, ev.StartX, ticks),
		sq:    sq,
	})
}

func (p *Plane) Kind() string { return ID }

// Body places the hit map at the plane's whole-pixel position.
func (p *Plane) Body() collision.Body {
	return collision.Body{X: int(math.Floor(p.x)), Y: p.y, Map: p.sq.art.Load().hitMap}
}

func (p *Plane) Tick(dt time.Duration) {
	p.x -= p.speed * dt.Seconds()

	if collision.Detect(p.Body(), p.sq.avatar.Body()) {
		p.sq.env.Bus().Emit(engine.CollisionDetected{Object: p})
	}

	width := p.sq.env.Config.Planes.Width
	viewportW := p.sq.env.Engine.Config().ViewportWidth
	if p.x+float64(width) < p.sq.env.Engine.State().ViewportXF()-float64(viewportW) {
		p.sq.env.Engine.Objects().Delete(p)
	}
}

func (p *Plane) Draw(dst core.Surface, viewportX int) {
	onScreen := p.Body().Bounds().Translate(-viewportX, 0)
	b := dst.Bounds()
	if !onScreen.Intersects(core.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())) {
		return
	}
	core.Blit(dst, p.sq.art.Load().img, onScreen.X, onScreen.Y)
}
