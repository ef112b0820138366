// Package bird implements the avatar: a bird pulled down by gravity, pushed up
// by thrust, carried along with the viewport.
package bird

import (
	"image"
	"math"
	"time"

	"github.com/vovakirdan/skyscroll/internal/collision"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "bird"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Bird",
		Order:  40,
		Attach: attach,
	})
}

// Bird is the avatar object. It survives resets and implements
// contract.Avatar.
type Bird struct {
	cfg         config.BirdConfig
	worldHeight int
	state       engine.StateView
	bus         *engine.Bus
	thrust      contract.Thrust

	x, y   float64 // world position of the top-left corner
	speedY float64 // px/ms, positive is down

	img    *image.NRGBA
	hitMap *collision.HitMap
}

var (
	_ engine.Ticker     = (*Bird)(nil)
	_ engine.Drawer     = (*Bird)(nil)
	_ engine.Persistent = (*Bird)(nil)
	_ contract.Avatar   = (*Bird)(nil)
)

func attach(env *registry.Env) error {
	thrust, err := registry.Lookup[contract.Thrust](env)
	if err != nil {
		return err
	}
	size := env.Config.Bird.Size
	img, err := sprite.Sized("bird", size, size)
	if err != nil {
		return err
	}

	b := &Bird{
		cfg:         env.Config.Bird,
		worldHeight: env.Engine.Config().ViewportHeight,
		state:       env.Engine.State(),
		bus:         env.Bus(),
		thrust:      thrust,
		img:         img,
		hitMap:      collision.Rasterize(img),
	}
	b.reset()

	registry.Provide[contract.Avatar](env, b)
	env.Engine.Objects().Add(b)
	engine.On(env.Bus(), func(engine.Reset) { b.reset() })
	return nil
}

func (b *Bird) Kind() string     { return ID }
func (b *Bird) Persistent() bool { return true }

// Tick applies gravity and thrust, then follows the viewport. Leaving the
// world through the ceiling or the ground counts as a collision.
func (b *Bird) Tick(dt time.Duration) {
	ms := float64(dt) / float64(time.Millisecond)

	b.speedY += b.cfg.Gravity * ms
	if b.thrust.Pressed() {
		b.speedY -= b.cfg.Thrust * ms
	}
	b.y += b.speedY * ms
	b.x = b.state.ViewportXF() + float64(b.cfg.ViewportX)

	if b.y+float64(b.cfg.Size) > float64(b.worldHeight) || b.y < 0 {
		b.bus.Emit(engine.CollisionDetected{})
	}
}

func (b *Bird) Draw(dst core.Surface, viewportX int) {
	body := b.Body()
	core.Blit(dst, b.img, body.X-viewportX, body.Y)
}

// Body places the hit map at the bird's whole-pixel position.
func (b *Bird) Body() collision.Body {
	return collision.Body{
		X:   int(math.Floor(b.x)),
		Y:   int(math.Floor(b.y)),
		Map: b.hitMap,
	}
}

func (b *Bird) VelocityY() float64 { return b.speedY }

func (b *Bird) reset() {
	b.x = b.state.ViewportXF() + float64(b.cfg.ViewportX)
	b.y = float64(b.worldHeight)/2 - float64(b.cfg.Size)/2
	b.speedY = 0
}
