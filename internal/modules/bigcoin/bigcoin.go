// Package bigcoin scatters big coins through the world. Flying through one
// awards its points.
package bigcoin

import (
	"image"
	"time"

	"github.com/vovakirdan/skyscroll/internal/collision"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "bigcoin"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Big coins",
		Order:  50,
		Attach: attach,
	})
}

type spawner struct {
	env    *registry.Env
	avatar contract.Avatar
	size   int
	img    *image.NRGBA
	hitMap *collision.HitMap
}

// Coin is a single pickup. It is removed once the viewport has passed it.
type Coin struct {
	x, y  int
	owner *spawner
}

var (
	_ engine.Ticker   = (*Coin)(nil)
	_ engine.Drawer   = (*Coin)(nil)
	_ engine.Expiring = (*Coin)(nil)
)

func attach(env *registry.Env) error {
	avatar, err := registry.Lookup[contract.Avatar](env)
	if err != nil {
		return err
	}
	size := env.Config.Coins.Radius * 2
	img, err := sprite.Sized("coin", size, size)
	if err != nil {
		return err
	}
	s := &spawner{
		env:    env,
		avatar: avatar,
		size:   size,
		img:    img,
		hitMap: collision.Rasterize(img),
	}
	engine.On(env.Bus(), s.prepare)
	return nil
}

// prepare tries a few random spots per coin and keeps the first one no other
// module has claimed.
func (s *spawner) prepare(ev engine.PrepareSegment) {
	cfg := s.env.Config.Coins
	height := s.env.Engine.Config().ViewportHeight
	rng := ev.Builder.RNG
	r := cfg.Radius

	for range cfg.PerSegment {
		for range max(1, cfg.Attempts) {
			x := rng.NextInt(ev.StartX, ev.EndX-s.size)
			y := rng.NextInt(r, height-s.size-r)
			if ev.Builder.ReserveSpace(x, y, s.size, s.size) {
				s.env.Engine.Objects().Add(&Coin{x: x, y: y, owner: s})
				break
			}
		}
	}
}

func (c *Coin) Kind() string { return ID }

// Bounds is the coin's area in world coordinates.
func (c *Coin) Bounds() core.Rect {
	return core.NewRect(c.x, c.y, c.owner.size, c.owner.size)
}

func (c *Coin) AutoRemoveAt() int { return c.x + c.owner.size }

func (c *Coin) Tick(time.Duration) {
	s := c.owner
	body := collision.Body{X: c.x, Y: c.y, Map: s.hitMap}
	if !collision.Detect(body, s.avatar.Body()) {
		return
	}
	s.env.Engine.Objects().Delete(c)
	s.env.Bus().Emit(engine.ScoreChanged{Score: s.env.Config.Coins.Score})
}

func (c *Coin) Draw(dst core.Surface, viewportX int) {
	core.Blit(dst, c.owner.img, c.x-viewportX, c.y)
}
