package bigcoin

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/bird"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/modules/flybutton"
	"github.com/vovakirdan/skyscroll/internal/modules/moduletest"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/world"
)

var ids = []string{flybutton.ID, bird.ID, ID}

func coins(e *engine.Engine) []*Coin {
	var out []*Coin
	for obj := range e.Objects().All() {
		if c, ok := obj.(*Coin); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestPlacementIsDeterministic(t *testing.T) {
	layout := func() []int {
		g := moduletest.New(t, moduletest.Config(ids...), false)
		var xs []int
		for _, start := range []int{0, 800, 3000} {
			b := g.Engine.PrepareSegment(start)
			for _, r := range b.Reserved() {
				xs = append(xs, r.X, r.Y)
			}
		}
		return xs
	}
	first, second := layout(), layout()
	if len(first) == 0 {
		t.Fatal("no coins placed")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("layouts differ:\n%v\n%v", first, second)
	}
}

func TestCoinsStayInSegmentAndWorld(t *testing.T) {
	cfg := moduletest.Config(ids...)
	cfg.Coins.PerSegment = 3
	g := moduletest.New(t, cfg, false)
	height := g.Engine.Config().ViewportHeight

	for start := 0; start < 20*800; start += 800 {
		g.Engine.PrepareSegment(start)
	}
	all := coins(g.Engine)
	if len(all) < 20 {
		t.Fatalf("only %d coins placed in 20 segments", len(all))
	}
	for i, c := range all {
		r := c.Bounds()
		seg := r.X / 800 * 800
		if r.Right() > seg+800 {
			t.Errorf("coin %v crosses its segment end", r)
		}
		if r.Y < 0 || r.Bottom() > height {
			t.Errorf("coin %v leaves the world", r)
		}
		for _, other := range all[i+1:] {
			if r.Intersects(other.Bounds()) {
				t.Errorf("coins %v and %v overlap", r, other.Bounds())
			}
		}
	}
}

func TestRespectsReservations(t *testing.T) {
	g := moduletest.New(t, moduletest.Config(ids...), false)
	b := world.NewSegmentBuilder(0, 800)
	b.ReserveSpace(0, 0, 800, 450)

	g.Engine.Bus().Emit(engine.PrepareSegment{StartX: b.StartX, EndX: b.EndX, Builder: b})

	if n := len(coins(g.Engine)); n != 0 {
		t.Fatalf("placed %d coins in a fully reserved segment", n)
	}
	if len(b.Reserved()) != 1 {
		t.Fatalf("reservations = %v", b.Reserved())
	}
}

func TestPickupAwardsScore(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ids...), false)
	scores := moduletest.Emitted[engine.ScoreChanged](g.Engine)
	avatar, err := registry.Lookup[contract.Avatar](g.Env)
	if err != nil {
		t.Fatal(err)
	}

	s := coins(g.Engine)[0].owner
	for _, c := range coins(g.Engine) {
		g.Engine.Objects().Delete(c)
	}

	// drop a coin right on the bird
	body := avatar.Body()
	coin := &Coin{x: body.X, y: body.Y, owner: s}
	g.Engine.Objects().Add(coin)

	g.Engine.Tick()

	if g.Engine.Objects().Has(coin) {
		t.Fatal("collected coin still registered")
	}
	if len(*scores) != 1 || (*scores)[0].Score != 1000 {
		t.Fatalf("score events = %v", *scores)
	}
}

func TestCoinExpires(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ids...), false)
	s := coins(g.Engine)[0].owner
	coin := &Coin{x: 10, y: 0, owner: s}
	g.Engine.Objects().Add(coin)
	if coin.AutoRemoveAt() != 50 {
		t.Fatalf("AutoRemoveAt = %d", coin.AutoRemoveAt())
	}

	moduletest.Ticks(g.Engine, 49)
	if !g.Engine.Objects().Has(coin) {
		t.Fatal("coin removed early")
	}
	moduletest.Ticks(g.Engine, 1)
	if g.Engine.Objects().Has(coin) {
		t.Fatal("coin outlived the viewport")
	}
}

func TestHitMapIsRound(t *testing.T) {
	g := moduletest.New(t, moduletest.Config(ids...), false)
	g.Engine.PrepareSegment(0)
	hm := coins(g.Engine)[0].owner.hitMap
	if hm.Solid(0, 0) || !hm.Solid(hm.Width/2, hm.Height/2) {
		t.Fatal("coin hit map should be solid in the middle and empty in the corners")
	}
}
