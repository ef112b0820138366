package score

import (
	"image"
	"testing"

	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/modules/moduletest"
	"github.com/vovakirdan/skyscroll/internal/registry"
)

func TestAccumulatesAndResets(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ID), false)
	s, err := registry.Lookup[contract.Score](g.Env)
	if err != nil {
		t.Fatal(err)
	}
	bus := g.Engine.Bus()

	bus.Emit(engine.ScoreChanged{Score: 1000})
	bus.Emit(engine.ScoreChanged{Score: 1000})
	bus.Emit(engine.ScoreChanged{Score: 250})
	if s.Total() != 2250 {
		t.Fatalf("Total = %d, want 2250", s.Total())
	}

	bus.Emit(engine.GameOver{})
	bus.Emit(engine.Reset{})
	if s.Total() != 0 {
		t.Fatalf("Total after reset = %d", s.Total())
	}
	if best := s.Best(); best != 2250 {
		t.Fatalf("Best = %d", best)
	}
}

func TestDrawsLabel(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ID), false)
	canvas := moduletest.Canvas(g.Engine)
	g.Engine.Draw(canvas)
	if !anyPixel(canvas, image.Rect(margin, margin, margin+120, margin+30)) {
		t.Fatal("score label not drawn")
	}

	s, err := registry.Lookup[contract.Score](g.Env)
	if err != nil {
		t.Fatal(err)
	}
	before := s.(*Board).label.Bounds().Dx()
	g.Engine.Bus().Emit(engine.ScoreChanged{Score: 1000})
	g.Engine.Draw(canvas)
	if after := s.(*Board).label.Bounds().Dx(); after <= before {
		t.Fatalf("label width %d -> %d, want it to grow with the score", before, after)
	}
}

func anyPixel(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}
