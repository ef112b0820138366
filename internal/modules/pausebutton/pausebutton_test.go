package pausebutton

import (
	"testing"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/moduletest"
)

func TestToggle(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ID), false)
	ui := g.Env.Config.UI.PauseButton
	bx, by := 800-ui.Width-ui.Margin+5, ui.Margin+5
	release := core.NewInputState()

	steps := []struct {
		name string
		in   core.InputState
		want engine.Phase
	}{
		{"tap pauses", moduletest.Touch(bx, by), engine.PhasePaused},
		{"holding does not toggle again", moduletest.Touch(bx+1, by+1), engine.PhasePaused},
		{"release", release, engine.PhasePaused},
		{"second tap resumes", moduletest.Touch(bx, by), engine.PhasePlaying},
		{"release again", release, engine.PhasePlaying},
		{"tap elsewhere", moduletest.Touch(10, 10), engine.PhasePlaying},
		{"P pauses", moduletest.Keys(core.KeyP), engine.PhasePaused},
		{"P released", release, engine.PhasePaused},
		{"Escape resumes", moduletest.Keys(core.KeyEscape), engine.PhasePlaying},
	}
	for _, s := range steps {
		g.Engine.Input(s.in)
		if got := g.Engine.State().Phase(); got != s.want {
			t.Fatalf("%s: phase = %v, want %v", s.name, got, s.want)
		}
	}
}

func TestNoToggleAfterGameOver(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ID), false)
	g.Engine.Bus().Emit(engine.GameOver{})
	g.Engine.Input(moduletest.Keys(core.KeyP))
	if got := g.Engine.State().Phase(); got != engine.PhaseGameOver {
		t.Fatalf("phase = %v", got)
	}
}

func TestPausedBanner(t *testing.T) {
	g := moduletest.Started(t, moduletest.Config(ID), false)
	canvas := moduletest.Canvas(g.Engine)
	g.Engine.Draw(canvas)
	if canvas.RGBAAt(400, 225).A != 0 {
		t.Fatal("banner drawn while playing")
	}

	g.Engine.Bus().Emit(engine.Paused{})
	g.Engine.Draw(canvas)
	found := false
	for x := 330; x < 470 && !found; x++ {
		for y := 210; y < 240; y++ {
			if canvas.RGBAAt(x, y) == core.Palette.HighlightText {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("PAUSED banner missing")
	}
}
