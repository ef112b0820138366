package tui

import (
	"time"

	"github.com/vovakirdan/skyscroll/internal/core"
)

// heldInput turns the terminal's press-only key events into held keys.
// A key stays down until hold has passed since its last press; auto-repeat
// keeps refreshing it while the user holds the key.
type heldInput struct {
	hold  time.Duration
	until map[string]time.Time
	touch *core.Point
}

func newHeldInput(hold time.Duration) *heldInput {
	return &heldInput{hold: hold, until: make(map[string]time.Time)}
}

func (h *heldInput) press(code string, now time.Time) {
	h.until[code] = now.Add(h.hold)
}

func (h *heldInput) touchAt(p core.Point) { h.touch = &p }
func (h *heldInput) release()             { h.touch = nil }

// state returns the device snapshot at now, forgetting expired keys.
func (h *heldInput) state(now time.Time) core.InputState {
	in := core.NewInputState()
	for code, until := range h.until {
		if !now.Before(until) {
			delete(h.until, code)
			continue
		}
		in.KeysDown[code] = true
	}
	if h.touch != nil {
		in.Touches = []core.Point{*h.touch}
	}
	return in
}
