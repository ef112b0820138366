package core

// Key codes follow the KeyboardEvent.code naming so every host maps its raw
// device keys onto the same vocabulary.
const (
	KeySpace   = "Space"
	KeyArrowUp = "ArrowUp"
	KeyEscape  = "Escape"
	KeyEnter   = "Enter"
	KeyP       = "KeyP"
	KeyR       = "KeyR"
	KeyW       = "KeyW"
)

// Gamepad is a snapshot of the default gamepad.
type Gamepad struct {
	Buttons []bool
	Axes    []float64
}

// Pressed reports whether button i is held.
func (g *Gamepad) Pressed(i int) bool {
	if g == nil || i < 0 || i >= len(g.Buttons) {
		return false
	}
	return g.Buttons[i]
}

// AnyPressed reports whether any button is held.
func (g *Gamepad) AnyPressed() bool {
	if g == nil {
		return false
	}
	for _, b := range g.Buttons {
		if b {
			return true
		}
	}
	return false
}

// InputState is the normalized device state re-emitted on every raw input
// change. Touches include a mouse with its primary button held.
type InputState struct {
	KeysDown map[string]bool
	Gamepad  *Gamepad
	Touches  []Point
}

// NewInputState creates an empty input state.
func NewInputState() InputState {
	return InputState{KeysDown: make(map[string]bool)}
}

// KeyDown reports whether the given key code is held.
func (s InputState) KeyDown(code string) bool {
	return s.KeysDown[code]
}

// AnyKeyDown reports whether at least one key is held.
func (s InputState) AnyKeyDown() bool {
	for _, down := range s.KeysDown {
		if down {
			return true
		}
	}
	return false
}

// TouchesInArea lists the touches inside the given surface rectangle.
func (s InputState) TouchesInArea(x, y, w, h int) []Point {
	area := NewRect(x, y, w, h)
	var out []Point
	for _, p := range s.Touches {
		if area.Contains(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

// Equal reports whether two states describe the same device snapshot.
// Hosts use it to emit only on change.
func (s InputState) Equal(other InputState) bool {
	if countDown(s.KeysDown) != countDown(other.KeysDown) {
		return false
	}
	for k, down := range s.KeysDown {
		if down && !other.KeysDown[k] {
			return false
		}
	}
	if len(s.Touches) != len(other.Touches) {
		return false
	}
	for i := range s.Touches {
		if s.Touches[i] != other.Touches[i] {
			return false
		}
	}
	return gamepadEqual(s.Gamepad, other.Gamepad)
}

// Clone creates a deep copy of this input state.
func (s InputState) Clone() InputState {
	clone := NewInputState()
	for k, v := range s.KeysDown {
		if v {
			clone.KeysDown[k] = true
		}
	}
	clone.Touches = append([]Point(nil), s.Touches...)
	if s.Gamepad != nil {
		clone.Gamepad = &Gamepad{
			Buttons: append([]bool(nil), s.Gamepad.Buttons...),
			Axes:    append([]float64(nil), s.Gamepad.Axes...),
		}
	}
	return clone
}

func countDown(m map[string]bool) int {
	n := 0
	for _, down := range m {
		if down {
			n++
		}
	}
	return n
}

func gamepadEqual(a, b *Gamepad) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Buttons) != len(b.Buttons) || len(a.Axes) != len(b.Axes) {
		return false
	}
	for i := range a.Buttons {
		if a.Buttons[i] != b.Buttons[i] {
			return false
		}
	}
	for i := range a.Axes {
		if a.Axes[i] != b.Axes[i] {
			return false
		}
	}
	return true
}
