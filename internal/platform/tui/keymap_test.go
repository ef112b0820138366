package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyscroll/internal/core"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyArrowUp, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"lower p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.KeyP, true},
		{"upper W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, core.KeyW, true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, "", false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, "", false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCode(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyCode = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	start := time.Unix(0, 0)
	h := newHeldInput(150 * time.Millisecond)
	h.press(core.KeySpace, start)

	if !h.state(start.Add(100 * time.Millisecond)).KeyDown(core.KeySpace) {
		t.Fatal("key released before hold elapsed")
	}
	// auto-repeat refreshes the hold
	h.press(core.KeySpace, start.Add(100*time.Millisecond))
	if !h.state(start.Add(200 * time.Millisecond)).KeyDown(core.KeySpace) {
		t.Fatal("repeat did not extend hold")
	}
	if h.state(start.Add(250 * time.Millisecond)).KeyDown(core.KeySpace) {
		t.Fatal("key still held after hold elapsed")
	}
}

func TestHeldTouch(t *testing.T) {
	h := newHeldInput(time.Second)
	h.touchAt(core.Point{X: 3, Y: 4})
	in := h.state(time.Unix(0, 0))
	if len(in.Touches) != 1 || in.Touches[0] != (core.Point{X: 3, Y: 4}) {
		t.Fatalf("touches = %v", in.Touches)
	}
	h.release()
	if got := h.state(time.Unix(0, 0)).Touches; len(got) != 0 {
		t.Errorf("touches after release = %v", got)
	}
}
