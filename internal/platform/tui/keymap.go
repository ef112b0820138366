package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyscroll/internal/core"
)

// KeyMap holds the host-level bindings shown in the help footer. Gameplay
// keys are forwarded to the engine as key codes, the bindings only document
// them.
type KeyMap struct {
	Fly   key.Binding
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fly, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fly, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fly: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/up", "fly"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyCode translates a Bubble Tea key message into the engine's key code
// vocabulary. Single letters map to "Key<LETTER>".
func KeyCode(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return core.KeySpace, true
	case tea.KeyUp:
		return core.KeyArrowUp, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return "", false
		}
		r := msg.Runes[0]
		switch {
		case r == ' ':
			return core.KeySpace, true
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return "Key" + strings.ToUpper(string(r)), true
		}
	}
	return "", false
}
