package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyscroll/internal/app"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
)

// footerLines is the number of terminal rows below the canvas.
const footerLines = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// ErrTerminalTooSmall is returned when the terminal has no room for the
// canvas below the footer.
var ErrTerminalTooSmall = errors.New("tui: terminal too small")

// loadedMsg reports that every Init loader has finished.
type loadedMsg struct{ err error }

// Model is the Bubble Tea model hosting one engine.
type Model struct {
	game     *app.Game
	engine   *engine.Engine
	score    contract.Score
	clock    engine.Clock
	pacer    *engine.Pacer
	barrier  *engine.Barrier
	config   core.RuntimeConfig
	canvas   *image.RGBA
	renderer *Renderer
	input    *heldInput
	last     core.InputState
	keys     KeyMap
	help     help.Model
	loaded   bool
	err      error
	quitting bool
}

// NewModel creates the model and begins engine initialization. Loaders run
// in the background until the program starts.
func NewModel(ctx context.Context, game *app.Game, cfg core.RuntimeConfig, clock engine.Clock) (*Model, error) {
	if cfg.ScreenW < 1 || cfg.ScreenH <= footerLines {
		return nil, fmt.Errorf("%w: %dx%d", ErrTerminalTooSmall, cfg.ScreenW, cfg.ScreenH)
	}
	if clock == nil {
		clock = engine.SystemClock{}
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = game.Engine.Config().FrameRate
	}
	barrier, err := game.Engine.BeginInit(ctx)
	if err != nil {
		return nil, err
	}
	ec := game.Engine.Config()
	m := &Model{
		game:     game,
		engine:   game.Engine,
		clock:    clock,
		pacer:    engine.NewPacer(clock),
		barrier:  barrier,
		config:   cfg,
		canvas:   core.NewCanvas(ec.ViewportWidth, ec.ViewportHeight),
		renderer: NewRenderer(cfg.ScreenW, cfg.ScreenH-footerLines),
		input:    newHeldInput(cfg.KeyHold),
		last:     core.NewInputState(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	if s, err := registry.Lookup[contract.Score](game.Env); err == nil {
		m.score = s
	}
	// paint whatever is ready before the loaders finish
	m.engine.Draw(m.canvas)
	return m, nil
}

// Init waits for the loaders and starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitLoaded, frameCmd(m.frameInterval()))
}

func (m *Model) waitLoaded() tea.Msg {
	return loadedMsg{err: m.barrier.Wait()}
}

func (m *Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.config.FrameRate)
}

// Err returns the initialization error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height-footerLines)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}
	return m, nil
}

func (m *Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = fmt.Errorf("tui: init: %w", msg.err)
		m.quitting = true
		return m, tea.Quit
	}
	if err := m.engine.Start(); err != nil {
		m.err = fmt.Errorf("tui: start: %w", err)
		m.quitting = true
		return m, tea.Quit
	}
	m.loaded = true
	m.pacer.Elapsed()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if code, ok := KeyCode(msg); ok {
		m.input.press(code, m.clock.Now())
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		p := m.renderer.CellToPixel(m.canvas.Bounds(), msg.X, msg.Y)
		m.input.touchAt(core.Point{X: p.X, Y: p.Y})
	case tea.MouseActionRelease:
		m.input.release()
	}
	return m, nil
}

// handleFrame publishes changed input, advances the engine by the wall time
// since the previous frame and draws it. View only renders the canvas, since
// Bubble Tea calls it after every message.
func (m *Model) handleFrame() (tea.Model, tea.Cmd) {
	next := frameCmd(m.frameInterval())
	if m.loaded {
		in := m.input.state(m.clock.Now())
		if !in.Equal(m.last) {
			m.last = in
			m.engine.Input(in.Clone())
		}
		m.engine.Advance(m.pacer.Elapsed())
	}
	m.engine.Draw(m.canvas)
	return m, next
}

// View renders the current frame to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	var b strings.Builder
	b.WriteString(m.renderer.Render(m.canvas))
	b.WriteByte('\n')
	b.WriteString(m.status())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) status() string {
	st := m.engine.State()
	parts := []string{
		st.Phase().String(),
		fmt.Sprintf("%d px", st.ViewportX()),
	}
	if m.score != nil {
		parts = append(parts, fmt.Sprintf("score %d", m.score.Total()))
		if best := m.score.Best(); best > 0 {
			parts = append(parts, fmt.Sprintf("best %d", best))
		}
	}
	return titleStyle.Render("SKYSCROLL") + "  " + statusStyle.Render(strings.Join(parts, " | "))
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(ctx context.Context, game *app.Game, cfg core.RuntimeConfig) error {
	model, err := NewModel(ctx, game, cfg, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
