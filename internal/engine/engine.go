package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/world"
)

var (
	// ErrAlreadyStarted is returned when initialization is requested twice.
	ErrAlreadyStarted = errors.New("engine: already started")
	// ErrNotLoaded is returned by Start before BeginInit.
	ErrNotLoaded = errors.New("engine: not loaded")
)

// Config holds the engine timing and world geometry.
type Config struct {
	ViewportWidth   int
	ViewportHeight  int
	TickRate        int     // simulation ticks per second
	FrameRate       int     // frames per second for Run
	ScrollSpeed     float64 // world pixels per second
	SegmentWidth    int
	MaxCatchUpTicks int
	Demo            bool
}

// DefaultConfig returns the stock 800x450 world ticking at 200 Hz.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:   800,
		ViewportHeight:  450,
		TickRate:        200,
		FrameRate:       60,
		ScrollSpeed:     200,
		SegmentWidth:    800,
		MaxCatchUpTicks: 40,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = def.ViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = def.ViewportHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.FrameRate <= 0 {
		c.FrameRate = def.FrameRate
	}
	if c.SegmentWidth <= 0 {
		c.SegmentWidth = c.ViewportWidth
	}
	if c.MaxCatchUpTicks <= 0 {
		c.MaxCatchUpTicks = def.MaxCatchUpTicks
	}
	return c
}

// TickInterval is the fixed simulation step.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// FrameInterval is the render period used by Run.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine and its bus.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the game state, the object registry and the event bus, and
// drives ticks and frames.
type Engine struct {
	cfg     Config
	logger  *log.Logger
	bus     *Bus
	objects *Objects
	state   State
	barrier *Barrier

	accumulator time.Duration
}

// New creates an engine in the Uninitialized phase. Its own lifecycle
// handlers are registered first, so they run before any module handler.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg.withDefaults(),
		logger:  log.New(io.Discard),
		objects: NewObjects(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.bus = NewBus(e.logger)

	On(e.bus, func(Paused) {
		if e.state.phase == PhasePlaying {
			e.setPhase(PhasePaused)
		}
	})
	On(e.bus, func(Unpaused) {
		if e.state.phase == PhasePaused {
			e.setPhase(PhasePlaying)
		}
	})
	On(e.bus, func(GameOver) {
		if e.state.phase == PhasePlaying {
			e.setPhase(PhaseGameOver)
		}
	})
	On(e.bus, func(Reset) { e.reset() })
	return e
}

func (e *Engine) Bus() *Bus           { return e.bus }
func (e *Engine) Objects() *Objects   { return e.objects }
func (e *Engine) State() StateView    { return &e.state }
func (e *Engine) Config() Config      { return e.cfg }
func (e *Engine) Logger() *log.Logger { return e.logger }

func (e *Engine) activePhase() Phase {
	if e.cfg.Demo {
		return PhaseDemoing
	}
	return PhasePlaying
}

// BeginInit enters Loading and emits Init. Loaders registered by modules run
// in the background; join them with the returned barrier.
func (e *Engine) BeginInit(ctx context.Context) (*Barrier, error) {
	if e.state.phase != PhaseUninitialized {
		return nil, ErrAlreadyStarted
	}
	e.barrier = newBarrier(ctx, e.logger)
	e.setPhase(PhaseLoading)
	e.bus.Emit(Init{barrier: e.barrier})
	return e.barrier, nil
}

// Start primes the first segments and enters the active phase. Call it after
// the barrier returned by BeginInit has been waited on.
func (e *Engine) Start() error {
	switch e.state.phase {
	case PhaseUninitialized:
		return ErrNotLoaded
	case PhaseLoading:
	default:
		return ErrAlreadyStarted
	}
	if failed := e.barrier.Failed(); len(failed) > 0 {
		e.logger.Warn("starting without failed loaders", "failed", failed)
	}
	e.accumulator = 0
	e.setPhase(e.activePhase())
	e.generate()
	e.logger.Info("engine started",
		"phase", e.state.phase,
		"loaders", len(e.barrier.Loaders()),
		"viewport", fmt.Sprintf("%dx%d", e.cfg.ViewportWidth, e.cfg.ViewportHeight),
		"tickRate", e.cfg.TickRate,
	)
	return nil
}

// Init runs BeginInit, waits for every loader, then starts the engine.
func (e *Engine) Init(ctx context.Context) error {
	barrier, err := e.BeginInit(ctx)
	if err != nil {
		return err
	}
	if err := barrier.Wait(); err != nil {
		return fmt.Errorf("engine: init: %w", err)
	}
	return e.Start()
}

// Tick advances the simulation by one fixed step. It does nothing outside an
// active phase and reports whether a step ran.
func (e *Engine) Tick() bool {
	if !e.state.phase.Active() {
		return false
	}
	dt := e.cfg.TickInterval()

	e.state.viewportX += e.cfg.ScrollSpeed * dt.Seconds()
	e.state.ticks++

	e.generate()

	for obj := range e.objects.All() {
		if t, ok := obj.(Ticker); ok {
			t.Tick(dt)
		}
	}

	e.sweep()
	return true
}

// Advance feeds elapsed host time into the fixed-step accumulator and runs
// the whole ticks it covers. Time that accrues while inactive is dropped.
func (e *Engine) Advance(elapsed time.Duration) int {
	if !e.state.phase.Active() {
		e.accumulator = 0
		return 0
	}
	e.accumulator += elapsed
	dt := e.cfg.TickInterval()
	n := 0
	for e.accumulator >= dt && n < e.cfg.MaxCatchUpTicks {
		e.Tick()
		e.accumulator -= dt
		n++
		// A Reset during the tick already zeroed the accumulator.
		if e.accumulator < 0 {
			e.accumulator = 0
		}
		if !e.state.phase.Active() {
			e.accumulator = 0
			return n
		}
	}
	if e.accumulator >= dt {
		e.logger.Debug("dropping backlog", "behind", e.accumulator)
		e.accumulator = 0
	}
	return n
}

// Draw renders one frame. It never ticks and never writes state.
func (e *Engine) Draw(dst core.Surface) {
	vx := e.state.ViewportX()
	e.bus.Emit(DrawBackground{Surface: dst, ViewportX: vx})
	for obj := range e.objects.All() {
		if d, ok := obj.(Drawer); ok {
			d.Draw(dst, vx)
		}
	}
	e.bus.Emit(DrawStaticUI{Surface: dst})
}

// Input publishes the host's current device state.
func (e *Engine) Input(in core.InputState) {
	e.bus.Emit(InputChanged{Input: in})
}

// PrepareSegment emits PrepareSegment for a segment starting at startX and
// returns the builder once every handler has run. It does not touch
// GeneratedUpTo; the tick loop uses it for read-ahead, tools use it to
// inspect layouts.
func (e *Engine) PrepareSegment(startX int) *world.SegmentBuilder {
	b := world.NewSegmentBuilder(startX, startX+e.cfg.SegmentWidth)
	e.bus.Emit(PrepareSegment{StartX: b.StartX, EndX: b.EndX, Builder: b})
	return b
}

// Run drives the engine headlessly: every frame interval it advances by the
// time elapsed on clock and draws into surface when one is given.
func (e *Engine) Run(ctx context.Context, clock Clock, surface core.Surface) error {
	pacer := NewPacer(clock)
	pacer.Elapsed()
	ticker := time.NewTicker(e.cfg.FrameInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.Advance(pacer.Elapsed())
			if surface != nil {
				e.Draw(surface)
			}
		}
	}
}

// generate prepares segments until the read-ahead covers one segment past
// the right edge of the viewport.
func (e *Engine) generate() {
	w := e.cfg.SegmentWidth
	for e.state.viewportX+float64(e.cfg.ViewportWidth) > float64(e.state.generatedUpTo-w) {
		b := e.PrepareSegment(e.state.generatedUpTo)
		e.logger.Debug("segment prepared", "start", b.StartX, "reserved", len(b.Reserved()))
		e.state.generatedUpTo += b.Width()
	}
}

func (e *Engine) sweep() {
	for obj := range e.objects.All() {
		ex, ok := obj.(Expiring)
		if !ok {
			continue
		}
		if float64(ex.AutoRemoveAt()) <= e.state.viewportX {
			e.objects.Delete(obj)
		}
	}
}

func (e *Engine) reset() {
	switch e.state.phase {
	case PhaseUninitialized, PhaseLoading:
		e.logger.Warn("reset ignored before start", "phase", e.state.phase)
		return
	}
	removed := e.objects.clear(isPersistent)
	e.state.viewportX = 0
	e.state.generatedUpTo = 0
	e.state.ticks = 0
	e.accumulator = 0
	e.logger.Debug("reset", "removed", removed, "kept", e.objects.Len())
	e.setPhase(e.activePhase())
	e.generate()
}

func (e *Engine) setPhase(p Phase) {
	if e.state.phase == p {
		return
	}
	from := e.state.phase
	e.state.phase = p
	e.logger.Debug("phase changed", "from", from, "to", p)
	e.bus.Emit(StateChanged{From: from, To: p})
}
