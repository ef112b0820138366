package engine

import (
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/world"
)

// Type tags an event variant.
type Type uint8

const (
	TypeInit Type = iota
	TypePrepareSegment
	TypeCollisionDetected
	TypeInputChanged
	TypeGameOver
	TypeStateChanged
	TypePaused
	TypeUnpaused
	TypeScoreChanged
	TypeReset
	TypeDrawBackground
	TypeDrawStaticUI
)

// String returns the event name used in logs.
func (t Type) String() string {
	switch t {
	case TypeInit:
		return "init"
	case TypePrepareSegment:
		return "prepareSegment"
	case TypeCollisionDetected:
		return "collisionDetected"
	case TypeInputChanged:
		return "inputChanged"
	case TypeGameOver:
		return "gameOver"
	case TypeStateChanged:
		return "stateChanged"
	case TypePaused:
		return "paused"
	case TypeUnpaused:
		return "unpaused"
	case TypeScoreChanged:
		return "scoreChanged"
	case TypeReset:
		return "reset"
	case TypeDrawBackground:
		return "drawBackground"
	case TypeDrawStaticUI:
		return "drawStaticUI"
	default:
		return "unknown"
	}
}

// Event is the closed set of messages carried by the bus.
// Only the variants declared in this file implement it.
type Event interface {
	Type() Type
	event()
}

// Init lets modules register asynchronous setup. The engine waits for every
// registered loader before the first tick.
type Init struct {
	barrier *Barrier
}

func (Init) Type() Type { return TypeInit }
func (Init) event()     {}

// WaitFor registers an essential loader. Its failure aborts startup.
func (e Init) WaitFor(name string, fn LoadFunc) {
	e.barrier.WaitFor(name, fn)
}

// WaitForOptional registers a loader whose failure is logged and ignored.
// The module is expected to stay inert when its assets never arrive.
func (e Init) WaitForOptional(name string, fn LoadFunc) {
	e.barrier.WaitForOptional(name, fn)
}

// PrepareSegment asks modules to populate [StartX, EndX) of the world.
type PrepareSegment struct {
	StartX  int
	EndX    int
	Builder *world.SegmentBuilder
}

func (PrepareSegment) Type() Type { return TypePrepareSegment }
func (PrepareSegment) event()     {}

// CollisionDetected reports that the avatar hit something. Object is nil for
// world bounds (ground, ceiling).
type CollisionDetected struct {
	Object GameObject
}

func (CollisionDetected) Type() Type { return TypeCollisionDetected }
func (CollisionDetected) event()     {}

// InputChanged carries the normalized device state after any raw change.
type InputChanged struct {
	Input core.InputState
}

func (InputChanged) Type() Type { return TypeInputChanged }
func (InputChanged) event()     {}

// TouchesInArea lists the touches inside the given surface rectangle.
func (e InputChanged) TouchesInArea(x, y, w, h int) []core.Point {
	return e.Input.TouchesInArea(x, y, w, h)
}

// GameOver asks the engine to end the current run.
type GameOver struct{}

func (GameOver) Type() Type { return TypeGameOver }
func (GameOver) event()     {}

// StateChanged is emitted by the engine after every phase transition.
type StateChanged struct {
	From Phase
	To   Phase
}

func (StateChanged) Type() Type { return TypeStateChanged }
func (StateChanged) event()     {}

// Paused asks the engine to freeze simulation.
type Paused struct{}

func (Paused) Type() Type { return TypePaused }
func (Paused) event()     {}

// Unpaused asks the engine to resume simulation.
type Unpaused struct{}

func (Unpaused) Type() Type { return TypeUnpaused }
func (Unpaused) event()     {}

// ScoreChanged carries the points awarded by a single pickup.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) Type() Type { return TypeScoreChanged }
func (ScoreChanged) event()     {}

// Reset restarts the run: the engine clears non-persistent objects, rewinds
// the viewport and world generation, then modules reset their own state.
type Reset struct{}

func (Reset) Type() Type { return TypeReset }
func (Reset) event()     {}

// DrawBackground is emitted every frame before objects are drawn.
type DrawBackground struct {
	Surface   core.Surface
	ViewportX int
}

func (DrawBackground) Type() Type { return TypeDrawBackground }
func (DrawBackground) event()     {}

// DrawStaticUI is emitted every frame after objects are drawn. Consumers paint
// in viewport coordinates.
type DrawStaticUI struct {
	Surface core.Surface
}

func (DrawStaticUI) Type() Type { return TypeDrawStaticUI }
func (DrawStaticUI) event()     {}
