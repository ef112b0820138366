package engine

import "math"

// Phase is the coarse lifecycle state of a run.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseDemoing
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	case PhaseDemoing:
		return "demoing"
	default:
		return "unknown"
	}
}

// Active reports whether the simulation advances in this phase.
func (p Phase) Active() bool {
	return p == PhasePlaying || p == PhaseDemoing
}

// StateView is the read-only face of the engine state handed to modules.
type StateView interface {
	ViewportX() int
	ViewportXF() float64
	Phase() Phase
	Ticks() uint64
	GeneratedUpTo() int
}

// State is the engine-owned game state. Only the engine writes it.
type State struct {
	viewportX     float64
	phase         Phase
	ticks         uint64
	generatedUpTo int
}

var _ StateView = (*State)(nil)

// ViewportX is the left edge of the viewport in whole world pixels.
func (s *State) ViewportX() int { return int(math.Floor(s.viewportX)) }

// ViewportXF is the exact left edge of the viewport.
func (s *State) ViewportXF() float64 { return s.viewportX }

func (s *State) Phase() Phase { return s.phase }

// Ticks counts simulation ticks since the last Start or Reset.
func (s *State) Ticks() uint64 { return s.ticks }

// GeneratedUpTo is the world X up to which segments have been prepared.
func (s *State) GeneratedUpTo() int { return s.generatedUpTo }
