// Package rules decides what a collision means: the end of a run while
// playing, an immediate restart while the demo is running.
package rules

import (
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/registry"
)

// ID is the module identifier.
const ID = "rules"

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Game rules",
		Order:  20,
		Attach: attach,
	})
}

func attach(env *registry.Env) error {
	bus := env.Bus()
	state := env.Engine.State()

	engine.On(bus, func(ev engine.CollisionDetected) {
		kind := "bounds"
		if ev.Object != nil {
			kind = ev.Object.Kind()
		}
		switch state.Phase() {
		case engine.PhasePlaying:
			env.Logger.Info("run over", "hit", kind, "distance", state.ViewportX())
			bus.Emit(engine.GameOver{})
		case engine.PhaseDemoing:
			env.Logger.Debug("demo crashed, restarting", "hit", kind)
			bus.Emit(engine.Reset{})
		}
	})
	return nil
}
