// Package app assembles an engine with its configured gameplay modules.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/registry"
)

// Options configures New.
type Options struct {
	Config config.Config
	Demo   bool
	Logger *log.Logger
}

// Game is an engine with its modules attached, ready for Init.
type Game struct {
	Engine  *engine.Engine
	Env     *registry.Env
	Modules []registry.Module
}

// EngineConfig converts the YAML engine section into engine settings.
func EngineConfig(c config.EngineConfig, demo bool) engine.Config {
	return engine.Config{
		ViewportWidth:   c.ViewportWidth,
		ViewportHeight:  c.ViewportHeight,
		TickRate:        c.TickRate,
		FrameRate:       c.FrameRate,
		ScrollSpeed:     c.ScrollSpeed,
		SegmentWidth:    c.SegmentWidth,
		MaxCatchUpTicks: c.MaxCatchUpTicks,
		Demo:            demo,
	}
}

// New creates the engine and attaches the modules enabled in the config.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := engine.New(EngineConfig(opts.Config.Engine, opts.Demo), engine.WithLogger(logger))
	env := registry.NewEnv(e, opts.Config, logger)

	modules, err := registry.Attach(env, opts.Config.Modules...)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return &Game{Engine: e, Env: env, Modules: modules}, nil
}

// IDs lists the attached module IDs in attach order.
func (g *Game) IDs() []string {
	ids := make([]string, len(g.Modules))
	for i, m := range g.Modules {
		ids[i] = m.ID
	}
	return ids
}
