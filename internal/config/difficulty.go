package config

import "github.com/vovakirdan/skyscroll/internal/core"

// DifficultyManager calculates dynamic obstacle parameters from the distance
// travelled or the ticks elapsed in the current run.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(distance int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "distance":
		progress = float64(distance) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, distance int, ticks uint64) float64 {
	level := d.Level(distance, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Chance raises a base spawn percentage by up to chanceBonus, capped at 100.
func (d *DifficultyManager) Chance(basePercent int, distance int, ticks uint64) int {
	level := d.Level(distance, ticks)
	result := basePercent + int(level*float64(d.cfg.Scaling.ChanceBonus))
	return core.Clamp(result, 0, 100)
}

