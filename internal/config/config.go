// Package config provides YAML-based configuration loading and difficulty
// management for skyscroll.
package config

import (
	"fmt"
	"slices"
)

// Config is the complete game configuration.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Bird       BirdConfig       `yaml:"bird"`
	Coins      CoinConfig       `yaml:"coins"`
	Planes     PlaneConfig      `yaml:"planes"`
	UI         UIConfig         `yaml:"ui"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Modules    []string         `yaml:"modules"` // Module IDs to attach; empty attaches all
}

// EngineConfig defines world geometry and timing.
type EngineConfig struct {
	ViewportWidth   int     `yaml:"viewport_width"`
	ViewportHeight  int     `yaml:"viewport_height"`
	TickRate        int     `yaml:"tick_rate"`    // Simulation ticks per second
	FrameRate       int     `yaml:"frame_rate"`   // Rendered frames per second
	ScrollSpeed     float64 `yaml:"scroll_speed"` // World pixels per second
	SegmentWidth    int     `yaml:"segment_width"`
	MaxCatchUpTicks int     `yaml:"max_catch_up_ticks"`
}

// BirdConfig defines the avatar physics. Accelerations are in px/ms².
type BirdConfig struct {
	ViewportX int     `yaml:"viewport_x"` // Fixed offset from the viewport's left edge
	Size      int     `yaml:"size"`
	Gravity   float64 `yaml:"gravity"`
	Thrust    float64 `yaml:"thrust"`
}

// CoinConfig defines big coin placement and value.
type CoinConfig struct {
	Radius     int `yaml:"radius"`
	Score      int `yaml:"score"`
	PerSegment int `yaml:"per_segment"`
	Attempts   int `yaml:"attempts"` // Candidate spots tried per coin
}

// PlaneConfig defines the fighter plane obstacle.
type PlaneConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Pixels per second, moving left
	Chance int     `yaml:"chance"` // Percent per segment at difficulty 0
	Sprite string  `yaml:"sprite"` // Optional mask or PNG file replacing the built-in sprite
	Flip   bool    `yaml:"flip"`   // Mirror a custom sprite that faces right
}

// UIConfig defines widget geometry.
type UIConfig struct {
	FlyButton     ButtonConfig `yaml:"fly_button"`
	PauseButton   ButtonConfig `yaml:"pause_button"`
	GrassHeight   int          `yaml:"grass_height"`
	GameOverSpeed int          `yaml:"game_over_speed"` // Pixels per frame
}

// ButtonConfig places a button. Margin is measured from the nearest corner.
type ButtonConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pixels or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to plane speed at max difficulty
	ChanceBonus     int     `yaml:"chance_bonus"`     // Percent added to plane chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Enabled reports whether the module with the given ID should be attached.
func (c Config) Enabled(id string) bool {
	if len(c.Modules) == 0 {
		return true
	}
	return slices.Contains(c.Modules, id)
}
