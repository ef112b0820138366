package config

import (
	_ "embed"
)

//go:embed defaults/skyscroll.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML source
// can be parsed. It mirrors defaults/skyscroll.yaml.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			ViewportWidth:   800,
			ViewportHeight:  450,
			TickRate:        200,
			FrameRate:       60,
			ScrollSpeed:     200,
			SegmentWidth:    800,
			MaxCatchUpTicks: 40,
		},
		Bird: BirdConfig{
			ViewportX: 50,
			Size:      40,
			Gravity:   0.0002,
			Thrust:    0.0006,
		},
		Coins: CoinConfig{
			Radius:     20,
			Score:      1000,
			PerSegment: 1,
			Attempts:   4,
		},
		Planes: PlaneConfig{
			Width:  120,
			Height: 80,
			Speed:  120,
			Chance: 30,
		},
		UI: UIConfig{
			FlyButton:     ButtonConfig{Width: 150, Height: 50, Margin: 20},
			PauseButton:   ButtonConfig{Width: 40, Height: 40, Margin: 10},
			GrassHeight:   20,
			GameOverSpeed: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 40000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ChanceBonus:     40,
			},
		},
	}
}
