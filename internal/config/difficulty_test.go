package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.InitialLevel = 0.2
	cfg.Progression.MaxAt = 1000

	tests := []struct {
		name     string
		progress string
		enabled  bool
		distance int
		ticks    uint64
		want     float64
	}{
		{"start", "distance", true, 0, 0, 0.2},
		{"halfway", "distance", true, 500, 0, 0.6},
		{"capped", "distance", true, 5000, 0, 1.0},
		{"time based", "time", true, 0, 250, 0.4},
		{"none", "none", true, 900, 900, 0.2},
		{"disabled", "distance", false, 900, 0, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Enabled = tt.enabled
			c.Progression.Type = tt.progress
			d := NewDifficultyManager(c)
			if got := d.Level(tt.distance, tt.ticks); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "distance", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, ChanceBonus: 40},
	})

	if got := d.Speed(120, 0, 0); got != 120 {
		t.Errorf("Speed at start = %v", got)
	}
	if got := d.Speed(120, 100, 0); got != 240 {
		t.Errorf("Speed at max = %v", got)
	}
	if got := d.Chance(30, 50, 0); got != 50 {
		t.Errorf("Chance halfway = %d", got)
	}
	if got := d.Chance(80, 100, 0); got != 100 {
		t.Errorf("Chance must cap at 100, got %d", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 2})
	if got := fixed.Level(100, 0); got != 1 {
		t.Errorf("initial level must clamp to 1, got %v", got)
	}
}
