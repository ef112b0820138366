package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "skyscroll.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.skyscroll/configs/skyscroll.yaml -> ./configs/skyscroll.yaml -> embedded default
//
// Every source is decoded on top of DefaultConfig, so a file only needs the
// keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Engine.ViewportWidth <= 0 || c.Engine.ViewportHeight <= 0:
		return fmt.Errorf("config: viewport must be positive, got %dx%d", c.Engine.ViewportWidth, c.Engine.ViewportHeight)
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Engine.TickRate)
	case c.Engine.SegmentWidth <= 0:
		return fmt.Errorf("config: segment_width must be positive, got %d", c.Engine.SegmentWidth)
	case c.Bird.Size <= 0 || c.Bird.Size >= c.Engine.ViewportHeight:
		return fmt.Errorf("config: bird size %d does not fit the viewport", c.Bird.Size)
	case c.Planes.Chance < 0 || c.Planes.Chance > 100:
		return fmt.Errorf("config: plane chance must be a percentage, got %d", c.Planes.Chance)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyscroll", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Coins.PerSegment = 2
		cfg.Planes.Speed *= 0.75
	case DifficultyHard:
		cfg.Bird.Gravity *= 1.25
		cfg.Planes.Chance = min(100, cfg.Planes.Chance+15)
	}
}
