package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyscroll.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("embedded defaults drifted from DefaultConfig:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("Load without files should return defaults, got %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	local := filepath.Join(work, "configs", configFile)
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("coins:\n  score: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Coins.Score != 10 {
		t.Fatalf("local config ignored, score = %d", cfg.Coins.Score)
	}

	user := filepath.Join(home, ".skyscroll", "configs", configFile)
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("coins:\n  score: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Coins.Score != 20 {
		t.Fatalf("user config should win over local, score = %d", cfg.Coins.Score)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "partial override keeps defaults",
			content: "engine:\n  tick_rate: 120\nplanes:\n  chance: 50\nmodules: [background, bird]\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Engine.TickRate != 120 || cfg.Planes.Chance != 50 {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if cfg.Engine.ViewportWidth != 800 || cfg.Bird.Size != 40 {
					t.Errorf("defaults lost: %+v", cfg)
				}
				if !cfg.Enabled("bird") || cfg.Enabled("fighterplane") {
					t.Errorf("module filter wrong: %v", cfg.Modules)
				}
			},
		},
		{
			name:    "malformed yaml",
			content: "engine: [unterminated",
			wantErr: true,
		},
		{
			name:    "invalid value",
			content: "engine:\n  tick_rate: 0\n",
			wantErr: true,
		},
		{
			name:    "chance out of range",
			content: "planes:\n  chance: 140\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset must disable progression")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Planes.Chance != 45 {
		t.Errorf("hard preset chance = %d", cfg.Planes.Chance)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Coins.PerSegment != 2 || cfg.Planes.Speed != 90 {
		t.Errorf("easy preset = coins %d, speed %v", cfg.Coins.PerSegment, cfg.Planes.Speed)
	}
}
