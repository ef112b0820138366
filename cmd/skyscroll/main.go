// skyscroll is a side-scrolling arcade flyer for the terminal and the
// desktop.
//
// Usage:
//
//	skyscroll play             - Play in the terminal
//	skyscroll demo             - Watch the autopilot (attract mode)
//	skyscroll window           - Play in a desktop window
//	skyscroll modules          - List gameplay modules
//	skyscroll segments <x>...  - Print generated segment layouts
//	skyscroll verify           - Check segment generation against stored fingerprints
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//	--db <path>          - Fingerprint database (default: ~/.skyscroll/fingerprints.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyscroll/internal/app"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/registry"

	// Import modules to register them
	_ "github.com/vovakirdan/skyscroll/internal/modules/background"
	_ "github.com/vovakirdan/skyscroll/internal/modules/bigcoin"
	_ "github.com/vovakirdan/skyscroll/internal/modules/bird"
	_ "github.com/vovakirdan/skyscroll/internal/modules/fighterplane"
	_ "github.com/vovakirdan/skyscroll/internal/modules/flybutton"
	_ "github.com/vovakirdan/skyscroll/internal/modules/gameover"
	_ "github.com/vovakirdan/skyscroll/internal/modules/pausebutton"
	_ "github.com/vovakirdan/skyscroll/internal/modules/rules"
	_ "github.com/vovakirdan/skyscroll/internal/modules/score"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagLogLevel   string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyscroll",
	Short: "Skyscroll - fly through an endless scrolling sky",
	Long: `Skyscroll is a side-scrolling arcade game. Keep the bird in the air,
collect big coins and dodge the fighter planes.

Available commands:
  play      - Play in the terminal
  demo      - Watch the autopilot
  window    - Play in a desktop window
  modules   - List gameplay modules
  segments  - Print generated segment layouts
  verify    - Check segment generation against stored fingerprints

Examples:
  skyscroll play
  skyscroll play --difficulty hard
  skyscroll window --scale 1.5
  skyscroll segments 0 800 1600
  skyscroll verify --record`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyscroll/fingerprints.db", "Path to fingerprint database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(verifyCmd)
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the process logger. fallback receives logs when --log is
// not set; the returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	w, closer := fallback, func() {}
	if flagLog != "" {
		path := expandHome(flagLog)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyscroll",
		Level:           level,
	})
	return logger, closer, nil
}

// newGame loads config and attaches the enabled modules.
func newGame(logger *log.Logger, demo bool) (*app.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	for _, id := range cfg.Modules {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("unknown module %q in config (run 'skyscroll modules' to list them)", id)
		}
	}
	return app.New(app.Options{Config: cfg, Demo: demo, Logger: logger})
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
