package app

import (
	"context"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
)

// SegmentReport describes what the attached modules generated for one
// segment.
type SegmentReport struct {
	StartX   int
	EndX     int
	Reserved []core.Rect
	Hash     uint64
	Objects  map[string]int // objects added during PrepareSegment, by kind
}

// ObjectCount returns the total number of objects the segment spawned.
func (r SegmentReport) ObjectCount() int {
	n := 0
	for _, c := range r.Objects {
		n += c
	}
	return n
}

// Load runs engine Init up to the barrier without starting play, so
// segments can be prepared with every asset available.
func (g *Game) Load(ctx context.Context) error {
	barrier, err := g.Engine.BeginInit(ctx)
	if err != nil {
		return err
	}
	if err := barrier.Wait(); err != nil {
		return fmt.Errorf("app: load: %w", err)
	}
	return nil
}

// Survey prepares a segment at each start X and reports what was placed.
func (g *Game) Survey(starts ...int) []SegmentReport {
	objects := g.Engine.Objects()
	reports := make([]SegmentReport, 0, len(starts))
	for _, start := range starts {
		before := make(map[engine.GameObject]bool, objects.Len())
		for obj := range objects.All() {
			before[obj] = true
		}

		b := g.Engine.PrepareSegment(start)

		spawned := make(map[string]int)
		for obj := range objects.All() {
			if !before[obj] {
				spawned[obj.Kind()]++
			}
		}
		reports = append(reports, SegmentReport{
			StartX:   b.StartX,
			EndX:     b.EndX,
			Reserved: b.Reserved(),
			Hash:     b.Fingerprint(),
			Objects:  spawned,
		})
	}
	return reports
}

// ModuleKey identifies a module set independently of configuration order.
func ModuleKey(ids []string) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// generationConfig holds the sections that decide what a segment contains.
type generationConfig struct {
	Engine     config.EngineConfig     `yaml:"engine"`
	Coins      config.CoinConfig       `yaml:"coins"`
	Planes     config.PlaneConfig      `yaml:"planes"`
	Difficulty config.DifficultyConfig `yaml:"difficulty"`
}

// ConfigKey digests the configuration sections that affect generation, so
// fingerprints recorded under one preset are not compared with another.
// Presets are applied to cfg before this is called.
func ConfigKey(cfg config.Config) (string, error) {
	data, err := yaml.Marshal(generationConfig{
		Engine:     cfg.Engine,
		Coins:      cfg.Coins,
		Planes:     cfg.Planes,
		Difficulty: cfg.Difficulty,
	})
	if err != nil {
		return "", fmt.Errorf("app: config key: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
