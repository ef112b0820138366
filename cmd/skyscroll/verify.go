package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyscroll/internal/app"
	"github.com/vovakirdan/skyscroll/internal/storage"
)

var (
	flagRecord bool
	flagList   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check segment generation against stored fingerprints",
	Long: `Prepare a run of segments and compare each one with the fingerprint
recorded for the same module set. A mismatch means generation is no longer
deterministic for that start X, or a module changed its layout.

Record a baseline first with --record. Fingerprints are keyed by start X,
segment width, the enabled module IDs and a digest of the generation
settings (engine, coins, planes and difficulty after the preset is applied),
so each preset keeps its own baseline.

Examples:
  skyscroll verify --record
  skyscroll verify
  skyscroll verify --difficulty easy --record
  skyscroll verify --list
  skyscroll verify --from 40000 --count 100 --db ./fingerprints.db`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&flagRecord, "record", false, "Replace stored fingerprints with the current ones")
	verifyCmd.Flags().BoolVar(&flagList, "list", false, "List stored baselines for the enabled modules")
}

func runVerify(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, starts, err := surveyGame(logger, nil, flagVerifyCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening fingerprint database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	modules := app.ModuleKey(game.IDs())
	configKey, err := app.ConfigKey(game.Env.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagList {
		if err := listBaselines(store, modules, configKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading fingerprints: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width := game.Engine.Config().SegmentWidth
	reports := game.Survey(starts...)

	if flagRecord {
		if err := record(store, modules, configKey, reports); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording fingerprints: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Recorded %d segments for modules %s, config %s\n", len(reports), modules, configKey)
		return
	}

	var missing, mismatched int
	for _, r := range reports {
		want, ok, err := store.LookupFingerprint(r.StartX, width, modules, configKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading fingerprint: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			missing++
			continue
		}
		if want.Hash != r.Hash || want.Reservations != len(r.Reserved) || want.Objects != r.ObjectCount() {
			mismatched++
			fmt.Printf("  MISMATCH  x=%-7d fingerprint %016x want %016x  reserved %d want %d  objects %d want %d\n",
				r.StartX, r.Hash, want.Hash, len(r.Reserved), want.Reservations, r.ObjectCount(), want.Objects)
		}
	}

	fmt.Printf("Checked %d segments for modules %s, config %s: %d mismatched, %d not recorded\n",
		len(reports), modules, configKey, mismatched, missing)
	if missing == len(reports) {
		stored, err := store.Fingerprints(modules)
		if err == nil && len(stored) > 0 {
			fmt.Println("Baselines exist for these modules under a different config; see 'skyscroll verify --list'.")
		}
		fmt.Println("Run 'skyscroll verify --record' to store a baseline for this config.")
	}
	if mismatched > 0 {
		os.Exit(1)
	}
}

func record(store *storage.Store, modules, configKey string, reports []app.SegmentReport) error {
	if _, err := store.DeleteFingerprints(modules, configKey); err != nil {
		return err
	}
	now := time.Now()
	for _, r := range reports {
		err := store.SaveFingerprint(storage.Fingerprint{
			StartX:       r.StartX,
			Width:        r.EndX - r.StartX,
			Modules:      modules,
			Config:       configKey,
			Hash:         r.Hash,
			Reservations: len(r.Reserved),
			Objects:      r.ObjectCount(),
			RecordedAt:   now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// listBaselines prints one line per recorded config for the module set.
func listBaselines(store *storage.Store, modules, current string) error {
	all, err := store.Fingerprints(modules)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Printf("No baselines recorded for modules %s\n", modules)
		return nil
	}

	type baseline struct {
		config   string
		segments int
		from, to int
		recorded time.Time
	}
	var list []baseline
	for _, f := range all {
		if len(list) == 0 || list[len(list)-1].config != f.Config {
			list = append(list, baseline{config: f.Config, from: f.StartX})
		}
		b := &list[len(list)-1]
		b.segments++
		b.to = f.StartX + f.Width
		if f.RecordedAt.After(b.recorded) {
			b.recorded = f.RecordedAt
		}
	}

	fmt.Printf("Baselines for modules %s:\n", modules)
	for _, b := range list {
		mark := " "
		if b.config == current {
			mark = "*"
		}
		fmt.Printf(" %s config %s  %3d segments  x=[%d, %d)  recorded %s\n",
			mark, b.config, b.segments, b.from, b.to, b.recorded.Local().Format(time.DateTime))
	}
	return nil
}
