// Package storage provides SQLite-based persistence for segment layout
// fingerprints, the reference data for determinism checks.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Fingerprint is the recorded outcome of preparing one segment.
type Fingerprint struct {
	StartX       int
	Width        int
	Modules      string // Comma-separated module IDs that prepared the segment
	Config       string // Digest of the generation settings
	Hash         uint64
	Reservations int
	Objects      int
	RecordedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. Tables from
// before fingerprints were keyed by config are dropped, since their rows
// cannot be matched to a configuration.
func (s *Store) migrate() error {
	keyed, err := s.hasColumn("segment_fingerprints", "config")
	if err != nil {
		return err
	}
	if !keyed {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS segment_fingerprints"); err != nil {
			return err
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS segment_fingerprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_x INTEGER NOT NULL,
			width INTEGER NOT NULL,
			modules TEXT NOT NULL,
			config TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			reservations INTEGER NOT NULL DEFAULT 0,
			objects INTEGER NOT NULL DEFAULT 0,
			recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (start_x, width, modules, config)
		);
		CREATE INDEX IF NOT EXISTS idx_segment_fingerprints_modules ON segment_fingerprints(modules, config, start_x);
	`

	_, err = s.db.Exec(schema)
	return err
}

// hasColumn reports whether table has the named column. A missing table
// counts as having every column.
func (s *Store) hasColumn(table, column string) (bool, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found, seen := false, false
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		seen = true
		if name == column {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return found || !seen, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveFingerprint records a fingerprint, replacing any earlier record for the
// same segment, module set and config. A zero RecordedAt means now.
func (s *Store) SaveFingerprint(f Fingerprint) error {
	at := f.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO segment_fingerprints (start_x, width, modules, config, fingerprint, reservations, objects, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (start_x, width, modules, config) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			reservations = excluded.reservations,
			objects = excluded.objects,
			recorded_at = excluded.recorded_at`,
		f.StartX, f.Width, f.Modules, f.Config, formatHash(f.Hash), f.Reservations, f.Objects,
		at.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save fingerprint: %w", err)
	}
	return nil
}

// LookupFingerprint returns the stored fingerprint for a segment.
// The boolean is false when nothing was recorded.
func (s *Store) LookupFingerprint(startX, width int, modules, config string) (Fingerprint, bool, error) {
	row := s.db.QueryRow(
		`SELECT start_x, width, modules, config, fingerprint, reservations, objects, recorded_at
		 FROM segment_fingerprints
		 WHERE start_x = ? AND width = ? AND modules = ? AND config = ?`,
		startX, width, modules, config,
	)
	f, err := scanFingerprint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Fingerprint{}, false, nil
	}
	if err != nil {
		return Fingerprint{}, false, fmt.Errorf("storage: cannot query fingerprint: %w", err)
	}
	return f, true, nil
}

// Fingerprints lists every stored fingerprint for a module set, across all
// configs, ordered by config then start X.
func (s *Store) Fingerprints(modules string) ([]Fingerprint, error) {
	rows, err := s.db.Query(
		`SELECT start_x, width, modules, config, fingerprint, reservations, objects, recorded_at
		 FROM segment_fingerprints
		 WHERE modules = ?
		 ORDER BY config, start_x, width`,
		modules,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query fingerprints: %w", err)
	}
	defer rows.Close()

	var out []Fingerprint
	for rows.Next() {
		f, err := scanFingerprint(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteFingerprints removes every record for a module set and config and
// returns how many were deleted.
func (s *Store) DeleteFingerprints(modules, config string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM segment_fingerprints WHERE modules = ? AND config = ?", modules, config)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete fingerprints: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFingerprint(sc scanner) (Fingerprint, error) {
	var (
		f          Fingerprint
		hash       string
		recordedAt any
	)
	if err := sc.Scan(&f.StartX, &f.Width, &f.Modules, &f.Config, &hash, &f.Reservations, &f.Objects, &recordedAt); err != nil {
		return Fingerprint{}, err
	}
	h, err := strconv.ParseUint(hash, 16, 64)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("bad fingerprint %q: %w", hash, err)
	}
	f.Hash = h

	// Parse the datetime - handle both time.Time and string
	switch v := recordedAt.(type) {
	case time.Time:
		f.RecordedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			f.RecordedAt = parsed
		}
	}
	return f, nil
}

// timeLayout matches sqlite's CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// sqlite integers are signed, so hashes are stored as fixed-width hex.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
