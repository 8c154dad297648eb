package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("archive: run not found")

// Record is one archived run.
type Record struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Cities     int       `json:"cities"`
	Kernel     string    `json:"kernel"`
	Schedule   string    `json:"schedule"`
	Seed       int64     `json:"seed"`
	Iterations int       `json:"iterations"`
	Accepted   int       `json:"accepted"`
	Reason     string    `json:"reason"`
	BestCost   float64   `json:"best_cost"`
	Route      []int     `json:"route"`
}

// Store is a SQLite-backed run archive. Safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open opens (creating if needed) the archive at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("archive: creating directory: %w", err)
	}
	logger.DebugContext(ctx, "opening run archive", slog.String("path", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("archive: %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, path: path, log: logger}
	if err = s.initSchema(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("archive: schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema(ctx context.Context) error {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == nil {
		if version > schemaVersion {
			return fmt.Errorf("database schema %d is newer than supported %d", version, schemaVersion)
		}

		return nil
	}

	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		cities INTEGER NOT NULL,
		kernel TEXT NOT NULL,
		schedule TEXT NOT NULL,
		seed INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		reason TEXT NOT NULL,
		best_cost REAL NOT NULL,
		route TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err = s.db.ExecContext(ctx, schema)

	return err
}

// Save stores rec, assigning an ID and timestamp when unset, and returns the
// stored record.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	route, err := json.Marshal(rec.Route)
	if err != nil {
		return Record{}, fmt.Errorf("archive: encoding route: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, cities, kernel, schedule, seed, iterations, accepted, reason, best_cost, route)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UnixNano(), rec.Cities, rec.Kernel, rec.Schedule, rec.Seed,
		rec.Iterations, rec.Accepted, rec.Reason, rec.BestCost, string(route),
	)
	if err != nil {
		return Record{}, fmt.Errorf("archive: saving run %s: %w", rec.ID, err)
	}
	s.log.DebugContext(ctx, "archived run", slog.String("id", rec.ID), slog.Float64("best_cost", rec.BestCost))

	return rec, nil
}

const selectColumns = `id, created_at, cities, kernel, schedule, seed, iterations, accepted, reason, best_cost, route`

// List returns up to limit records, newest first. limit ≤ 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("archive: listing runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: listing runs: %w", err)
	}

	return out, nil
}

// Get returns the record with the given ID or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM runs WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("archive: run %s: %w", id, ErrNotFound)
	}

	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec     Record
		created int64
		route   string
	)
	err := sc.Scan(&rec.ID, &created, &rec.Cities, &rec.Kernel, &rec.Schedule, &rec.Seed,
		&rec.Iterations, &rec.Accepted, &rec.Reason, &rec.BestCost, &route)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}

		return Record{}, fmt.Errorf("archive: scanning run: %w", err)
	}
	rec.CreatedAt = time.Unix(0, created).UTC()
	if err = json.Unmarshal([]byte(route), &rec.Route); err != nil {
		return Record{}, fmt.Errorf("archive: decoding route of %s: %w", rec.ID, err)
	}

	return rec, nil
}
