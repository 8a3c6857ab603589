package collection

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"waxcrate/internal/config"
	"waxcrate/internal/logging"
)

// albumsKey is the single storage key the whole collection lives under. The
// value is a JSON-encoded array of Album records.
const albumsKey = "albums"

// Store is the durable home for the album collection. Reads and writes go
// through one serialized document; a file lock serializes writers across
// processes. Within a process, concurrent Upserts are last-writer-wins, which
// is acceptable for a single-user client.
//
// Read operations fail soft: a storage or decode fault degrades to an empty
// or absent result and is logged, never surfaced to callers. Upsert reports
// failure through its boolean so callers can offer a retry.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Open initializes or connects to the collection database.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{
		db:     db,
		path:   dbPath,
		lock:   flock.New(dbPath + ".lock"),
		logger: logger,
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// GetAll returns every stored album in persisted (insertion) order. Callers
// must not rely on that order; display ordering belongs to the catalog and
// stats layers. A read or decode failure degrades to an empty slice.
func (s *Store) GetAll(ctx context.Context) []Album {
	albums, err := s.load(ctx)
	if err != nil {
		s.logger.Error("load collection failed, degrading to empty", logging.Error(err))
		return []Album{}
	}
	return albums
}

// GetByID returns the album with the given id, or nil when absent. Absence is
// a normal outcome, not a fault.
func (s *Store) GetByID(ctx context.Context, id int64) *Album {
	albums, err := s.load(ctx)
	if err != nil {
		s.logger.Error("load collection failed during lookup", logging.Int64("id", id), logging.Error(err))
		return nil
	}
	for i := range albums {
		if albums[i].ID == id {
			return &albums[i]
		}
	}
	return nil
}

// Upsert inserts or replaces the album keyed on its ID and reports success.
// An existing record is replaced in place, preserving positional order; a new
// one is appended. The stored DateAdded survives updates: it is set exactly
// once, at first save.
func (s *Store) Upsert(ctx context.Context, album Album) bool {
	if err := s.lock.Lock(); err != nil {
		s.logger.Error("acquire collection lock failed", logging.Error(err))
		return false
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("release collection lock failed", logging.Error(err))
		}
	}()

	albums, err := s.load(ctx)
	if err != nil {
		s.logger.Error("load collection failed during upsert", logging.Int64("id", album.ID), logging.Error(err))
		return false
	}

	replaced := false
	for i := range albums {
		if albums[i].ID == album.ID {
			if albums[i].DateAdded != "" {
				album.DateAdded = albums[i].DateAdded
			}
			albums[i] = album
			replaced = true
			break
		}
	}
	if !replaced {
		albums = append(albums, album)
	}

	if err := s.save(ctx, albums); err != nil {
		s.logger.Error("persist collection failed", logging.Int64("id", album.ID), logging.Error(err))
		return false
	}
	return true
}

func (s *Store) load(ctx context.Context) ([]Album, error) {
	var value string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, albumsKey)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []Album{}, nil
		}
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var albums []Album
	if err := json.Unmarshal([]byte(value), &albums); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if albums == nil {
		albums = []Album{}
	}
	return albums, nil
}

func (s *Store) save(ctx context.Context, albums []Album) error {
	payload, err := json.Marshal(albums)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		albumsKey,
		string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
