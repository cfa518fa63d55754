// Package store implements the moodflow persistence layer: a
// SQLite-backed collection store plus typed accessors per record kind.
// All access to stored data goes through the accessors; nothing else
// touches the collections table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/moodflow/moodflow/internal/events"
)

// ErrInvalidInput marks a save rejected at the accessor boundary.
// Nothing is written when a save fails with this error.
var ErrInvalidInput = errors.New("invalid input")

// Store is the single handle to all persisted moodflow data.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
	bus     *events.Bus
}

// Open opens or creates the moodflow database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		bus:     events.NewBus(),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Bus returns the change notification bus. Consumers subscribe here
// instead of polling for storage changes.
func (s *Store) Bus() *events.Bus {
	return s.bus
}

// Close shuts down the notification bus and the database.
func (s *Store) Close() error {
	s.bus.Close()
	return s.db.Close()
}
