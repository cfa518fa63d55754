package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodflow/moodflow/internal/events"
)

// Collection keys. One key per record kind, stable across releases;
// no two kinds share a key.
const (
	collUserData        = "user_data"
	collMoodEntries     = "mood_entries"
	collJournalEntries  = "journal_entries"
	collNotes           = "notes"
	collProfileData     = "profile_data"
	collMediaLibrary    = "media_library"
	collSupportContacts = "support_contacts"
)

var collections = []string{
	collUserData,
	collMoodEntries,
	collJournalEntries,
	collNotes,
	collProfileData,
	collMediaLibrary,
	collSupportContacts,
}

// readCollection decodes a stored collection into v. It fails soft:
// a missing row or corrupt JSON leaves v untouched and returns false,
// so every accessor operates on a valid (possibly default) value.
func (s *Store) readCollection(ctx context.Context, name string, v interface{}) bool {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false
	}
	return true
}

// writeCollection replaces the entire stored collection in a single
// statement. No partial-write visibility.
func (s *Store) writeCollection(ctx context.Context, name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), now)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ClearAll removes every known collection. Irreversible; confirmation
// is the caller's concern.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, name := range collections {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM collections WHERE name = ?`, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	s.bus.Publish(events.Event{Op: events.OpCleared})
	return nil
}
