package store

import (
	"context"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// Snapshot is a full export of every collection, suitable for backup
// and restore. Field names mirror the collection keys.
type Snapshot struct {
	ExportedAt      time.Time             `json:"exported_at"`
	UserProfile     *model.UserProfile    `json:"user_data,omitempty"`
	MoodEntries     []model.MoodEntry     `json:"mood_entries"`
	JournalEntries  []model.JournalEntry  `json:"journal_entries"`
	Notes           []model.Note          `json:"notes"`
	ProfileData     model.ProfileData     `json:"profile_data"`
	MediaLibrary    model.MediaLibrary    `json:"media_library"`
	SupportContacts model.SupportContacts `json:"support_contacts"`
}

// Export returns a snapshot of all stored data.
func (s *Store) Export(ctx context.Context) *Snapshot {
	return &Snapshot{
		ExportedAt:      time.Now().UTC(),
		UserProfile:     s.UserProfile(ctx),
		MoodEntries:     s.MoodEntries(ctx),
		JournalEntries:  s.JournalEntries(ctx),
		Notes:           s.Notes(ctx),
		ProfileData:     s.ProfileData(ctx),
		MediaLibrary:    s.MediaLibrary(ctx),
		SupportContacts: s.SupportContacts(ctx),
	}
}

// Import restores a snapshot, replacing every collection wholesale.
// Record identities from the snapshot are preserved; this is the one
// path that writes ids the store did not assign in this process.
func (s *Store) Import(ctx context.Context, snap *Snapshot) error {
	writes := map[string]interface{}{
		collMoodEntries:     snap.MoodEntries,
		collJournalEntries:  snap.JournalEntries,
		collNotes:           snap.Notes,
		collProfileData:     snap.ProfileData,
		collMediaLibrary:    snap.MediaLibrary,
		collSupportContacts: snap.SupportContacts,
	}
	if snap.UserProfile != nil {
		writes[collUserData] = snap.UserProfile
	}

	for _, name := range collections {
		v, ok := writes[name]
		if !ok {
			continue
		}
		if err := s.writeCollection(ctx, name, v); err != nil {
			return err
		}
		s.bus.Publish(events.Event{Collection: name, Op: events.OpSaved})
	}
	return nil
}
