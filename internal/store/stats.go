package store

import (
	"context"
	"math"
	"os"

	"github.com/moodflow/moodflow/internal/insights"
)

// Stats holds database-level statistics.
type Stats struct {
	DBPath          string  `json:"db_path"`
	DBSizeBytes     int64   `json:"db_size_bytes"`
	Onboarded       bool    `json:"onboarded"`
	MoodEntries     int     `json:"mood_entries"`
	JournalEntries  int     `json:"journal_entries"`
	Notes           int     `json:"notes"`
	Videos          int     `json:"videos"`
	Contacts        int     `json:"contacts"`
	WeeksTracking   int     `json:"weeks_tracking"`
	CheckinsPerWeek float64 `json:"checkins_per_week"`
}

// Stats returns database statistics.
func (s *Store) Stats(ctx context.Context, dbPath string) *Stats {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	st.Onboarded = insights.Onboarded(s.UserProfile(ctx))
	moods := s.MoodEntries(ctx)
	st.MoodEntries = len(moods)
	st.JournalEntries = len(s.JournalEntries(ctx))
	st.Notes = len(s.Notes(ctx))
	st.Videos = len(s.MediaLibrary(ctx).Videos)
	st.Contacts = len(s.SupportContacts(ctx).PersonalContacts)

	if len(moods) > 0 {
		st.WeeksTracking = int(math.Ceil(float64(len(moods)) / 7))
		st.CheckinsPerWeek = math.Round(float64(len(moods))/float64(st.WeeksTracking)*10) / 10
	}

	return st
}
