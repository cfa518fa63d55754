package store

import (
	"context"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.SaveUserProfile(ctx, UserProfileParams{Name: "Sam", Email: "sam@example.com"})
	mood, _ := src.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{"calm"}, Intensity: 5})
	src.SaveJournalEntry(ctx, JournalEntryParams{Content: "a day"})
	src.SaveNote(ctx, NoteParams{Content: "a note", Tags: []string{"misc"}})
	src.SaveVideo(ctx, VideoParams{URL: "https://youtu.be/dQw4w9WgXcQ"})
	src.SaveSupportContact(ctx, SupportContactParams{Name: "Alex", Phone: "555-0100"})

	snap := src.Export(ctx)
	if snap.UserProfile == nil || snap.UserProfile.Name != "Sam" {
		t.Fatalf("profile missing from snapshot: %+v", snap.UserProfile)
	}
	if len(snap.MoodEntries) != 1 || len(snap.JournalEntries) != 1 || len(snap.Notes) != 1 {
		t.Fatalf("snapshot incomplete: %d moods, %d journal, %d notes",
			len(snap.MoodEntries), len(snap.JournalEntries), len(snap.Notes))
	}

	dst := newTestStore(t)
	if err := dst.Import(ctx, snap); err != nil {
		t.Fatalf("import: %v", err)
	}

	// Identities from the snapshot are preserved on restore.
	got := dst.MoodEntries(ctx)
	if len(got) != 1 || got[0].ID != mood.ID {
		t.Errorf("expected restored entry with id %q, got %v", mood.ID, got)
	}
	if u := dst.UserProfile(ctx); u == nil || u.Email != "sam@example.com" {
		t.Errorf("profile not restored: %+v", u)
	}
	if lib := dst.MediaLibrary(ctx); len(lib.Videos) != 1 {
		t.Errorf("expected 1 restored video, got %d", len(lib.Videos))
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SaveUserProfile(ctx, UserProfileParams{Name: "Sam", Email: "sam@example.com"})
	for i := 0; i < 8; i++ {
		s.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{"calm"}})
	}
	s.SaveJournalEntry(ctx, JournalEntryParams{Content: "x"})

	st := s.Stats(ctx, "ignored-path")
	if !st.Onboarded {
		t.Error("expected onboarded")
	}
	if st.MoodEntries != 8 {
		t.Errorf("expected 8 mood entries, got %d", st.MoodEntries)
	}
	if st.JournalEntries != 1 {
		t.Errorf("expected 1 journal entry, got %d", st.JournalEntries)
	}
	// 8 check-ins rounds up to 2 tracked weeks, 4.0 per week.
	if st.WeeksTracking != 2 {
		t.Errorf("expected 2 weeks tracking, got %d", st.WeeksTracking)
	}
	if st.CheckinsPerWeek != 4.0 {
		t.Errorf("expected 4.0 check-ins/week, got %v", st.CheckinsPerWeek)
	}
}
