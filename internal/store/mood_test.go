package store

import (
	"context"
	"errors"
	"testing"

	"github.com/moodflow/moodflow/internal/model"
)

func TestSaveMoodEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e, err := s.SaveMoodEntry(ctx, MoodEntryParams{
		Moods:     []string{"Calm", "Content"},
		Quadrant:  "low-pleasant",
		Intensity: 6,
		Clarity:   7,
		Control:   8,
		Tags:      []string{"work", "home"},
		Note:      "quiet afternoon",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.ID == "" {
		t.Error("expected assigned id")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected assigned timestamp")
	}

	got := s.MoodEntries(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	stored := got[0]
	if stored.ID != e.ID {
		t.Errorf("expected id %q, got %q", e.ID, stored.ID)
	}
	if len(stored.Moods) != 2 || stored.Moods[0] != "Calm" || stored.Moods[1] != "Content" {
		t.Errorf("moods not round-tripped: %v", stored.Moods)
	}
	if stored.Quadrant != "low-pleasant" {
		t.Errorf("expected quadrant low-pleasant, got %q", stored.Quadrant)
	}
	if stored.Intensity != 6 || stored.Clarity != 7 || stored.Control != 8 {
		t.Errorf("ratings not round-tripped: %d/%d/%d", stored.Intensity, stored.Clarity, stored.Control)
	}
	if stored.Note != "quiet afternoon" {
		t.Errorf("expected note, got %q", stored.Note)
	}
}

func TestSaveMoodEntryIgnoresEmptyLabels(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e, err := s.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{" happy ", "", "  "}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(e.Moods) != 1 || e.Moods[0] != "happy" {
		t.Errorf("expected trimmed single mood, got %v", e.Moods)
	}
}

func TestSaveMoodEntryValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cases := []struct {
		name   string
		params MoodEntryParams
	}{
		{"no moods", MoodEntryParams{}},
		{"blank moods", MoodEntryParams{Moods: []string{"  "}}},
		{"bad quadrant", MoodEntryParams{Moods: []string{"happy"}, Quadrant: "sideways"}},
		{"intensity too high", MoodEntryParams{Moods: []string{"happy"}, Intensity: 11}},
		{"negative clarity", MoodEntryParams{Moods: []string{"happy"}, Clarity: -1}},
		{"too many tags", MoodEntryParams{Moods: []string{"happy"}, Tags: []string{"work", "home", "study", "social"}}},
		{"unknown tag", MoodEntryParams{Moods: []string{"happy"}, Tags: []string{"definitely-not-a-tag"}}},
		{"capitalized tag", MoodEntryParams{Moods: []string{"happy"}, Tags: []string{"Work"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SaveMoodEntry(ctx, tc.params)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// Nothing was persisted by the rejected saves.
	if got := s.MoodEntries(ctx); len(got) != 0 {
		t.Errorf("expected no entries after rejected saves, got %d", len(got))
	}
}

func TestSaveMoodEntryAcceptsKnownTags(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, tag := range model.ContextTagOrder {
		if _, err := s.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{"happy"}, Tags: []string{tag}}); err != nil {
			t.Errorf("tag %q rejected: %v", tag, err)
		}
	}
	if got := s.MoodEntries(ctx); len(got) != len(model.ContextTagOrder) {
		t.Errorf("expected %d entries, got %d", len(model.ContextTagOrder), len(got))
	}
}

func TestMoodEntriesDefaultShape(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if got := s.MoodEntries(ctx); len(got) != 0 {
		t.Errorf("expected empty slice on fresh store, got %d entries", len(got))
	}
}

func TestMoodEntriesStorageOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, _ := s.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{"happy"}})
	second, _ := s.SaveMoodEntry(ctx, MoodEntryParams{Moods: []string{"calm"}})

	got := s.MoodEntries(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("entries not in insertion order")
	}
}
