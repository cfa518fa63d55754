package store

import (
	"context"
	"errors"
	"testing"
)

func TestSaveJournalEntryDefaultsTitle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	e, err := s.SaveJournalEntry(ctx, JournalEntryParams{Content: "long day"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.Title != "Untitled Entry" {
		t.Errorf("expected placeholder title, got %q", e.Title)
	}
}

func TestSaveJournalEntryRequiresContent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.SaveJournalEntry(ctx, JournalEntryParams{Title: "only a title", Content: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := s.JournalEntries(ctx); len(got) != 0 {
		t.Errorf("expected nothing persisted, got %d entries", len(got))
	}
}

func TestDeleteJournalEntryIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	keep, _ := s.SaveJournalEntry(ctx, JournalEntryParams{Content: "keep me"})
	gone, _ := s.SaveJournalEntry(ctx, JournalEntryParams{Content: "delete me"})

	if err := s.DeleteJournalEntry(ctx, gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Second delete of the same id is a no-op.
	if err := s.DeleteJournalEntry(ctx, gone.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	// So is deleting an id that never existed.
	if err := s.DeleteJournalEntry(ctx, "no-such-id"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}

	got := s.JournalEntries(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].ID != keep.ID {
		t.Errorf("wrong entry survived: %q", got[0].ID)
	}
}

func TestSaveNoteDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.SaveNote(ctx, NoteParams{Content: "water the plants"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n.Title != "Quick Note" {
		t.Errorf("expected placeholder title, got %q", n.Title)
	}
	if n.Color == "" {
		t.Error("expected assigned display color")
	}
	if n.Tags == nil {
		t.Error("expected empty tag list, got nil")
	}
}

func TestNoteColorsRotate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.SaveNote(ctx, NoteParams{Content: "first"})
	b, _ := s.SaveNote(ctx, NoteParams{Content: "second"})

	if a.Color == b.Color {
		t.Errorf("expected rotating colors, both got %q", a.Color)
	}
}

func TestNoteTags(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SaveNote(ctx, NoteParams{Content: "a", Tags: []string{"health", "sleep"}})
	s.SaveNote(ctx, NoteParams{Content: "b", Tags: []string{"sleep", "work"}})

	tags := s.NoteTags(ctx)
	want := []string{"health", "sleep", "work"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("tag %d: expected %q, got %q", i, w, tags[i])
		}
	}
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, _ := s.SaveNote(ctx, NoteParams{Content: "temp"})
	if err := s.DeleteNote(ctx, n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := s.Notes(ctx); len(got) != 0 {
		t.Errorf("expected no notes, got %d", len(got))
	}
}
