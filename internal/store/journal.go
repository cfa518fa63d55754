package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// JournalEntryParams holds caller-supplied journal fields.
type JournalEntryParams struct {
	Title   string
	Content string
}

// SaveJournalEntry appends a journal entry. Content is required; a
// blank title falls back to a placeholder.
func (s *Store) SaveJournalEntry(ctx context.Context, p JournalEntryParams) (*model.JournalEntry, error) {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return nil, fmt.Errorf("save journal entry: %w: content is required", ErrInvalidInput)
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Untitled Entry"
	}

	entries := s.JournalEntries(ctx)
	e := model.JournalEntry{
		ID:        s.newID(),
		Timestamp: time.Now().UTC(),
		Title:     title,
		Content:   content,
	}
	entries = append(entries, e)

	if err := s.writeCollection(ctx, collJournalEntries, entries); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collJournalEntries, Op: events.OpSaved, ID: e.ID})
	return &e, nil
}

// JournalEntries returns all journal entries in storage order.
func (s *Store) JournalEntries(ctx context.Context) []model.JournalEntry {
	var entries []model.JournalEntry
	s.readCollection(ctx, collJournalEntries, &entries)
	return entries
}

// DeleteJournalEntry removes an entry by id. Deleting an unknown id
// is a no-op.
func (s *Store) DeleteJournalEntry(ctx context.Context, id string) error {
	entries := s.JournalEntries(ctx)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	if err := s.writeCollection(ctx, collJournalEntries, kept); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collJournalEntries, Op: events.OpDeleted, ID: id})
	return nil
}
