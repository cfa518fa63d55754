package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// NoteParams holds caller-supplied note fields.
type NoteParams struct {
	Title   string
	Content string
	Tags    []string
}

// SaveNote appends a quick note. Content is required; a blank title
// falls back to a placeholder. The display color rotates through the
// fixed palette so saves stay deterministic.
func (s *Store) SaveNote(ctx context.Context, p NoteParams) (*model.Note, error) {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return nil, fmt.Errorf("save note: %w: content is required", ErrInvalidInput)
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Quick Note"
	}

	notes := s.Notes(ctx)
	n := model.Note{
		ID:        s.newID(),
		Timestamp: time.Now().UTC(),
		Title:     title,
		Content:   content,
		Tags:      cleanList(p.Tags),
		Color:     model.NoteColors[len(notes)%len(model.NoteColors)],
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	notes = append(notes, n)

	if err := s.writeCollection(ctx, collNotes, notes); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collNotes, Op: events.OpSaved, ID: n.ID})
	return &n, nil
}

// Notes returns all notes in storage order.
func (s *Store) Notes(ctx context.Context) []model.Note {
	var notes []model.Note
	s.readCollection(ctx, collNotes, &notes)
	return notes
}

// DeleteNote removes a note by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	notes := s.Notes(ctx)
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}
	if err := s.writeCollection(ctx, collNotes, kept); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collNotes, Op: events.OpDeleted, ID: id})
	return nil
}

// NoteTags returns the distinct tags across all notes, first-seen
// order.
func (s *Store) NoteTags(ctx context.Context) []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, n := range s.Notes(ctx) {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
