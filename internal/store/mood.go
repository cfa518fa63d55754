package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// maxContextTags caps how many context tags a check-in may carry.
const maxContextTags = 3

// MoodEntryParams holds caller-supplied check-in fields. The store
// assigns the entry id and timestamp.
type MoodEntryParams struct {
	Moods     []string
	Quadrant  string
	Intensity int
	Clarity   int
	Control   int
	Tags      []string
	Note      string
}

// SaveMoodEntry validates and appends a check-in. At least one mood
// label is required; ratings are 1-10 when given (zero means skipped);
// context tags come from model.ValidContextTags, at most three.
func (s *Store) SaveMoodEntry(ctx context.Context, p MoodEntryParams) (*model.MoodEntry, error) {
	moods := cleanList(p.Moods)
	if len(moods) == 0 {
		return nil, fmt.Errorf("save mood: %w: at least one mood is required", ErrInvalidInput)
	}
	if p.Quadrant != "" && !model.ValidQuadrants[p.Quadrant] {
		return nil, fmt.Errorf("save mood: %w: unknown quadrant %q", ErrInvalidInput, p.Quadrant)
	}
	for _, r := range []struct {
		name  string
		value int
	}{
		{"intensity", p.Intensity},
		{"clarity", p.Clarity},
		{"control", p.Control},
	} {
		if r.value != 0 && (r.value < 1 || r.value > 10) {
			return nil, fmt.Errorf("save mood: %w: %s must be 1-10, got %d", ErrInvalidInput, r.name, r.value)
		}
	}
	tags := cleanList(p.Tags)
	if len(tags) > maxContextTags {
		return nil, fmt.Errorf("save mood: %w: at most %d context tags", ErrInvalidInput, maxContextTags)
	}
	for _, t := range tags {
		if !model.ValidContextTags[t] {
			return nil, fmt.Errorf("save mood: %w: unknown context tag %q", ErrInvalidInput, t)
		}
	}

	entries := s.MoodEntries(ctx)
	e := model.MoodEntry{
		ID:        s.newID(),
		Timestamp: time.Now().UTC(),
		Moods:     moods,
		Quadrant:  p.Quadrant,
		Intensity: p.Intensity,
		Clarity:   p.Clarity,
		Control:   p.Control,
		Tags:      tags,
		Note:      strings.TrimSpace(p.Note),
	}
	entries = append(entries, e)

	if err := s.writeCollection(ctx, collMoodEntries, entries); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collMoodEntries, Op: events.OpSaved, ID: e.ID})
	return &e, nil
}

// MoodEntries returns all check-ins in storage (creation) order.
func (s *Store) MoodEntries(ctx context.Context) []model.MoodEntry {
	var entries []model.MoodEntry
	s.readCollection(ctx, collMoodEntries, &entries)
	return entries
}

// cleanList trims the given strings and drops empties.
func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
