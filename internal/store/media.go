package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// youtubeURL matches the video-id segment of the common YouTube URL
// shapes (watch, share, embed).
var youtubeURL = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ExtractYouTubeID pulls the 11-character video id out of a pasted
// URL. Returns false when the URL does not look like a YouTube link.
func ExtractYouTubeID(url string) (string, bool) {
	m := youtubeURL.FindStringSubmatch(url)
	if m == nil || len(m[1]) != 11 {
		return "", false
	}
	return m[1], true
}

// VideoParams holds caller-supplied fields for adding a video.
type VideoParams struct {
	URL      string
	Title    string
	Category string
	Notes    string
}

// MediaLibrary returns the stored library, or the default shape with
// the starter categories when never written.
func (s *Store) MediaLibrary(ctx context.Context) model.MediaLibrary {
	var lib model.MediaLibrary
	s.readCollection(ctx, collMediaLibrary, &lib)
	if lib.Videos == nil {
		lib.Videos = []model.Video{}
	}
	if len(lib.Categories) == 0 {
		lib.Categories = model.DefaultCategories()
	}
	return lib
}

// SaveVideo validates the pasted URL and category, then appends the
// video with a zero play count. Nothing is written on rejection.
func (s *Store) SaveVideo(ctx context.Context, p VideoParams) (*model.Video, error) {
	ytID, ok := ExtractYouTubeID(strings.TrimSpace(p.URL))
	if !ok {
		return nil, fmt.Errorf("save video: %w: not a valid YouTube URL", ErrInvalidInput)
	}

	lib := s.MediaLibrary(ctx)
	category := p.Category
	if category == "" {
		category = lib.Categories[0].ID
	}
	if !hasCategory(lib.Categories, category) {
		return nil, fmt.Errorf("save video: %w: unknown category %q", ErrInvalidInput, category)
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = fmt.Sprintf("Video %d", len(lib.Videos)+1)
	}

	v := model.Video{
		ID:        s.newID(),
		YouTubeID: ytID,
		Title:     title,
		Category:  category,
		Notes:     strings.TrimSpace(p.Notes),
		AddedAt:   time.Now().UTC(),
		PlayCount: 0,
	}
	lib.Videos = append(lib.Videos, v)

	if err := s.writeCollection(ctx, collMediaLibrary, lib); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collMediaLibrary, Op: events.OpSaved, ID: v.ID})
	return &v, nil
}

// DeleteVideo removes a video by id. Unknown ids are a no-op.
func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	lib := s.MediaLibrary(ctx)
	kept := lib.Videos[:0]
	for _, v := range lib.Videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(lib.Videos) {
		return nil
	}
	lib.Videos = kept
	if err := s.writeCollection(ctx, collMediaLibrary, lib); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collMediaLibrary, Op: events.OpDeleted, ID: id})
	return nil
}

// IncrementPlayCount bumps a video's play counter and returns the
// stored count. Unknown ids are a no-op returning zero.
func (s *Store) IncrementPlayCount(ctx context.Context, id string) (int, error) {
	lib := s.MediaLibrary(ctx)
	for i := range lib.Videos {
		if lib.Videos[i].ID == id {
			lib.Videos[i].PlayCount++
			if err := s.writeCollection(ctx, collMediaLibrary, lib); err != nil {
				return 0, err
			}
			s.bus.Publish(events.Event{Collection: collMediaLibrary, Op: events.OpSaved, ID: id})
			return lib.Videos[i].PlayCount, nil
		}
	}
	return 0, nil
}

func hasCategory(categories []model.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
