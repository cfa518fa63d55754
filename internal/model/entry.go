package model

import "time"

// MoodEntry is a single emotional check-in. Entries are append-only;
// the store assigns ID and Timestamp, everything else comes from the
// caller. Ratings are 1-10, zero meaning the rating was skipped.
type MoodEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Moods     []string  `json:"moods"`
	Quadrant  string    `json:"quadrant,omitempty"`
	Intensity int       `json:"intensity,omitempty"`
	Clarity   int       `json:"clarity,omitempty"`
	Control   int       `json:"control,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// JournalEntry is a long-form journal entry.
type JournalEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

// Note is a quick tagged note with a cosmetic display color.
type Note struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Color     string    `json:"color"`
}

// ValidQuadrants are the four energy-by-valence categories a check-in
// can be classified under.
var ValidQuadrants = map[string]bool{
	"high-pleasant":   true,
	"high-unpleasant": true,
	"low-pleasant":    true,
	"low-unpleasant":  true,
}

// QuadrantOrder is the display order for quadrant breakdowns.
var QuadrantOrder = []string{
	"high-pleasant",
	"high-unpleasant",
	"low-pleasant",
	"low-unpleasant",
}

// QuadrantLabels maps quadrant ids to their display names.
var QuadrantLabels = map[string]string{
	"high-pleasant":   "High Energy + Pleasant",
	"high-unpleasant": "High Energy + Unpleasant",
	"low-pleasant":    "Low Energy + Pleasant",
	"low-unpleasant":  "Low Energy + Unpleasant",
}

// QuadrantEmotions lists the suggested emotion vocabulary per quadrant.
var QuadrantEmotions = map[string][]string{
	"high-pleasant":   {"Excited", "Joyful", "Energized", "Motivated", "Inspired"},
	"high-unpleasant": {"Anxious", "Stressed", "Angry", "Frustrated", "Overwhelmed"},
	"low-pleasant":    {"Calm", "Content", "Peaceful", "Relaxed", "Satisfied"},
	"low-unpleasant":  {"Sad", "Tired", "Lonely", "Numb", "Hopeless"},
}

// ContextTagOrder is the display order for the check-in context tags.
var ContextTagOrder = []string{
	"work",
	"social",
	"relationship",
	"health",
	"study",
	"home",
	"financial",
	"personal",
}

// ValidContextTags are the selectable check-in context tags.
var ValidContextTags = map[string]bool{
	"work":         true,
	"social":       true,
	"relationship": true,
	"health":       true,
	"study":        true,
	"home":         true,
	"financial":    true,
	"personal":     true,
}

// NoteColors is the rotation palette for note display colors.
var NoteColors = []string{"yellow", "pink", "blue", "green", "purple", "orange"}
