// Package insights computes derived views over stored entries: time
// windows, streaks, frequency counts, and running averages. Everything
// here is a pure function over an accessor's result.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/moodflow/moodflow/internal/model"
)

// Window selects the time range for filtered views.
type Window string

const (
	WindowWeek  Window = "week"  // last 7x24h
	WindowMonth Window = "month" // last 30x24h
	WindowAll   Window = "all"
)

// ParseWindow validates a window tag from user input.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowAll:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown range %q (use week, month, or all)", s)
}

// Onboarded reports whether the profile completes onboarding: a
// profile must exist and carry both a name and an email.
func Onboarded(u *model.UserProfile) bool {
	return u != nil && u.Name != "" && u.Email != ""
}

// Filter returns the entries whose timestamp falls within the window
// ending at now.
func Filter(entries []model.MoodEntry, w Window, now time.Time) []model.MoodEntry {
	if w == WindowAll {
		return entries
	}
	cutoff := now.Add(-7 * 24 * time.Hour)
	if w == WindowMonth {
		cutoff = now.Add(-30 * 24 * time.Hour)
	}
	var out []model.MoodEntry
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// CheckedInToday reports whether any entry falls on now's calendar
// date.
func CheckedInToday(entries []model.MoodEntry, now time.Time) bool {
	today := calendarDay(now, now.Location())
	for _, e := range entries {
		if calendarDay(e.Timestamp, now.Location()).Equal(today) {
			return true
		}
	}
	return false
}

// Streak counts consecutive calendar days with at least one check-in,
// ending today. No check-in today means no active streak. Multiple
// entries on one day count once; time of day is ignored.
func Streak(entries []model.MoodEntry, today time.Time) int {
	loc := today.Location()
	seen := map[time.Time]bool{}
	var days []time.Time
	for _, e := range entries {
		d := calendarDay(e.Timestamp, loc)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if !days[0].Equal(calendarDay(today, loc)) {
		return 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].AddDate(0, 0, 1).Equal(days[i-1]) {
			break
		}
		streak++
	}
	return streak
}

// calendarDay truncates t to its calendar date in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// LabelCount is one row of a frequency view.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// EmotionCounts maps each mood label to its occurrence count, in
// first-occurrence order. Entries without labels count as Unknown.
func EmotionCounts(entries []model.MoodEntry) []LabelCount {
	return countLabels(entries, func(e model.MoodEntry) []string {
		if len(e.Moods) == 0 {
			return []string{"Unknown"}
		}
		return e.Moods
	})
}

// QuadrantCounts tallies entries per energy-by-valence quadrant. All
// four quadrants appear, zero-filled, in fixed display order.
func QuadrantCounts(entries []model.MoodEntry) []LabelCount {
	counts := make([]LabelCount, len(model.QuadrantOrder))
	index := map[string]int{}
	for i, q := range model.QuadrantOrder {
		counts[i] = LabelCount{Label: model.QuadrantLabels[q]}
		index[q] = i
	}
	for _, e := range entries {
		if i, ok := index[e.Quadrant]; ok {
			counts[i].Count++
		}
	}
	return counts
}

// TopTags returns the n most frequent context tags, descending by
// count; ties keep first-occurrence order.
func TopTags(entries []model.MoodEntry, n int) []LabelCount {
	tags := countLabels(entries, func(e model.MoodEntry) []string { return e.Tags })
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Count > tags[j].Count })
	if n > 0 && len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

func countLabels(entries []model.MoodEntry, labels func(model.MoodEntry) []string) []LabelCount {
	var counts []LabelCount
	index := map[string]int{}
	for _, e := range entries {
		for _, l := range labels(e) {
			i, ok := index[l]
			if !ok {
				i = len(counts)
				index[l] = i
				counts = append(counts, LabelCount{Label: l})
			}
			counts[i].Count++
		}
	}
	return counts
}

// Averages holds the running mean of each check-in rating, rounded to
// one decimal place.
type Averages struct {
	Intensity float64 `json:"intensity"`
	Clarity   float64 `json:"clarity"`
	Control   float64 `json:"control"`
}

// AverageMetrics computes the mean intensity, clarity, and control
// over entries that carry an intensity rating. An empty qualifying
// set yields zeroes, never NaN.
func AverageMetrics(entries []model.MoodEntry) Averages {
	var n, intensity, clarity, control int
	for _, e := range entries {
		if e.Intensity == 0 {
			continue
		}
		n++
		intensity += e.Intensity
		clarity += e.Clarity
		control += e.Control
	}
	if n == 0 {
		return Averages{}
	}
	round := func(total int) float64 {
		return math.Round(float64(total)/float64(n)*10) / 10
	}
	return Averages{
		Intensity: round(intensity),
		Clarity:   round(clarity),
		Control:   round(control),
	}
}

// Summary aggregates the derived views for one time window.
type Summary struct {
	Range          Window       `json:"range"`
	Checkins       int          `json:"checkins"`
	Streak         int          `json:"streak"`
	Averages       Averages     `json:"averages"`
	Emotions       []LabelCount `json:"emotions"`
	Quadrants      []LabelCount `json:"quadrants"`
	TopTags        []LabelCount `json:"top_tags"`
	CheckedInToday bool         `json:"checked_in_today"`
}

// topTagCount is how many context tags the summary surfaces.
const topTagCount = 5

// Summarize builds the full insights view for the given window.
func Summarize(entries []model.MoodEntry, w Window, now time.Time) *Summary {
	filtered := Filter(entries, w, now)
	return &Summary{
		Range:          w,
		Checkins:       len(filtered),
		Streak:         Streak(entries, now),
		Averages:       AverageMetrics(filtered),
		Emotions:       EmotionCounts(filtered),
		Quadrants:      QuadrantCounts(filtered),
		TopTags:        TopTags(filtered, topTagCount),
		CheckedInToday: CheckedInToday(entries, now),
	}
}
