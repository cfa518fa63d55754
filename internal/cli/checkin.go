package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/model"
	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record an emotional check-in",
		Long: "Record a check-in: one or more moods, an optional energy/valence quadrant, " +
			"1-10 ratings, context tags, and a note.\n\nSuggested moods per quadrant:\n" + moodSuggestions(),
		Run: runCheckin,
	}

	cmd.Flags().StringP("moods", "m", "", "Comma-separated mood labels (required)")
	cmd.Flags().StringP("quadrant", "q", "", "Quadrant: "+strings.Join(model.QuadrantOrder, ", "))
	cmd.Flags().IntP("intensity", "i", 0, "Intensity 1-10")
	cmd.Flags().Int("clarity", 0, "Clarity 1-10")
	cmd.Flags().Int("control", 0, "Sense of control 1-10")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated context tags, max 3: "+strings.Join(model.ContextTagOrder, ", "))
	cmd.Flags().String("note", "", "Free-text note")

	cmd.MarkFlagRequired("moods")

	RootCmd.AddCommand(cmd)
}

// moodSuggestions renders the per-quadrant emotion vocabulary for the
// long help text.
func moodSuggestions() string {
	var b strings.Builder
	for _, q := range model.QuadrantOrder {
		fmt.Fprintf(&b, "  %-16s %s\n", q, strings.Join(model.QuadrantEmotions[q], ", "))
	}
	return b.String()
}

func runCheckin(cmd *cobra.Command, args []string) {
	moodsStr, _ := cmd.Flags().GetString("moods")
	quadrant, _ := cmd.Flags().GetString("quadrant")
	intensity, _ := cmd.Flags().GetInt("intensity")
	clarity, _ := cmd.Flags().GetInt("clarity")
	control, _ := cmd.Flags().GetInt("control")
	tagsStr, _ := cmd.Flags().GetString("tags")
	note, _ := cmd.Flags().GetString("note")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.SaveMoodEntry(cmd.Context(), store.MoodEntryParams{
		Moods:     splitCSV(moodsStr),
		Quadrant:  quadrant,
		Intensity: intensity,
		Clarity:   clarity,
		Control:   control,
		Tags:      splitCSV(tagsStr),
		Note:      note,
	})
	if err != nil {
		exitErr("checkin", err)
	}

	b, _ := json.Marshal(e)
	fmt.Println(string(b))
}
