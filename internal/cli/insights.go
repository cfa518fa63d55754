package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/insights"
)

func init() {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Patterns in your check-ins",
		Long:  "Streak, average ratings, emotion and quadrant distribution, and most common context tags for a time range.",
		Run:   runInsights,
	}

	cmd.Flags().StringP("range", "r", "week", "Time range: week, month, or all")

	RootCmd.AddCommand(cmd)
}

func runInsights(cmd *cobra.Command, args []string) {
	rangeStr, _ := cmd.Flags().GetString("range")
	w, err := insights.ParseWindow(rangeStr)
	if err != nil {
		exitErr("insights", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	summary := insights.Summarize(s.MoodEntries(cmd.Context()), w, time.Now())

	b, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(b))
}
