package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/insights"
)

func init() {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List check-ins",
		Run:   runMoods,
	}

	cmd.Flags().StringP("range", "r", "all", "Time range: week, month, or all")

	RootCmd.AddCommand(cmd)
}

func runMoods(cmd *cobra.Command, args []string) {
	rangeStr, _ := cmd.Flags().GetString("range")
	w, err := insights.ParseWindow(rangeStr)
	if err != nil {
		exitErr("moods", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries := insights.Filter(s.MoodEntries(cmd.Context()), w, time.Now())
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
