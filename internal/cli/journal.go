package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal entries",
	}

	addCmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Write a journal entry",
		Long:  "Write a journal entry. Content can be a positional arg or piped via stdin.",
		Run:   runJournalAdd,
	}
	addCmd.Flags().StringP("title", "t", "", "Entry title (default: Untitled Entry)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Run:   runJournalList,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		Run:   runJournalRm,
	}

	journalCmd.AddCommand(addCmd, listCmd, rmCmd)
	RootCmd.AddCommand(journalCmd)
}

// readContent gets content from positional args or piped stdin.
func readContent(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return string(b)
	}
	return ""
}

func runJournalAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	content := readContent(args)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.SaveJournalEntry(cmd.Context(), store.JournalEntryParams{
		Title:   title,
		Content: content,
	})
	if err != nil {
		exitErr("journal add", err)
	}

	b, _ := json.Marshal(e)
	fmt.Println(string(b))
}

func runJournalList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries := s.JournalEntries(cmd.Context())
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}

func runJournalRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteJournalEntry(cmd.Context(), args[0]); err != nil {
		exitErr("journal rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
