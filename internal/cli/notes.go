package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/model"
	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Quick notes",
	}

	addCmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Save a quick note",
		Long:  "Save a quick note. Content can be a positional arg or piped via stdin.",
		Run:   runNotesAdd,
	}
	addCmd.Flags().StringP("title", "t", "", "Note title (default: Quick Note)")
	addCmd.Flags().String("tags", "", "Comma-separated tags")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Run:   runNotesList,
	}
	listCmd.Flags().String("tag", "", "Only notes carrying this tag")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run:   runNotesRm,
	}

	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List distinct note tags",
		Run:   runNotesTags,
	}

	notesCmd.AddCommand(addCmd, listCmd, rmCmd, tagsCmd)
	RootCmd.AddCommand(notesCmd)
}

func runNotesAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	tagsStr, _ := cmd.Flags().GetString("tags")
	content := readContent(args)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.SaveNote(cmd.Context(), store.NoteParams{
		Title:   title,
		Content: content,
		Tags:    splitCSV(tagsStr),
	})
	if err != nil {
		exitErr("notes add", err)
	}

	b, _ := json.Marshal(n)
	fmt.Println(string(b))
}

func runNotesList(cmd *cobra.Command, args []string) {
	tag, _ := cmd.Flags().GetString("tag")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	notes := s.Notes(cmd.Context())
	if tag != "" {
		filtered := []model.Note{}
		for _, n := range notes {
			for _, t := range n.Tags {
				if t == tag {
					filtered = append(filtered, n)
					break
				}
			}
		}
		notes = filtered
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Timestamp.After(notes[j].Timestamp)
	})

	b, _ := json.MarshalIndent(notes, "", "  ")
	fmt.Println(string(b))
}

func runNotesRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteNote(cmd.Context(), args[0]); err != nil {
		exitErr("notes rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runNotesTags(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	b, _ := json.Marshal(s.NoteTags(cmd.Context()))
	fmt.Println(string(b))
}
