package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/model"
	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	videosCmd := &cobra.Command{
		Use:   "videos",
		Short: "Comfort video library",
	}

	addCmd := &cobra.Command{
		Use:   "add <youtube-url>",
		Short: "Add a video by YouTube URL",
		Args:  cobra.ExactArgs(1),
		Run:   runVideosAdd,
	}
	addCmd.Flags().StringP("title", "t", "", "Video title")
	addCmd.Flags().StringP("category", "c", "", "Category id (default: first category)")
	addCmd.Flags().String("notes", "", "Why this video helps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the library",
		Run:   runVideosList,
	}
	listCmd.Flags().StringP("category", "c", "", "Only videos in this category")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a video",
		Args:  cobra.ExactArgs(1),
		Run:   runVideosRm,
	}

	playCmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Record a play and print the watch URL",
		Args:  cobra.ExactArgs(1),
		Run:   runVideosPlay,
	}

	videosCmd.AddCommand(addCmd, listCmd, rmCmd, playCmd)
	RootCmd.AddCommand(videosCmd)
}

func runVideosAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	category, _ := cmd.Flags().GetString("category")
	notes, _ := cmd.Flags().GetString("notes")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	v, err := s.SaveVideo(cmd.Context(), store.VideoParams{
		URL:      args[0],
		Title:    title,
		Category: category,
		Notes:    notes,
	})
	if err != nil {
		exitErr("videos add", err)
	}

	b, _ := json.Marshal(v)
	fmt.Println(string(b))
}

func runVideosList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lib := s.MediaLibrary(cmd.Context())
	if category != "" {
		filtered := []model.Video{}
		for _, v := range lib.Videos {
			if v.Category == category {
				filtered = append(filtered, v)
			}
		}
		lib.Videos = filtered
	}

	b, _ := json.MarshalIndent(lib, "", "  ")
	fmt.Println(string(b))
}

func runVideosRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteVideo(cmd.Context(), args[0]); err != nil {
		exitErr("videos rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runVideosPlay(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lib := s.MediaLibrary(cmd.Context())
	for _, v := range lib.Videos {
		if v.ID == args[0] {
			count, err := s.IncrementPlayCount(cmd.Context(), v.ID)
			if err != nil {
				exitErr("videos play", err)
			}
			fmt.Printf(`{"ok":true,"url":"https://www.youtube.com/watch?v=%s","play_count":%d}`+"\n",
				v.YouTubeID, count)
			return
		}
	}
	exitErr("videos play", fmt.Errorf("video not found: %s", args[0]))
}
