package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/model"
)

func init() {
	toolkitCmd := &cobra.Command{
		Use:   "toolkit",
		Short: "Self-care toolkit lists",
		Long:  "Manage the two toolkit lists: what helps when you feel bad, and what keeps you going when you feel good.",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show both lists",
		Run:   runToolkitShow,
	}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an item to a list",
		Args:  cobra.MinimumNArgs(1),
		Run:   runToolkitAdd,
	}
	addCmd.Flags().StringP("when", "w", "bad", "Which list: bad or good")

	rmCmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove an item by position (0-based)",
		Args:  cobra.ExactArgs(1),
		Run:   runToolkitRm,
	}
	rmCmd.Flags().StringP("when", "w", "bad", "Which list: bad or good")

	toolkitCmd.AddCommand(showCmd, addCmd, rmCmd)
	RootCmd.AddCommand(toolkitCmd)
}

func toolkitList(p model.ProfileData, when string) ([]string, bool) {
	switch when {
	case "bad":
		return p.HelpWhenBad, true
	case "good":
		return p.HelpWhenGood, true
	}
	return nil, false
}

func runToolkitShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	b, _ := json.MarshalIndent(s.ProfileData(cmd.Context()), "", "  ")
	fmt.Println(string(b))
}

func runToolkitAdd(cmd *cobra.Command, args []string) {
	when, _ := cmd.Flags().GetString("when")
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		exitErr("toolkit add", fmt.Errorf("text is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := s.ProfileData(cmd.Context())
	list, ok := toolkitList(p, when)
	if !ok {
		exitErr("toolkit add", fmt.Errorf("unknown list %q (use bad or good)", when))
	}
	list = append(list, text)
	if when == "bad" {
		p.HelpWhenBad = list
	} else {
		p.HelpWhenGood = list
	}

	if err := s.SaveProfileData(cmd.Context(), p); err != nil {
		exitErr("toolkit add", err)
	}

	b, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(b))
}

func runToolkitRm(cmd *cobra.Command, args []string) {
	when, _ := cmd.Flags().GetString("when")
	index, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("toolkit rm", fmt.Errorf("index must be a number: %v", err))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := s.ProfileData(cmd.Context())
	list, ok := toolkitList(p, when)
	if !ok {
		exitErr("toolkit rm", fmt.Errorf("unknown list %q (use bad or good)", when))
	}
	if index < 0 || index >= len(list) {
		exitErr("toolkit rm", fmt.Errorf("index %d out of range (list has %d items)", index, len(list)))
	}
	list = append(list[:index], list[index+1:]...)
	if when == "bad" {
		p.HelpWhenBad = list
	} else {
		p.HelpWhenGood = list
	}

	if err := s.SaveProfileData(cmd.Context(), p); err != nil {
		exitErr("toolkit rm", err)
	}

	b, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(b))
}
