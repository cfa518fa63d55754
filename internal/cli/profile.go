package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/insights"
	"github.com/moodflow/moodflow/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the device profile and onboarding state",
		Run:   runProfile,
	}

	RootCmd.AddCommand(cmd)
}

func runProfile(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	u := s.UserProfile(cmd.Context())
	out := struct {
		Onboarded bool               `json:"onboarded"`
		Profile   *model.UserProfile `json:"profile,omitempty"`
	}{
		Onboarded: insights.Onboarded(u),
		Profile:   u,
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
