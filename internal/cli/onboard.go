package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Complete onboarding",
		Long:  "Create or replace the device profile. Saving publishes a change event so other consumers re-derive onboarding state.",
		Run:   runOnboard,
	}

	cmd.Flags().StringP("name", "n", "", "Your name (required)")
	cmd.Flags().StringP("email", "e", "", "Email address")
	cmd.Flags().String("usage", "", "What you want to use the app for")
	cmd.Flags().String("importance", "", "Why tracking matters to you")
	cmd.Flags().Bool("notifications", false, "Enable check-in reminders")
	cmd.Flags().String("checkin-time", "", "Preferred check-in time (e.g. 20:00)")

	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runOnboard(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	usage, _ := cmd.Flags().GetString("usage")
	importance, _ := cmd.Flags().GetString("importance")
	notifications, _ := cmd.Flags().GetBool("notifications")
	checkinTime, _ := cmd.Flags().GetString("checkin-time")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	u, err := s.SaveUserProfile(cmd.Context(), store.UserProfileParams{
		Name:          name,
		Email:         email,
		Usage:         usage,
		Importance:    importance,
		Notifications: notifications,
		CheckinTime:   checkinTime,
	})
	if err != nil {
		exitErr("onboard", err)
	}

	b, _ := json.MarshalIndent(u, "", "  ")
	fmt.Println(string(b))
}
