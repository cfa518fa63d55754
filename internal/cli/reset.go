package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data",
		Long:  "Erase every collection. Irreversible; requires --yes.",
		Run:   runReset,
	}

	cmd.Flags().Bool("yes", false, "Confirm the reset")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("reset", fmt.Errorf("this erases everything; re-run with --yes to confirm"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.ClearAll(cmd.Context()); err != nil {
		exitErr("reset", err)
	}

	fmt.Println(`{"ok":true}`)
}
