package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Long:  "Export every collection as a single JSON snapshot, suitable for backup or moving to another device.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap := s.Export(cmd.Context())

	b, _ := json.MarshalIndent(snap, "", "  ")
	fmt.Println(string(b))
}
