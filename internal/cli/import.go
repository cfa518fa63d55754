package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore data from a JSON snapshot",
		Long:  "Restore all collections from a snapshot (stdin). Expects the format produced by export; replaces existing data wholesale.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Import(cmd.Context(), &snap); err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"mood_entries":%d,"journal_entries":%d,"notes":%d}`+"\n",
		len(snap.MoodEntries), len(snap.JournalEntries), len(snap.Notes))
}
