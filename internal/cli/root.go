// Package cli implements the moodflow CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moodflow/moodflow/internal/config"
	"github.com/moodflow/moodflow/internal/store"
)

var (
	dbPath  string
	verbose bool
	logger  = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "moodflow",
	Short: "Local-first mood tracking and journaling",
	Long:  "Track emotional check-ins, keep a journal and quick notes, curate comfort videos, and list support contacts. SQLite-backed, single binary, no server.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MOODFLOW_DB or ~/.moodflow/moodflow.db)")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Debug logging")
}

func newLogger() *zap.Logger {
	if verbose {
		l, _ := zap.NewDevelopment()
		return l
	}
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(config.New().LogLevel); err == nil {
		cfg.Level = lvl
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.New().DBPath
}

func openStore() (*store.Store, error) {
	path := getDBPath()
	logger.Debug("opening store", zap.String("path", path))
	return store.Open(path)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// splitCSV splits a comma-separated flag value, trimming whitespace
// and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
