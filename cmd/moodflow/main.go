package main

import (
	"os"

	"github.com/moodflow/moodflow/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
