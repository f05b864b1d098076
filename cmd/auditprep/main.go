package main

import (
	"os"

	"github.com/auditprep-dev/auditprep/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
