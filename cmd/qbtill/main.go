package main

import (
	"os"

	"github.com/tillworks/qbtill/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
