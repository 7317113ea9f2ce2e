package main

import (
	"os"

	"github.com/kasva-dev/kasva/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
