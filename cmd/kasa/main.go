package main

import (
	"os"

	"github.com/kasa-dev/kasa/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
