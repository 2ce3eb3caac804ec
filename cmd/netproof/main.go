package main

import (
	"os"

	"github.com/netproof-dev/netproof/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
