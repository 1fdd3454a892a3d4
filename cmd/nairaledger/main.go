package main

import (
	"os"

	"github.com/nairaledger/nairaledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
