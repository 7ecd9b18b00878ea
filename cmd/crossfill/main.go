package main

import (
	"os"

	"github.com/arbelos/crossfill/cmd/crossfill/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
