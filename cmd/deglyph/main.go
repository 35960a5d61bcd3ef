package main

import (
	"os"

	"github.com/deglyph/deglyph/internal/adapters/driving/cli"
)

func main() {
	// cobra prints the error itself; only the exit code is ours.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
