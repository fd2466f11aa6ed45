package main

import (
	"os"

	"github.com/nhle/kidpreneur-hub/internal/cli"
)

// Version information set via ldflags at build time
var version = "dev"

func main() {
	root := cli.NewRootCmd()
	root.Version = version

	// cobra has already printed the error.
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
