// Package main - care log command line interface
package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	log.SetLevel(log.WarnLevel)

	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
