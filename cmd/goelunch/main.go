// Package main is the entry point for the goelunch CLI.
package main

import (
	"os"

	"github.com/jmylchreest/goelunch/cmd/goelunch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
