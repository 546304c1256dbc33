// Package main provides the wordplay binary: the text transformations as
// subcommands, plus an HTTP server exposing them as a JSON API.
package main

import (
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "wordplay"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
