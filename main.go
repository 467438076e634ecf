// Package main is the entry point for the synaudit TCP handshake auditor.
package main

import (
	"fmt"
	"os"

	"synaudit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
