// Package main is the entry point for the questionnaire CLI.
//
// It runs the travel planning questionnaire in the terminal, renders single
// steps as text or HTML, prints and validates answer schemas and schedules
// suggested activities over a trip.
//
// For detailed usage information, run:
//
//	questionnaire --help
package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-questionnaire/cmd/questionnaire/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
