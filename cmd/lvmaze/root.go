package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitError       = 1
	exitUnreachable = 2
)

// errNoRoute is returned by solve when the maze has no route; it maps to
// exitUnreachable.
var errNoRoute = errors.New("unreachable")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvmaze",
		Short: "lvmaze finds the cheapest routes through a maze where turning costs extra",
		Long: `lvmaze reads a maze ('#' walls, '.' floor, 'S' start, 'E' end), walks it
facing a direction, and reports the cheapest route cost together with the
number of cells lying on at least one cheapest route.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "lvmaze.yaml", "Path to a YAML or JSON config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

// Execute runs the root command and exits with the matching status.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoRoute) {
			os.Exit(exitUnreachable)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
