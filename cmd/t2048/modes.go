package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all modes",
	Long:  `Shows every mode with its rules as configured by --config and --difficulty.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	rules := t2048.Rules()
	for _, g := range games {
		desc := g.Title
		if mode, err := t2048.ParseMode(g.ID); err == nil {
			desc = mode.Description(rules)
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, desc)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play <id>' to play a mode.")
}
