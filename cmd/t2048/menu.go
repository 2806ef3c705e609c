package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or W/S to navigate, Enter to select a mode.
After a game you return to the menu with B or Esc.

Controls:
  Up/Down/W/S  - Navigate menu
  1-4          - Pick a mode directly
  Enter        - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runLocal("")
}

// runLocal runs the terminal front end, starting in mode when it is not empty.
func runLocal(mode string) error {
	logger := newLogger("t2048")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Stderr shares the terminal with the game; only errors get through.
	logger.SetLevel(log.ErrorLevel)

	return tui.Run(store, logger, localRuntime(), mode)
}
