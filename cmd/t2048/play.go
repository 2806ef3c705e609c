package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Slide tiles
  P            - Pause (classic and infinite)
  R            - Restart
  B/Esc        - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Fewer 4 tiles
  normal  - Default rules
  hard    - More 4 tiles and shorter countdowns

Examples:
  t2048 play classic
  t2048 play timed --difficulty easy
  t2048 play hardcore --difficulty hard
  t2048 play infinite --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 't2048 modes' to see available modes", mode)
	}
	return runLocal(mode)
}
