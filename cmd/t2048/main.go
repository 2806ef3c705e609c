// t2048 is the 2048 sliding-tile puzzle for the terminal, SSH and the browser.
//
// Usage:
//
//	t2048                    - Interactive menu (same as "t2048 menu")
//	t2048 play <mode>        - Play a mode directly
//	t2048 modes              - List available modes
//	t2048 scores <mode>      - Show high scores for a mode
//	t2048 serve              - Start SSH server for remote play
//	t2048 web                - Start the browser front end
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Load rules from a YAML file
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the board with the
arrow keys or WASD; equal tiles merge and add their value to your score.

Modes:
  classic   - No timer, play at your own pace
  timed     - Score as much as you can before the clock runs out
  hardcore  - Move before the countdown expires or start over
  infinite  - No timer, the game never ends

Available commands:
  menu     - Interactive mode picker (default)
  play     - Play a specific mode directly
  modes    - Show all modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers

Examples:
  t2048
  t2048 play timed
  t2048 play hardcore --difficulty hard
  t2048 serve --ssh :2222
  t2048 web --addr :8080
  t2048 scores classic`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return loadRules()
	},
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// loadRules resolves the rules from --config and --difficulty and installs
// them for every session this process creates.
func loadRules() error {
	rules, err := resolveRules(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	t2048.SetRules(rules)
	return nil
}

func resolveRules(path, difficulty string) (config.GameConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	rules, err := config.Load(path)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&rules, preset)

	if err := rules.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return rules, nil
}

// newLogger creates the process logger.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openStore opens the scores database. Failure is not fatal: the game
// runs without recording scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// localRuntime builds the runtime config for the current terminal.
func localRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
