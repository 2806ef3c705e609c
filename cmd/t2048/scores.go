package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and statistics for the specified mode.

Examples:
  t2048 scores classic
  t2048 scores timed --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode, err := t2048.ParseMode(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearScores(string(mode))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d %s scores.\n", n, mode)
		return nil
	}

	scores, err := store.TopScores(string(mode), 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", mode.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Tile", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	stats, err := store.Stats(string(mode))
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Best tile: %d\n",
		stats.GamesCount, stats.BestScore, stats.AvgScore, stats.BestTile)
	return nil
}
