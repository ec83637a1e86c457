package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 campaign runs.

Runs rank by score, then fewer resets, then faster time. Practice runs
are not recorded.

Examples:
  dungeon scores
  dungeon scores --interactive
  dungeon scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the scoreboard view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded campaign runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns("dungeon"); err != nil {
			return err
		}
		fmt.Println("Runs cleared.")
		return nil
	}

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	runs, err := store.TopRuns("dungeon", 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("Best runs - Dungeon")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dungeon play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Levels", "Resets", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "------", "------", "----", "----")
	for i, r := range runs {
		levels := fmt.Sprintf("%d", r.LevelsCleared)
		if r.Completed {
			levels += "*"
		}
		secs := r.Ticks / max(flagFPS, 1)
		fmt.Printf("  %-4d  %-6d  %-6s  %-6d  %-7s  %s\n",
			i+1, r.Score, levels, r.Resets, fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestRun("dungeon"); err == nil && best != nil {
		fmt.Printf("Best: %d (run %s)\n", best.Score, best.RunID)
	}
	if stats, err := store.Stats("dungeon"); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d  Escaped: %d  Best: %d  Resets: %d\n",
			stats.Runs, stats.Completed, stats.HighScore, stats.TotalResets)
	}
	fmt.Println("* escaped the dungeon")
	return nil
}
