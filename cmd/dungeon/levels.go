package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate level files",
	Long: `Shows every level file in the configured level source and checks
that the campaign levels parse.

Levels come from levels.dir in the config (or DUNGEON_LEVELS_DIR), and
from the built-in set when neither is set.

Examples:
  dungeon levels
  DUNGEON_LEVELS_DIR=./my-levels dungeon levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadDungeon(flagConfig)
	if err != nil {
		return err
	}

	loader := levels.FromConfig(cfg.Levels)
	entries, err := loader.List()
	if err != nil {
		return err
	}

	fmt.Printf("Levels in %s:\n", loader.Source())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No level files found.")
	} else {
		fmt.Printf("  %-3s  %-16s  %-6s  %-6s  %s\n", "#", "File", "Size", "Chests", "Name")
		fmt.Printf("  %-3s  %-16s  %-6s  %-6s  %s\n", "-", "----", "----", "------", "----")
		for _, e := range entries {
			lvl, err := loader.Load(e.Number)
			if err != nil {
				fmt.Printf("  %-3d  %-16s  invalid: %v\n", e.Number, e.File, err)
				continue
			}
			size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
			fmt.Printf("  %-3d  %-16s  %-6s  %-6d  %s\n",
				e.Number, e.File, size, len(lvl.Layout.Chests), lvl.Name)
		}
	}

	fmt.Println()
	if _, err := loader.LoadAll(cfg.Levels.Count); err != nil {
		return fmt.Errorf("campaign of %d levels is not playable: %w", cfg.Levels.Count, err)
	}
	fmt.Printf("Campaign OK: %d levels.\n", cfg.Levels.Count)
	return nil
}
