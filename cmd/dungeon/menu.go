package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the dungeon with a start menu",
	Long: `Start the dungeon in interactive menu mode.

Pick the campaign or a practice level, or open the scoreboard.
After a run you return to the menu.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Pick the practice level
  Enter/Space  - Start
  Tab          - Scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	dcfg, lvls, err := loadCampaign()
	if err != nil {
		return err
	}
	dungeon.SetLogger(logger)

	store := openStore(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg, len(lvls))
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := tui.CreateGame(tui.MenuItem{GameID: result.GameID, StartLevel: result.StartLevel})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, cfg, tui.Options{
			Store:          store,
			Logger:         logger,
			SwipeThreshold: dcfg.Interaction.SwipeThreshold,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
