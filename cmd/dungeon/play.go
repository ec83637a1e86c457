package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/registry"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the dungeon",
	Long: `Start a run through the dungeon.

Without --level the run is the ranked campaign starting at level 1.
With --level the run is an unranked practice run starting at that level.

Controls:
  Left/A, Right/D   - Walk (hold to keep walking)
  Up/W/Space        - Use a door or open a chest
  Mouse             - Swipe left/right to walk, click to use
  P/Esc             - Pause
  R                 - Restart the level, or the run after the end
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  dungeon play
  dungeon play --level 4
  dungeon play --config ./my-dungeon.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Practice from this level (unranked)")
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	gameID := "dungeon"
	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > len(lvls) {
			return fmt.Errorf("level %d out of range, have %d levels", flagLevel, len(lvls))
		}
		gameID = "dungeon_practice"
		dungeon.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:          store,
		Logger:         logger,
		SwipeThreshold: dcfg.Interaction.SwipeThreshold,
	})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// runtimeConfig sizes the simulation to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// fileLogger logs to ~/.dungeon/dungeon.log, since the alt screen owns the
// terminal during play.
func fileLogger() (*log.Logger, func(), error) {
	f, err := tui.OpenLogFile("")
	if err != nil {
		return nil, nil, err
	}
	logger, err := tui.NewLogger(f, logLevel(), "dungeon")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	logDotEnv(logger)
	return logger, func() { f.Close() }, nil
}

// openStore opens the runs database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
