// dungeon is a terminal tile dungeon crawler.
//
// Usage:
//
//	dungeon play             - Play the campaign
//	dungeon play --level 3   - Practice from level 3 (unranked)
//	dungeon menu             - Start menu
//	dungeon levels           - List and validate level files
//	dungeon scores           - Show the best runs
//	dungeon serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.dungeon/runs.db)
//	--config <path>      - Use a custom dungeon.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/levels"
)

// EnvLogLevel sets the log level when --log-level is not given.
const EnvLogLevel = "DUNGEON_LOG_LEVEL"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// dotEnvErr is logged once the command has a logger.
	dotEnvErr error
)

func main() {
	dotEnvErr = loadDotEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon - a tile crawler in your terminal",
	Long: `Dungeon is a terminal tile crawler. Walk, fall and teleport through
each level, open every chest and escape through the red door before the
monsters the chests release catch you.

Available commands:
  play     - Play the campaign, or practice a single level
  menu     - Interactive start menu
  levels   - List and validate level files
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  dungeon play
  dungeon play --level 3
  dungeon levels
  dungeon serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dungeon/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// logLevel returns the flag value, falling back to the environment.
func logLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return os.Getenv(EnvLogLevel)
}

// loadCampaign loads the configuration and every campaign level, and hands
// both to the dungeon package for games created through the registry.
func loadCampaign() (config.DungeonConfig, []*levels.Level, error) {
	cfg, err := config.LoadDungeon(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	lvls, err := levels.FromConfig(cfg.Levels).LoadAll(cfg.Levels.Count)
	if err != nil {
		return cfg, nil, err
	}
	dungeon.SetConfig(cfg)
	dungeon.SetLevels(lvls)
	return cfg, lvls, nil
}

// loadDotEnv reads .env files into the environment. A missing file is
// not an error; real environment variables still apply.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func logDotEnv(logger *log.Logger) {
	if dotEnvErr != nil {
		logger.Debug("could not load .env", "err", dotEnvErr)
	}
}
