package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dungeon SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the start menu.
Runs are stored per server, so all users share the scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dungeon/host_key

Examples:
  dungeon serve                           # Listen on :23235 with auto-generated key
  dungeon serve --ssh :2222               # Listen on port 2222
  dungeon serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := tui.NewLogger(os.Stderr, logLevel(), "dungeon-ssh")
	if err != nil {
		return err
	}
	logDotEnv(logger)

	dcfg, lvls, err := loadCampaign()
	if err != nil {
		return err
	}
	dungeon.SetLogger(logger.WithPrefix("dungeon"))

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		DBPath:         flagDBPath,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:       flagFPS,
		LevelCount:     len(lvls),
		SwipeThreshold: dcfg.Interaction.SwipeThreshold,
		Logger:         logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting dungeon SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
