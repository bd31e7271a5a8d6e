package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/client"
	"github.com/dvora/yoman/internal/config"
	"github.com/dvora/yoman/internal/models"
	"github.com/dvora/yoman/internal/planner"
)

var (
	version   string
	serverURL string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "yoman",
	Short: "Daily planner with tasks, notes and a dvorush checklist",
	Long: `yoman - A daily planner CLI and TUI.

Each day holds a free-text note, a task list and a recurring dvorush
checklist, with Hebrew calendar dates alongside the Gregorian ones.
Running yoman without a subcommand opens the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server URL (overrides config)")
	rootCmd.Flags().Duration("interval", 5*time.Second, "TUI refresh interval")
}

// loadConfig reads the client config from the home directory, falling back
// to defaults when anything goes wrong. The --server flag wins.
func loadConfig() *models.Config {
	cfg := &models.Config{ServerURL: config.DefaultServerURL}
	if home, err := os.UserHomeDir(); err == nil {
		if loaded, err := config.Load(home); err == nil {
			cfg = loaded
		}
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	return cfg
}

// buildEngine constructs a planner engine over an HTTP client for the
// configured server.
func buildEngine(cfg *models.Config) *planner.Engine {
	var opts []planner.Option
	if cfg.CelebrationMS > 0 {
		opts = append(opts, planner.WithCelebrationDuration(time.Duration(cfg.CelebrationMS)*time.Millisecond))
	}
	return planner.New(client.New(cfg.ServerURL), opts...)
}

// newEngine builds an engine and performs the initial snapshot fetch.
func newEngine() *planner.Engine {
	engine := buildEngine(loadConfig())
	engine.Refresh()
	return engine
}
