package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/config"
	"github.com/dvora/yoman/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change client configuration",
	Example: `  yoman config
  yoman config --set-server http://planner.local:3001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		cfg, err := config.Load(home)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		newServer, _ := cmd.Flags().GetString("set-server")
		celebrationMS, _ := cmd.Flags().GetInt("set-celebration-ms")

		if newServer != "" || celebrationMS > 0 {
			if newServer != "" {
				cfg.ServerURL = newServer
			}
			if celebrationMS > 0 {
				cfg.CelebrationMS = celebrationMS
			}
			if err := config.Save(home, cfg); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("config saved")
			return nil
		}

		output.Info("server: %s", cfg.ServerURL)
		if cfg.CelebrationMS > 0 {
			output.Info("celebration: %dms", cfg.CelebrationMS)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-server", "", "Persist a new server URL")
	configCmd.Flags().Int("set-celebration-ms", 0, "Persist the dvorush celebration duration in milliseconds")
}
