package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/dateparse"
	"github.com/dvora/yoman/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	Example: `  yoman add "Buy milk"
  yoman add "Pack bags" --date tomorrow
  yoman add "Dentist" --date 2026-09-15 --desc "Bring referral"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		desc, _ := cmd.Flags().GetString("desc")
		dateStr, _ := cmd.Flags().GetString("date")

		var date *time.Time
		if dateStr != "" {
			parsed, err := dateparse.ParseDate(dateStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			date = &parsed
		}

		engine := newEngine()
		if err := engine.AddTask(title, desc, date); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("added %q", title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("desc", "", "Task description (markdown)")
	addCmd.Flags().String("date", "", "Day for the task (today, tomorrow, +3d, 2026-09-15)")
}
