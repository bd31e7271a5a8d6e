package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/dateparse"
	"github.com/dvora/yoman/internal/models"
	"github.com/dvora/yoman/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List days with their notes, tasks and dvorush checklists",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		ids, _ := cmd.Flags().GetBool("ids")

		engine := newEngine()
		days := engine.Days()

		if dateStr != "" {
			date, err := dateparse.ParseDate(dateStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			want := date.Format("2006-01-02")
			var filtered []models.Day
			for _, d := range days {
				if d.Date.Format("2006-01-02") == want {
					filtered = append(filtered, d)
				}
			}
			days = filtered
		}

		if len(days) == 0 {
			output.Info("no days")
			return nil
		}

		for i := range days {
			fmt.Print(output.FormatDay(&days[i]))
			if ids {
				printIDs(&days[i])
			}
			fmt.Println()
		}
		return nil
	},
}

// printIDs lists the raw ids needed by complete/delete/move/dvorush
func printIDs(day *models.Day) {
	output.Info("  day %s", day.ID)
	for i := range day.Tasks {
		output.Info("    %s", output.TaskOneLiner(&day.Tasks[i]))
	}
	for i := range day.Dvorush {
		output.Info("    %s %q", day.Dvorush[i].ID, day.Dvorush[i].Title)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("date", "", "Only show this day (today, tomorrow, 2026-09-15)")
	listCmd.Flags().Bool("ids", false, "Show day and task ids")
}
