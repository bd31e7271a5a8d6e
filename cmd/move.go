package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/dateparse"
	"github.com/dvora/yoman/internal/output"
)

var moveCmd = &cobra.Command{
	Use:   "move [task-id] [date]",
	Short: "Move a task to another day",
	Long: `Move a task to the day for the given date. The target day must
already exist; a task move never creates days.`,
	Args:    cobra.ExactArgs(2),
	Example: `  yoman move tk-1a2b3c4d tomorrow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID := args[0]

		date, err := dateparse.ParseDate(args[1])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		engine := newEngine()

		want := date.Format("2006-01-02")
		toDayID := ""
		for _, d := range engine.Days() {
			if d.Date.Format("2006-01-02") == want {
				toDayID = d.ID
				break
			}
		}
		if toDayID == "" {
			err := fmt.Errorf("no day exists on %s (add a task there first)", want)
			output.Error("%v", err)
			return err
		}

		if err := engine.MoveTask(taskID, toDayID); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("%s moved to %s", taskID, want)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
