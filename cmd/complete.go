package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/output"
)

var completeCmd = &cobra.Command{
	Use:     "complete [task-id]",
	Aliases: []string{"done"},
	Short:   "Mark a task completed",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		engine := newEngine()
		if err := engine.ToggleTask(args[0], !undo); err != nil {
			output.Error("%v", err)
			return err
		}
		if undo {
			output.Success("%s reopened", args[0])
		} else {
			output.Success("%s completed", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().Bool("undo", false, "Mark the task incomplete instead")
}
