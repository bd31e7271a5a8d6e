package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		if err := engine.DeleteTask(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("%s deleted", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
