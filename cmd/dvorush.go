package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/output"
)

var dvorushCmd = &cobra.Command{
	Use:   "dvorush [task-id]",
	Short: "Check off a dvorush task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		engine := newEngine()
		if err := engine.ToggleDvorush(args[0], !undo); err != nil {
			output.Error("%v", err)
			return err
		}
		if undo {
			output.Success("%s unchecked", args[0])
		} else {
			output.Success("%s checked off", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dvorushCmd)
	dvorushCmd.Flags().Bool("undo", false, "Uncheck the dvorush task instead")
}
