package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dvora/yoman/pkg/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the planner TUI",
	Long: `Launch the full-screen planner TUI showing day cards newest first.

Key bindings:
  j/k, ↑/↓  Move between tasks and notes
  Enter     Open/close a task, or edit the day note
  e         Edit the open task's description
  Space     Toggle completion
  a         Add a task
  d         Delete the selected task
  m         Move the selected task to the next day
  r         Force refresh
  q         Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd)
	},
}

func runUI(cmd *cobra.Command) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval < 500*time.Millisecond {
		interval = tui.DefaultRefreshInterval
	}

	engine := buildEngine(loadConfig())

	model := tui.NewModel(engine, interval, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().Duration("interval", 5*time.Second, "Refresh interval")
}
