package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// refreshData returns a command that replaces the engine snapshot
func (m Model) refreshData() tea.Cmd {
	engine := m.Engine
	return func() tea.Msg {
		engine.Refresh()
		return RefreshedMsg{Timestamp: time.Now()}
	}
}

// runAction performs a mutating engine call off the update loop and reports
// the outcome
func runAction(status string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return ActionDoneMsg{Err: err}
		}
		return ActionDoneMsg{Status: status}
	}
}

// toggleDvorush flips a dvorush task's completion and reports it separately
// so the celebration timer can be armed on completion
func (m Model) toggleDvorush(taskID string, completed bool) tea.Cmd {
	engine := m.Engine
	return func() tea.Msg {
		err := engine.ToggleDvorush(taskID, completed)
		return DvorushToggledMsg{TaskID: taskID, Completed: completed, Err: err}
	}
}

// expireCelebration schedules the end of a celebration window
func (m Model) expireCelebration(taskID string) tea.Cmd {
	return tea.Tick(m.Engine.CelebrationDuration(), func(time.Time) tea.Msg {
		return CelebrationExpiredMsg{TaskID: taskID}
	})
}

// clearStatusAfter clears the status bar after a short delay
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
