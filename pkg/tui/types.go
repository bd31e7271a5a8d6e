package tui

import (
	"time"

	"github.com/dvora/yoman/internal/models"
)

// RowKind identifies what a flattened display row represents
type RowKind int

const (
	RowDayHeader RowKind = iota
	RowNote
	RowTask
	RowDvorushHeader
	RowDvorush
)

// Row is one line of the flattened day list. Task rows carry both the day
// and the task id so actions never have to search the snapshot.
type Row struct {
	Kind   RowKind
	DayID  string
	TaskID string
}

// Selectable reports whether the cursor may rest on this row
func (r Row) Selectable() bool {
	switch r.Kind {
	case RowTask, RowDvorush, RowNote:
		return true
	}
	return false
}

// buildRows flattens the day snapshot into display rows. Days arrive newest
// first; within a day the order is note, tasks, dvorush checklist.
func buildRows(days []models.Day) []Row {
	var rows []Row
	for i := range days {
		d := &days[i]
		rows = append(rows, Row{Kind: RowDayHeader, DayID: d.ID})
		rows = append(rows, Row{Kind: RowNote, DayID: d.ID})
		for j := range d.Tasks {
			rows = append(rows, Row{Kind: RowTask, DayID: d.ID, TaskID: d.Tasks[j].ID})
		}
		if len(d.Dvorush) > 0 {
			rows = append(rows, Row{Kind: RowDvorushHeader, DayID: d.ID})
			for j := range d.Dvorush {
				rows = append(rows, Row{Kind: RowDvorush, DayID: d.ID, TaskID: d.Dvorush[j].ID})
			}
		}
	}
	return rows
}

// moveTargetDayID returns the id of the day the task should move to: the
// next newer existing day. Days are newest first, so the target sits just
// before the task's day in the slice. Returns "" when the task is already
// on the newest day (or unknown).
func moveTargetDayID(days []models.Day, taskID string) string {
	for i := range days {
		if days[i].FindTask(taskID) != nil {
			if i == 0 {
				return ""
			}
			return days[i-1].ID
		}
	}
	return ""
}

// TickMsg triggers a periodic data refresh
type TickMsg time.Time

// RefreshedMsg signals that the engine snapshot was replaced
type RefreshedMsg struct {
	Timestamp time.Time
}

// ActionDoneMsg carries the outcome of a mutating action
type ActionDoneMsg struct {
	Status string // status bar text on success, "" for silent actions
	Err    error
}

// DvorushToggledMsg is sent after a dvorush completion toggle so the
// celebration expiry timer can be scheduled.
type DvorushToggledMsg struct {
	TaskID    string
	Completed bool
	Err       error
}

// CelebrationExpiredMsg ends a celebration window
type CelebrationExpiredMsg struct {
	TaskID string
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}
