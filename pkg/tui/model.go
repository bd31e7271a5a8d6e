// Package tui is the Bubble Tea day-planner interface. It renders the
// engine's snapshot as a scrollable list of day cards and funnels every
// keystroke through the planner engine, which owns all client-side state.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dvora/yoman/internal/models"
	"github.com/dvora/yoman/internal/planner"
)

// DefaultRefreshInterval is how often the snapshot is re-fetched
const DefaultRefreshInterval = 5 * time.Second

// Model is the main Bubble Tea model for the planner TUI
type Model struct {
	Engine *planner.Engine

	// Window dimensions
	Width  int
	Height int

	// Flattened rows for selection
	Rows   []Row
	Cursor int
	Scroll int

	// Configuration
	RefreshInterval time.Duration
	LastRefresh     time.Time

	// Status message (temporary feedback, e.g. "task added")
	StatusMessage string
	StatusIsError bool

	// Add-task form modal state
	FormOpen  bool
	FormState *FormState

	// Inline day note editing
	NoteEditing bool
	NoteDayID   string
	NoteInput   textinput.Model

	// Task description editing (engine holds the pending value)
	DescInput textarea.Model

	// Version string for the footer
	Version string
}

// NewModel creates a new planner model around an engine
func NewModel(engine *planner.Engine, interval time.Duration, version string) Model {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	noteInput := textinput.New()
	noteInput.Placeholder = "day note"
	noteInput.CharLimit = 500

	descInput := textarea.New()
	descInput.Placeholder = "markdown description"
	descInput.SetHeight(4)

	return Model{
		Engine:          engine,
		RefreshInterval: interval,
		NoteInput:       noteInput,
		DescInput:       descInput,
		Version:         version,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshData(), m.scheduleTick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle TickMsg before any UI-mode interceptions to keep the poll
	// chain alive. An open form would otherwise swallow the tick and kill
	// the periodic refresh cycle.
	if _, ok := msg.(TickMsg); ok {
		return m, tea.Batch(m.refreshData(), m.scheduleTick())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.DescInput.SetWidth(contentWidth(m.Width) - 8)
		return m, nil

	case RefreshedMsg:
		m.LastRefresh = msg.Timestamp
		m.syncRows()
		return m, nil

	case ActionDoneMsg:
		if msg.Err != nil {
			m.StatusMessage = msg.Err.Error()
			m.StatusIsError = true
		} else {
			m.StatusMessage = msg.Status
			m.StatusIsError = false
		}
		cmds := []tea.Cmd{m.refreshData()}
		if m.StatusMessage != "" {
			cmds = append(cmds, clearStatusAfter(3*time.Second))
		}
		return m, tea.Batch(cmds...)

	case DvorushToggledMsg:
		if msg.Err != nil {
			m.StatusMessage = msg.Err.Error()
			m.StatusIsError = true
			return m, tea.Batch(m.refreshData(), clearStatusAfter(3*time.Second))
		}
		if msg.Completed {
			return m, tea.Batch(m.refreshData(), m.expireCelebration(msg.TaskID))
		}
		return m, m.refreshData()

	case CelebrationExpiredMsg:
		m.Engine.ExpireCelebration(msg.TaskID)
		return m, nil

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
		return m, nil
	}

	// Form mode: forward all messages to the huh form first
	if m.FormOpen && m.FormState != nil && m.FormState.Form != nil {
		return m.handleFormUpdate(msg)
	}

	// Inline note editing
	if m.NoteEditing {
		return m.handleNoteUpdate(msg)
	}

	// Description editing
	if _, editing := m.Engine.EditingTaskID(); editing {
		return m.handleDescUpdate(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// syncRows rebuilds the flattened row list from the current snapshot,
// keeping the cursor on the same row when it survived the refresh.
func (m *Model) syncRows() {
	var prev *Row
	if m.Cursor >= 0 && m.Cursor < len(m.Rows) {
		r := m.Rows[m.Cursor]
		prev = &r
	}

	m.Rows = buildRows(m.Engine.Days())

	if prev != nil {
		for i, r := range m.Rows {
			if r.Kind == prev.Kind && r.DayID == prev.DayID && r.TaskID == prev.TaskID {
				m.Cursor = i
				return
			}
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if len(m.Rows) == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if !m.Rows[m.Cursor].Selectable() {
		m.moveCursor(1)
	}
}

// moveCursor advances to the next selectable row in the given direction
func (m *Model) moveCursor(dir int) {
	for i := m.Cursor + dir; i >= 0 && i < len(m.Rows); i += dir {
		if m.Rows[i].Selectable() {
			m.Cursor = i
			return
		}
	}
}

func (m *Model) currentRow() (Row, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return Row{}, false
	}
	return m.Rows[m.Cursor], true
}

// handleKey processes key input in the main list context
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		return m, m.refreshData()

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "a":
		m.FormOpen = true
		m.FormState = NewFormState()
		return m, m.FormState.Form.Init()

	case "enter":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		switch row.Kind {
		case RowTask:
			m.Engine.ToggleDisclosure(row.TaskID)
		case RowNote:
			return m.beginNoteEdit(row.DayID)
		}
		return m, nil

	case " ":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		switch row.Kind {
		case RowTask:
			task, _ := models.TaskByID(m.Engine.Days(), row.TaskID)
			if task == nil {
				return m, nil
			}
			return m, runAction("", func() error {
				return m.Engine.ToggleTask(row.TaskID, !task.Completed)
			})
		case RowDvorush:
			dv, _ := models.DvorushByID(m.Engine.Days(), row.TaskID)
			if dv == nil {
				return m, nil
			}
			return m, m.toggleDvorush(row.TaskID, !dv.Completed)
		}
		return m, nil

	case "e":
		row, ok := m.currentRow()
		if !ok || row.Kind != RowTask {
			return m, nil
		}
		if openID, open := m.Engine.OpenTaskID(); !open || openID != row.TaskID {
			m.Engine.ToggleDisclosure(row.TaskID)
		}
		if !m.Engine.BeginEdit() {
			return m, nil
		}
		m.DescInput.SetValue(m.Engine.TaskDescription(row.TaskID))
		m.DescInput.Focus()
		return m, textarea.Blink

	case "d":
		row, ok := m.currentRow()
		if !ok || row.Kind != RowTask {
			return m, nil
		}
		return m, runAction("task deleted", func() error {
			return m.Engine.DeleteTask(row.TaskID)
		})

	case "m":
		row, ok := m.currentRow()
		if !ok || row.Kind != RowTask {
			return m, nil
		}
		target := moveTargetDayID(m.Engine.Days(), row.TaskID)
		if target == "" {
			m.StatusMessage = "no newer day to move to"
			m.StatusIsError = true
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, runAction("task moved", func() error {
			return m.Engine.MoveTask(row.TaskID, target)
		})
	}

	return m, nil
}

// handleFormUpdate handles all messages while the add-task form is open
func (m Model) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.FormOpen = false
		m.FormState = nil
		return m, nil
	}

	form, cmd := m.FormState.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.FormState.Form = f
	}

	if m.FormState.Form.State == huh.StateCompleted {
		fs := m.FormState
		m.FormOpen = false
		m.FormState = nil
		date := fs.Date(time.Now())
		return m, runAction("task added", func() error {
			return m.Engine.AddTask(fs.Title, fs.Description, &date)
		})
	}

	return m, cmd
}

func (m Model) beginNoteEdit(dayID string) (tea.Model, tea.Cmd) {
	m.NoteEditing = true
	m.NoteDayID = dayID
	m.NoteInput.SetValue(m.Engine.DayNote(dayID))
	m.NoteInput.Focus()
	return m, textinput.Blink
}

// handleNoteUpdate handles messages while a day note is being edited
func (m Model) handleNoteUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.Engine.DiscardPending(m.NoteDayID)
			m.NoteEditing = false
			m.NoteInput.Blur()
			return m, nil
		case tea.KeyEnter:
			dayID := m.NoteDayID
			m.NoteEditing = false
			m.NoteInput.Blur()
			return m, runAction("note saved", func() error {
				return m.Engine.SaveDayNote(dayID)
			})
		}
	}

	var cmd tea.Cmd
	m.NoteInput, cmd = m.NoteInput.Update(msg)
	m.Engine.SetPending(m.NoteDayID, m.NoteInput.Value())
	return m, cmd
}

// handleDescUpdate handles messages while a task description is being edited
func (m Model) handleDescUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	taskID, _ := m.Engine.EditingTaskID()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.Engine.CancelEdit()
			m.DescInput.Blur()
			return m, nil
		case tea.KeyCtrlS:
			m.DescInput.Blur()
			return m, runAction("description saved", func() error {
				return m.Engine.SaveDescription()
			})
		}
	}

	var cmd tea.Cmd
	m.DescInput, cmd = m.DescInput.Update(msg)
	m.Engine.SetPending(taskID, m.DescInput.Value())
	return m, cmd
}
