package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dvora/yoman/internal/hebdate"
	"github.com/dvora/yoman/internal/models"
)

// contentWidth returns the usable width for day cards
func contentWidth(width int) int {
	if width <= 0 {
		return 80
	}
	if width > 110 {
		return 110
	}
	return width
}

// View implements tea.Model
func (m Model) View() string {
	if m.FormOpen && m.FormState != nil && m.FormState.Form != nil {
		return m.FormState.Form.View()
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	lines, cursorLine := m.renderRows()
	visible := m.visibleHeight()
	scroll := m.Scroll
	if cursorLine >= 0 {
		if cursorLine < scroll {
			scroll = cursorLine
		}
		if cursorLine >= scroll+visible {
			scroll = cursorLine - visible + 1
		}
	}
	if scroll > len(lines)-visible {
		scroll = len(lines) - visible
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	sb.WriteString(strings.Join(lines[scroll:end], "\n"))
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) visibleHeight() int {
	h := m.Height - 4 // header, footer, margins
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Render("yoman")
	refreshed := ""
	if !m.LastRefresh.IsZero() {
		refreshed = subtleStyle.Render("  refreshed " + m.LastRefresh.Format("15:04:05"))
	}
	return title + refreshed
}

// renderRows renders every flattened row, returning the line slice and the
// index of the line the cursor sits on (for scroll clamping).
func (m Model) renderRows() (lines []string, cursorLine int) {
	cursorLine = -1
	days := m.Engine.Days()
	if len(days) == 0 {
		return []string{subtleStyle.Render("  no days yet - add a task with 'a' (or the server is unreachable)")}, -1
	}

	celebratingID, _ := m.Engine.CelebratingID()
	openID, _ := m.Engine.OpenTaskID()
	_, editing := m.Engine.EditingTaskID()

	for i, row := range m.Rows {
		selected := i == m.Cursor
		day := models.DayByID(days, row.DayID)
		if day == nil {
			continue
		}

		switch row.Kind {
		case RowDayHeader:
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			header := dayHeaderStyle.Render(day.Date.Format("Monday, Jan 2 2006"))
			if label := hebdate.Label(day.Date); label != "" {
				header += "  " + hebrewDateStyle.Render(label)
			}
			lines = append(lines, header)

		case RowNote:
			line := m.renderNoteRow(day, selected)
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, line)

		case RowTask:
			task := day.FindTask(row.TaskID)
			if task == nil {
				continue
			}
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderTaskRow(task, selected))
			if task.ID == openID {
				lines = append(lines, m.renderDisclosure(task, editing)...)
			}

		case RowDvorushHeader:
			lines = append(lines, subtleStyle.Render("  dvorush"))

		case RowDvorush:
			dv := day.FindDvorush(row.TaskID)
			if dv == nil {
				continue
			}
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderDvorushRow(dv, selected, dv.ID == celebratingID))
		}
	}
	return lines, cursorLine
}

func (m Model) renderNoteRow(day *models.Day, selected bool) string {
	if m.NoteEditing && m.NoteDayID == day.ID {
		return "  " + m.NoteInput.View()
	}
	note := m.Engine.DayNote(day.ID)
	if note == "" {
		note = "(no note)"
	} else if i := strings.IndexByte(note, '\n'); i >= 0 {
		note = note[:i] + " ..."
	}
	line := "  " + noteStyle.Render(note)
	if selected {
		line = selectedRowStyle.Render("> " + note)
	}
	return line
}

func (m Model) renderTaskRow(task *models.Task, selected bool) string {
	check := "[ ]"
	title := task.Title
	if task.Completed {
		check = "[x]"
		title = completedStyle.Render(title)
	}
	marker := " "
	if m.Engine.IsTaskDirty(task.ID) {
		marker = dirtyStyle.Render("*")
	}
	line := fmt.Sprintf("  %s %s%s", check, title, marker)
	if selected {
		line = selectedRowStyle.Render(fmt.Sprintf("> %s %s%s", check, task.Title, marker))
	}
	return line
}

func (m Model) renderDvorushRow(dv *models.DvorushTask, selected, celebrating bool) string {
	check := "[ ]"
	if dv.Completed {
		check = "[x]"
	}
	line := fmt.Sprintf("    %s %s", check, dv.Title)
	switch {
	case celebrating:
		line = "    " + celebrateStyle.Render(fmt.Sprintf(" %s %s ", check, dv.Title))
	case selected:
		line = selectedRowStyle.Render(fmt.Sprintf("  > %s %s", check, dv.Title))
	case dv.Completed:
		line = "    " + completedStyle.Render(fmt.Sprintf("%s %s", check, dv.Title))
	}
	return line
}

// renderDisclosure renders the expanded panel under an open task: either
// the description edit textarea or the markdown-rendered description.
func (m Model) renderDisclosure(task *models.Task, editing bool) []string {
	var body string
	if editing {
		body = m.DescInput.View() + "\n" + helpStyle.Render("ctrl+s save - esc cancel")
	} else {
		desc := m.Engine.TaskDescription(task.ID)
		if desc == "" {
			body = subtleStyle.Render("no description - press 'e' to add one")
		} else {
			body = renderMarkdown(desc, contentWidth(m.Width)-10)
		}
	}
	return strings.Split(disclosureStyle.Render(body), "\n")
}

// renderMarkdown renders markdown with glamour, falling back to the raw
// text when rendering fails.
func renderMarkdown(text string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) renderFooter() string {
	if m.StatusMessage != "" {
		if m.StatusIsError {
			return statusErrorStyle.Render(m.StatusMessage)
		}
		return statusStyle.Render(m.StatusMessage)
	}
	help := "a add - enter open/note - e edit - space toggle - d delete - m move - r refresh - q quit"
	if m.Version != "" {
		help += "  v" + m.Version
	}
	return helpStyle.Render(help)
}
