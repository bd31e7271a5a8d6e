// Package output provides styled terminal output helpers (success, error,
// warning, day and task formatting) using lipgloss.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dvora/yoman/internal/hebdate"
	"github.com/dvora/yoman/internal/models"
)

var (
	// Styles
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true)
	hebrewStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	noteLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Checkbox renders a completion checkbox
func Checkbox(completed bool) string {
	if completed {
		return successStyle.Render("[x]")
	}
	return "[ ]"
}

// FormatDayHeader formats a day heading with its Gregorian and Hebrew dates
// e.g. "Monday, Aug 31 2026  י״ח באלול תשפ״ו"
func FormatDayHeader(d *models.Day) string {
	header := titleStyle.Render(d.Date.Format("Monday, Jan 2 2006"))
	if label := hebdate.Label(d.Date); label != "" {
		header += "  " + hebrewStyle.Render(label)
	}
	return header
}

// FormatTaskLine formats a task as a single checklist line
func FormatTaskLine(t *models.Task) string {
	title := t.Title
	if t.Completed {
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s", Checkbox(t.Completed), title)
	if t.Description != "" {
		line += subtleStyle.Render("  (" + firstLine(t.Description) + ")")
	}
	return line
}

// FormatDvorushLine formats a dvorush checklist line
func FormatDvorushLine(t *models.DvorushTask) string {
	title := t.Title
	if t.Completed {
		title = doneStyle.Render(title)
	}
	return fmt.Sprintf("%s %s", Checkbox(t.Completed), title)
}

// FormatDay formats a whole day: header, note, tasks and dvorush checklist
func FormatDay(d *models.Day) string {
	var sb strings.Builder
	sb.WriteString(FormatDayHeader(d))
	sb.WriteString("\n")

	if d.Notes != "" {
		for _, line := range strings.Split(d.Notes, "\n") {
			sb.WriteString("  " + noteLineStyle.Render(line) + "\n")
		}
	}

	for i := range d.Tasks {
		sb.WriteString("  " + FormatTaskLine(&d.Tasks[i]) + "\n")
	}
	if len(d.Tasks) == 0 {
		sb.WriteString("  " + subtleStyle.Render("no tasks") + "\n")
	}

	if len(d.Dvorush) > 0 {
		sb.WriteString("  " + subtleStyle.Render("dvorush:") + "\n")
		for i := range d.Dvorush {
			sb.WriteString("    " + FormatDvorushLine(&d.Dvorush[i]) + "\n")
		}
	}

	return sb.String()
}

// TaskOneLiner returns a concise single-line task representation
// Format: `tk-abc1 "Title" [x]`
func TaskOneLiner(t *models.Task) string {
	return fmt.Sprintf("%s %q %s", t.ID, t.Title, Checkbox(t.Completed))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
