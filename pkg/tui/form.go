package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

var errTitleRequired = errors.New("title is required")

// When options for the add-task form
const (
	whenToday    = "today"
	whenTomorrow = "tomorrow"
)

// FormState holds the state for the add-task form modal
type FormState struct {
	Form *huh.Form

	// Bound form values
	Title       string
	Description string
	When        string
}

// NewFormState creates a new form state for adding a task
func NewFormState() *FormState {
	state := &FormState{
		When: whenToday,
	}
	state.buildForm()
	return state
}

// buildForm constructs the huh.Form based on current state
func (fs *FormState) buildForm() {
	whenOptions := []huh.Option[string]{
		huh.NewOption("Today", whenToday),
		huh.NewOption("Tomorrow", whenTomorrow),
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&fs.Title).
			Placeholder("Task title...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errTitleRequired
				}
				return nil
			}),
		huh.NewText().
			Title("Description").
			Value(&fs.Description).
			Placeholder("Optional markdown description...").
			Lines(3),
		huh.NewSelect[string]().
			Title("Day").
			Options(whenOptions...).
			Value(&fs.When),
	).Title("New Task")

	fs.Form = huh.NewForm(group)
	fs.Form.WithTheme(huh.ThemeDracula())
}

// Date resolves the selected day option to a concrete date
func (fs *FormState) Date(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if fs.When == whenTomorrow {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
