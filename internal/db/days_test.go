package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dvora/yoman/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "yoman.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestAddTaskCreatesDay(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	taskID, err := database.AddTask(date, "Buy milk", "", nil)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if taskID == "" {
		t.Fatal("AddTask() returned empty task id")
	}

	days, err := database.ListDays()
	if err != nil {
		t.Fatalf("ListDays() error = %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if !days[0].Date.Equal(date) {
		t.Errorf("day date = %v, want %v", days[0].Date, date)
	}
	if len(days[0].Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(days[0].Tasks))
	}
	task := days[0].Tasks[0]
	if task.Title != "Buy milk" || task.Completed || task.Description != "" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestAddTaskReusesExistingDay(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	if _, err := database.AddTask(date, "first", "", nil); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := database.AddTask(date, "second", "", nil); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	days, _ := database.ListDays()
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if len(days[0].Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(days[0].Tasks))
	}
	if days[0].Tasks[0].Title != "first" || days[0].Tasks[1].Title != "second" {
		t.Errorf("tasks out of insertion order: %+v", days[0].Tasks)
	}
}

func TestListDaysOldestFirst(t *testing.T) {
	database := openTestDB(t)
	later := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	if _, err := database.AddTask(later, "later", "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := database.AddTask(earlier, "earlier", "", nil); err != nil {
		t.Fatal(err)
	}

	days, _ := database.ListDays()
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if !days[0].Date.Before(days[1].Date) {
		t.Errorf("days not oldest-first: %v, %v", days[0].Date, days[1].Date)
	}
}

func TestNewDaySeedsDvorush(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	seed := []string{"Morning walk", "Water plants"}

	if _, err := database.GetOrCreateDay(date, seed); err != nil {
		t.Fatalf("GetOrCreateDay() error = %v", err)
	}
	// second call must not reseed
	if _, err := database.GetOrCreateDay(date, seed); err != nil {
		t.Fatalf("GetOrCreateDay() error = %v", err)
	}

	days, _ := database.ListDays()
	if len(days[0].Dvorush) != 2 {
		t.Fatalf("got %d dvorush tasks, want 2", len(days[0].Dvorush))
	}
	if days[0].Dvorush[0].Title != "Morning walk" {
		t.Errorf("dvorush[0].Title = %q", days[0].Dvorush[0].Title)
	}
	if days[0].Dvorush[0].Completed {
		t.Error("seeded dvorush task should start incomplete")
	}
}

func TestAppendDayNote(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	if _, err := database.AppendDayNote(date, "first line", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := database.AppendDayNote(date, "second line", nil); err != nil {
		t.Fatal(err)
	}

	days, _ := database.ListDays()
	if days[0].Notes != "first line\nsecond line" {
		t.Errorf("notes = %q, want appended lines", days[0].Notes)
	}
}

func TestUpdateDayNoteReplaces(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	dayID, err := database.AppendDayNote(date, "old note", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := database.UpdateDayNote(dayID, "new note"); err != nil {
		t.Fatalf("UpdateDayNote() error = %v", err)
	}

	days, _ := database.ListDays()
	if days[0].Notes != "new note" {
		t.Errorf("notes = %q, want %q", days[0].Notes, "new note")
	}

	if err := database.UpdateDayNote("day-missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateDayNote(missing) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateTaskPartialFields(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	taskID, err := database.AddTask(date, "task", "original", nil)
	if err != nil {
		t.Fatal(err)
	}
	days, _ := database.ListDays()
	dayID := days[0].ID

	completed := true
	if err := database.UpdateTask(dayID, taskID, models.TaskUpdate{Completed: &completed}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	days, _ = database.ListDays()
	if !days[0].Tasks[0].Completed {
		t.Error("task not marked completed")
	}
	if days[0].Tasks[0].Description != "original" {
		t.Errorf("description changed: %q", days[0].Tasks[0].Description)
	}

	desc := "revised"
	if err := database.UpdateTask(dayID, taskID, models.TaskUpdate{Description: &desc}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	days, _ = database.ListDays()
	if days[0].Tasks[0].Description != "revised" {
		t.Errorf("description = %q, want %q", days[0].Tasks[0].Description, "revised")
	}
	if !days[0].Tasks[0].Completed {
		t.Error("completion reset by description update")
	}

	if err := database.UpdateTask("day-wrong", taskID, models.TaskUpdate{Description: &desc}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTask(wrong day) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	taskID, err := database.AddTask(date, "doomed", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	days, _ := database.ListDays()
	dayID := days[0].ID

	if err := database.DeleteTask(dayID, taskID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	days, _ = database.ListDays()
	if len(days[0].Tasks) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(days[0].Tasks))
	}

	if err := database.DeleteTask(dayID, taskID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTask(gone) error = %v, want ErrNotFound", err)
	}
}

func TestMoveTask(t *testing.T) {
	database := openTestDB(t)
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	taskID, err := database.AddTask(monday, "movable", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	toDayID, err := database.GetOrCreateDay(tuesday, nil)
	if err != nil {
		t.Fatal(err)
	}
	days, _ := database.ListDays()
	fromDayID := days[0].ID

	if err := database.MoveTask(fromDayID, taskID, toDayID); err != nil {
		t.Fatalf("MoveTask() error = %v", err)
	}

	days, _ = database.ListDays()
	if len(days[0].Tasks) != 0 {
		t.Errorf("source day still has %d tasks", len(days[0].Tasks))
	}
	if len(days[1].Tasks) != 1 {
		t.Fatalf("target day has %d tasks, want 1", len(days[1].Tasks))
	}

	// same-day move is a no-op
	if err := database.MoveTask(toDayID, taskID, toDayID); err != nil {
		t.Fatalf("MoveTask(same day) error = %v", err)
	}

	if err := database.MoveTask(toDayID, taskID, "day-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MoveTask(missing target) error = %v, want ErrNotFound", err)
	}
}

func TestSetDvorushCompletion(t *testing.T) {
	database := openTestDB(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	dayID, err := database.GetOrCreateDay(date, []string{"Stretch"})
	if err != nil {
		t.Fatal(err)
	}
	days, _ := database.ListDays()
	dvID := days[0].Dvorush[0].ID

	if err := database.SetDvorushCompletion(dayID, dvID, true); err != nil {
		t.Fatalf("SetDvorushCompletion() error = %v", err)
	}
	days, _ = database.ListDays()
	if !days[0].Dvorush[0].Completed {
		t.Error("dvorush task not marked completed")
	}

	if err := database.SetDvorushCompletion(dayID, "dv-missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetDvorushCompletion(missing) error = %v, want ErrNotFound", err)
	}
}
