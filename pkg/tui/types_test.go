package tui

import (
	"testing"
	"time"

	"github.com/dvora/yoman/internal/models"
)

func sampleDays() []models.Day {
	return []models.Day{
		{
			ID:   "day-2",
			Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Tasks: []models.Task{
				{ID: "tk-c", Title: "pack bags"},
			},
		},
		{
			ID:    "day-1",
			Date:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			Notes: "busy day",
			Tasks: []models.Task{
				{ID: "tk-a", Title: "buy milk"},
				{ID: "tk-b", Title: "call home", Completed: true},
			},
			Dvorush: []models.DvorushTask{
				{ID: "dv-a", Title: "morning walk"},
			},
		},
	}
}

func TestBuildRowsOrder(t *testing.T) {
	rows := buildRows(sampleDays())

	want := []Row{
		{Kind: RowDayHeader, DayID: "day-2"},
		{Kind: RowNote, DayID: "day-2"},
		{Kind: RowTask, DayID: "day-2", TaskID: "tk-c"},
		{Kind: RowDayHeader, DayID: "day-1"},
		{Kind: RowNote, DayID: "day-1"},
		{Kind: RowTask, DayID: "day-1", TaskID: "tk-a"},
		{Kind: RowTask, DayID: "day-1", TaskID: "tk-b"},
		{Kind: RowDvorushHeader, DayID: "day-1"},
		{Kind: RowDvorush, DayID: "day-1", TaskID: "dv-a"},
	}

	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestBuildRowsSkipsEmptyDvorush(t *testing.T) {
	days := []models.Day{{ID: "day-1", Tasks: []models.Task{{ID: "tk-a"}}}}
	for _, row := range buildRows(days) {
		if row.Kind == RowDvorushHeader || row.Kind == RowDvorush {
			t.Errorf("unexpected dvorush row for day without checklist: %+v", row)
		}
	}
}

func TestRowSelectable(t *testing.T) {
	cases := []struct {
		kind RowKind
		want bool
	}{
		{RowDayHeader, false},
		{RowNote, true},
		{RowTask, true},
		{RowDvorushHeader, false},
		{RowDvorush, true},
	}
	for _, tc := range cases {
		if got := (Row{Kind: tc.kind}).Selectable(); got != tc.want {
			t.Errorf("Selectable(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestMoveTargetDayID(t *testing.T) {
	days := sampleDays()

	// task on the older day moves to the newer one
	if got := moveTargetDayID(days, "tk-a"); got != "day-2" {
		t.Errorf("moveTargetDayID(tk-a) = %q, want %q", got, "day-2")
	}

	// task already on the newest day has nowhere to go
	if got := moveTargetDayID(days, "tk-c"); got != "" {
		t.Errorf("moveTargetDayID(tk-c) = %q, want empty", got)
	}

	// unknown task
	if got := moveTargetDayID(days, "tk-zz"); got != "" {
		t.Errorf("moveTargetDayID(unknown) = %q, want empty", got)
	}
}

func TestFormStateDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 16, 45, 0, 0, time.UTC)

	fs := NewFormState()
	if got := fs.Date(now); !got.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("today Date() = %v", got)
	}

	fs.When = whenTomorrow
	if got := fs.Date(now); !got.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tomorrow Date() = %v", got)
	}
}
