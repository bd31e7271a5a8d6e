package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dvora/yoman/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func newTestServer(t *testing.T, status int, respond any) (*Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if respond != nil {
			_ = json.NewEncoder(w).Encode(respond)
		}
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL), rec
}

func TestListDays(t *testing.T) {
	days := []models.Day{
		{ID: "day-1", Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
		{ID: "day-2", Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
	}
	c, rec := newTestServer(t, http.StatusOK, days)

	got, err := c.ListDays()
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if rec.Method != "GET" || rec.Path != "/api/days" {
		t.Errorf("request = %s %s, want GET /api/days", rec.Method, rec.Path)
	}
	if len(got) != 2 || got[0].ID != "day-1" {
		t.Errorf("got %+v", got)
	}
}

func TestListDaysFailureIsFetchFailed(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listening
	c.HTTP.Timeout = 100 * time.Millisecond

	_, err := c.ListDays()
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}
}

func TestAddTaskBody(t *testing.T) {
	c, rec := newTestServer(t, http.StatusCreated, nil)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if err := c.AddTask("Buy milk", "two cartons", &date); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if rec.Method != "POST" || rec.Path != "/api/add-task" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if rec.Body["title"] != "Buy milk" || rec.Body["description"] != "two cartons" {
		t.Errorf("body = %v", rec.Body)
	}
	if rec.Body["date"] != date.Format(time.RFC3339) {
		t.Errorf("date = %v", rec.Body["date"])
	}
}

func TestAddTaskOmitsDateForToday(t *testing.T) {
	c, rec := newTestServer(t, http.StatusCreated, nil)

	if err := c.AddTask("Buy milk", "", nil); err != nil {
		t.Fatal(err)
	}
	if _, present := rec.Body["date"]; present {
		t.Errorf("nil date must be omitted, body = %v", rec.Body)
	}
}

func TestUpdateTaskPartialFields(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, nil)

	completed := true
	if err := c.UpdateTask("day-1", "tk-1", models.TaskUpdate{Completed: &completed}); err != nil {
		t.Fatal(err)
	}
	if rec.Method != "PUT" || rec.Path != "/api/update-task" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if rec.Body["dayId"] != "day-1" || rec.Body["taskId"] != "tk-1" {
		t.Errorf("body = %v", rec.Body)
	}
	if rec.Body["completed"] != true {
		t.Errorf("completed = %v", rec.Body["completed"])
	}
	// Untouched fields stay off the wire.
	if _, present := rec.Body["description"]; present {
		t.Errorf("description must be omitted, body = %v", rec.Body)
	}
}

func TestDeleteTask(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, nil)

	if err := c.DeleteTask("day-1", "tk-1"); err != nil {
		t.Fatal(err)
	}
	if rec.Method != "DELETE" || rec.Path != "/api/delete-task" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
}

func TestMoveTask(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, nil)

	if err := c.MoveTask("day-1", "tk-1", "day-2"); err != nil {
		t.Fatal(err)
	}
	if rec.Body["fromDayId"] != "day-1" || rec.Body["toDayId"] != "day-2" || rec.Body["taskId"] != "tk-1" {
		t.Errorf("body = %v", rec.Body)
	}
}

func TestSetDvorushCompletion(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, nil)

	if err := c.SetDvorushCompletion("day-1", "dv-1", true); err != nil {
		t.Fatal(err)
	}
	if rec.Method != "PUT" || rec.Path != "/api/dvorush" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if rec.Body["completed"] != true {
		t.Errorf("body = %v", rec.Body)
	}
}

func TestMutationFailureCategorized(t *testing.T) {
	c, _ := newTestServer(t, http.StatusNotFound, errorResponse{
		Error: apiError{Code: "not_found", Message: "no such task"},
	})

	err := c.DeleteTask("day-1", "tk-9")
	if !errors.Is(err, ErrMutationFailed) {
		t.Fatalf("err = %v, want ErrMutationFailed", err)
	}
	// The server's message survives for the status line.
	if got := err.Error(); !strings.Contains(got, "no such task") {
		t.Errorf("error text %q lacks server message", got)
	}
}

func TestUpdateDayNote(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, nil)

	if err := c.UpdateDayNote("day-1", "new plan"); err != nil {
		t.Fatal(err)
	}
	if rec.Method != "PUT" || rec.Path != "/api/update-day" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if rec.Body["note"] != "new plan" {
		t.Errorf("body = %v", rec.Body)
	}
}
