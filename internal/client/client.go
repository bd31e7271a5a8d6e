// Package client is the HTTP adapter for the yoman day server. Every
// mutation returns success or failure only; callers refetch the full day
// list after a successful write instead of patching local state.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dvora/yoman/internal/models"
)

// Error categories. Fetch failures are swallowed by the cache layer
// (fail-soft); mutation failures are surfaced to the user.
var (
	ErrFetchFailed    = errors.New("fetch failed")
	ErrMutationFailed = errors.New("mutation failed")
)

// Client is an HTTP client for the yoman server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// addTaskRequest is the body for POST /api/add-task.
type addTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// addDayNoteRequest is the body for POST /api/day.
type addDayNoteRequest struct {
	Note string `json:"note"`
}

// updateTaskRequest is the body for PUT /api/update-task.
type updateTaskRequest struct {
	DayID       string  `json:"dayId"`
	TaskID      string  `json:"taskId"`
	Completed   *bool   `json:"completed,omitempty"`
	Description *string `json:"description,omitempty"`
}

// updateDayRequest is the body for PUT /api/update-day.
type updateDayRequest struct {
	DayID string `json:"dayId"`
	Note  string `json:"note"`
}

// deleteTaskRequest is the body for DELETE /api/delete-task.
type deleteTaskRequest struct {
	DayID  string `json:"dayId"`
	TaskID string `json:"taskId"`
}

// moveTaskRequest is the body for POST /api/move-task.
type moveTaskRequest struct {
	FromDayID string `json:"fromDayId"`
	TaskID    string `json:"taskId"`
	ToDayID   string `json:"toDayId"`
}

// dvorushRequest is the body for PUT /api/dvorush.
type dvorushRequest struct {
	DayID     string `json:"dayId"`
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
}

// ListDays fetches every day, oldest first (the server's natural order).
func (c *Client) ListDays() ([]models.Day, error) {
	var days []models.Day
	if err := c.do("GET", "/api/days", nil, &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return days, nil
}

// AddTask creates a task. A nil date targets today's day.
func (c *Client) AddTask(title, description string, date *time.Time) error {
	req := addTaskRequest{Title: title, Description: description}
	if date != nil {
		req.Date = date.Format(time.RFC3339)
	}
	return c.mutate("POST", "/api/add-task", req)
}

// AddDayNote creates today's day if needed and appends the note to it.
func (c *Client) AddDayNote(note string) error {
	return c.mutate("POST", "/api/day", addDayNoteRequest{Note: note})
}

// UpdateTask applies a partial update to a task's completed/description
// fields.
func (c *Client) UpdateTask(dayID, taskID string, upd models.TaskUpdate) error {
	return c.mutate("PUT", "/api/update-task", updateTaskRequest{
		DayID:       dayID,
		TaskID:      taskID,
		Completed:   upd.Completed,
		Description: upd.Description,
	})
}

// UpdateDayNote replaces a day's note.
func (c *Client) UpdateDayNote(dayID, note string) error {
	return c.mutate("PUT", "/api/update-day", updateDayRequest{DayID: dayID, Note: note})
}

// DeleteTask removes a task from its day.
func (c *Client) DeleteTask(dayID, taskID string) error {
	return c.mutate("DELETE", "/api/delete-task", deleteTaskRequest{DayID: dayID, TaskID: taskID})
}

// MoveTask relocates a task to another day. The server is the sole arbiter
// of the move; callers refetch rather than splicing locally.
func (c *Client) MoveTask(fromDayID, taskID, toDayID string) error {
	return c.mutate("POST", "/api/move-task", moveTaskRequest{
		FromDayID: fromDayID,
		TaskID:    taskID,
		ToDayID:   toDayID,
	})
}

// SetDvorushCompletion toggles a dvorush task's completion flag.
func (c *Client) SetDvorushCompletion(dayID, taskID string, completed bool) error {
	return c.mutate("PUT", "/api/dvorush", dvorushRequest{
		DayID:     dayID,
		TaskID:    taskID,
		Completed: completed,
	})
}

// Health hits /healthz to verify the server is reachable.
func (c *Client) Health() error {
	return c.do("GET", "/healthz", nil, nil)
}

// apiError is the standard error body from the server.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps the server's error envelope.
type errorResponse struct {
	Error apiError `json:"error"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

// mutate executes a write and wraps any failure as a MutationFailed.
func (c *Client) mutate(method, path string, body any) error {
	if err := c.do(method, path, body, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}
	return nil
}

// do executes an HTTP request against the server, decoding a JSON body into
// result when provided.
func (c *Client) do(method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var envelope errorResponse
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error.Code != "" {
			return &envelope.Error
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
