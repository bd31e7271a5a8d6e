package models

import (
	"time"
)

// Day is the aggregate root for one calendar date: a free-text note plus
// the primary task list and the secondary dvorush list.
type Day struct {
	ID      string        `json:"id"`
	Date    time.Time     `json:"date"`
	Notes   string        `json:"notes,omitempty"`
	Tasks   []Task        `json:"tasks"`
	Dvorush []DvorushTask `json:"dvorush"`
}

// Task is a primary checklist item. A task id is unique across the whole
// system and belongs to exactly one day at a time.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DvorushTask is a secondary checklist item. Only its completion flag is
// mutable through the API; creation and deletion are server-side concerns.
type DvorushTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// TaskUpdate is a partial update over a task's mutable fields. Nil fields
// are left untouched.
type TaskUpdate struct {
	Completed   *bool   `json:"completed,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Config holds client-side configuration.
type Config struct {
	ServerURL     string `json:"server_url,omitempty"`
	CelebrationMS int    `json:"celebration_ms,omitempty"`
}

// FindTask returns the task with the given id, or nil.
func (d *Day) FindTask(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// FindDvorush returns the dvorush task with the given id, or nil.
func (d *Day) FindDvorush(id string) *DvorushTask {
	for i := range d.Dvorush {
		if d.Dvorush[i].ID == id {
			return &d.Dvorush[i]
		}
	}
	return nil
}

// DayByID returns the day with the given id, or nil.
func DayByID(days []Day, id string) *Day {
	for i := range days {
		if days[i].ID == id {
			return &days[i]
		}
	}
	return nil
}

// TaskByID locates a task across all days, returning the task and its
// containing day. Returns nils when the id is unknown.
func TaskByID(days []Day, taskID string) (*Task, *Day) {
	for i := range days {
		if t := days[i].FindTask(taskID); t != nil {
			return t, &days[i]
		}
	}
	return nil, nil
}

// DvorushByID locates a dvorush task across all days, returning it and its
// containing day. Returns nils when the id is unknown.
func DvorushByID(days []Day, taskID string) (*DvorushTask, *Day) {
	for i := range days {
		if t := days[i].FindDvorush(taskID); t != nil {
			return t, &days[i]
		}
	}
	return nil, nil
}
