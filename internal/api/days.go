package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dvora/yoman/internal/db"
	"github.com/dvora/yoman/internal/models"
)

type addTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

type addDayNoteRequest struct {
	Note string `json:"note"`
}

type updateTaskRequest struct {
	DayID       string  `json:"dayId"`
	TaskID      string  `json:"taskId"`
	Completed   *bool   `json:"completed,omitempty"`
	Description *string `json:"description,omitempty"`
}

type updateDayRequest struct {
	DayID string `json:"dayId"`
	Note  string `json:"note"`
}

type deleteTaskRequest struct {
	DayID  string `json:"dayId"`
	TaskID string `json:"taskId"`
}

type moveTaskRequest struct {
	FromDayID string `json:"fromDayId"`
	TaskID    string `json:"taskId"`
	ToDayID   string `json:"toDayId"`
}

type dvorushRequest struct {
	DayID     string `json:"dayId"`
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.store.ListDays()
	if err != nil {
		slog.Error("list days", "err", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to list days")
		return
	}
	if days == nil {
		days = []models.Day{}
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "title is required")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "date must be RFC3339")
			return
		}
		date = parsed
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	taskID, err := s.store.AddTask(date, req.Title, req.Description, s.config.DvorushTitles)
	if err != nil {
		slog.Error("add task", "err", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to add task")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": taskID})
}

func (s *Server) handleAddDayNote(w http.ResponseWriter, r *http.Request) {
	var req addDayNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.Note == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "note is required")
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dayID, err := s.store.AppendDayNote(today, req.Note, s.config.DvorushTitles)
	if err != nil {
		slog.Error("add day note", "err", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to add note")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": dayID})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.DayID == "" || req.TaskID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "dayId and taskId are required")
		return
	}

	upd := models.TaskUpdate{Completed: req.Completed, Description: req.Description}
	if err := s.store.UpdateTask(req.DayID, req.TaskID, upd); err != nil {
		s.writeStoreError(w, "update task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpdateDayNote(w http.ResponseWriter, r *http.Request) {
	var req updateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.DayID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "dayId is required")
		return
	}

	if err := s.store.UpdateDayNote(req.DayID, req.Note); err != nil {
		s.writeStoreError(w, "update day note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	var req deleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.DayID == "" || req.TaskID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "dayId and taskId are required")
		return
	}

	if err := s.store.DeleteTask(req.DayID, req.TaskID); err != nil {
		s.writeStoreError(w, "delete task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	var req moveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.FromDayID == "" || req.TaskID == "" || req.ToDayID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "fromDayId, taskId and toDayId are required")
		return
	}

	if err := s.store.MoveTask(req.FromDayID, req.TaskID, req.ToDayID); err != nil {
		s.writeStoreError(w, "move task", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDvorush(w http.ResponseWriter, r *http.Request) {
	var req dvorushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.DayID == "" || req.TaskID == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "dayId and taskId are required")
		return
	}

	if err := s.store.SetDvorushCompletion(req.DayID, req.TaskID, req.Completed); err != nil {
		s.writeStoreError(w, "set dvorush completion", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "day or task not found")
		return
	}
	slog.Error(op, "err", err)
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to "+op)
}
