package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dvora/yoman/internal/models"
)

const dateLayout = "2006-01-02"

// ListDays returns every day, oldest first, with its tasks and dvorush
// tasks attached.
func (db *DB) ListDays() ([]models.Day, error) {
	rows, err := db.conn.Query(`SELECT id, date, notes FROM days ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	var days []models.Day
	index := make(map[string]int)
	for rows.Next() {
		var d models.Day
		var dateStr string
		if err := rows.Scan(&d.ID, &dateStr, &d.Notes); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		d.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse day date %q: %w", dateStr, err)
		}
		index[d.ID] = len(days)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachTasks(days, index); err != nil {
		return nil, err
	}
	if err := db.attachDvorush(days, index); err != nil {
		return nil, err
	}
	return days, nil
}

func (db *DB) attachTasks(days []models.Day, index map[string]int) error {
	rows, err := db.conn.Query(`
		SELECT id, day_id, title, description, completed, created_at, updated_at
		FROM tasks ORDER BY day_id, position, created_at`)
	if err != nil {
		return fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Task
		var dayID string
		var completed int
		if err := rows.Scan(&t.ID, &dayID, &t.Title, &t.Description, &completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return fmt.Errorf("scan task: %w", err)
		}
		t.Completed = completed != 0
		if i, ok := index[dayID]; ok {
			days[i].Tasks = append(days[i].Tasks, t)
		}
	}
	return rows.Err()
}

func (db *DB) attachDvorush(days []models.Day, index map[string]int) error {
	rows, err := db.conn.Query(`
		SELECT id, day_id, title, description, completed
		FROM dvorush_tasks ORDER BY day_id, position`)
	if err != nil {
		return fmt.Errorf("query dvorush tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.DvorushTask
		var dayID string
		var completed int
		if err := rows.Scan(&t.ID, &dayID, &t.Title, &t.Description, &completed); err != nil {
			return fmt.Errorf("scan dvorush task: %w", err)
		}
		t.Completed = completed != 0
		if i, ok := index[dayID]; ok {
			days[i].Dvorush = append(days[i].Dvorush, t)
		}
	}
	return rows.Err()
}

// GetOrCreateDay returns the day for the given calendar date, creating it
// (and seeding its dvorush checklist) when it does not exist yet.
func (db *DB) GetOrCreateDay(date time.Time, dvorushTitles []string) (string, error) {
	dateStr := date.Format(dateLayout)

	var id string
	err := db.conn.QueryRow(`SELECT id FROM days WHERE date = ?`, dateStr).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("lookup day: %w", err)
	}

	id, err = generateDayID()
	if err != nil {
		return "", err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO days (id, date) VALUES (?, ?)`, id, dateStr); err != nil {
		return "", fmt.Errorf("insert day: %w", err)
	}
	for pos, title := range dvorushTitles {
		dvID, err := generateDvorushID()
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(`INSERT INTO dvorush_tasks (id, day_id, title, position) VALUES (?, ?, ?, ?)`,
			dvID, id, title, pos)
		if err != nil {
			return "", fmt.Errorf("seed dvorush task: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// AddTask creates a task under the day for date, creating the day first if
// needed.
func (db *DB) AddTask(date time.Time, title, description string, dvorushTitles []string) (string, error) {
	dayID, err := db.GetOrCreateDay(date, dvorushTitles)
	if err != nil {
		return "", err
	}

	taskID, err := generateTaskID()
	if err != nil {
		return "", err
	}

	var pos int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM tasks WHERE day_id = ?`, dayID).Scan(&pos); err != nil {
		return "", fmt.Errorf("count tasks: %w", err)
	}

	now := time.Now().UTC()
	_, err = db.conn.Exec(`
		INSERT INTO tasks (id, day_id, title, description, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		taskID, dayID, title, description, pos, now, now)
	if err != nil {
		return "", fmt.Errorf("insert task: %w", err)
	}
	return taskID, nil
}

// AppendDayNote appends a note line to the day for date, creating the day
// if needed. An empty existing note is replaced rather than appended to.
func (db *DB) AppendDayNote(date time.Time, note string, dvorushTitles []string) (string, error) {
	dayID, err := db.GetOrCreateDay(date, dvorushTitles)
	if err != nil {
		return "", err
	}

	_, err = db.conn.Exec(`
		UPDATE days SET notes = CASE WHEN notes = '' THEN ? ELSE notes || char(10) || ? END
		WHERE id = ?`, note, note, dayID)
	if err != nil {
		return "", fmt.Errorf("append note: %w", err)
	}
	return dayID, nil
}

// UpdateTask applies the non-nil fields of upd to the task. The task must
// belong to dayID.
func (db *DB) UpdateTask(dayID, taskID string, upd models.TaskUpdate) error {
	if err := db.checkTaskOwner("tasks", dayID, taskID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if upd.Completed != nil {
		completed := 0
		if *upd.Completed {
			completed = 1
		}
		_, err := db.conn.Exec(`UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`,
			completed, now, taskID)
		if err != nil {
			return fmt.Errorf("update task completion: %w", err)
		}
	}
	if upd.Description != nil {
		_, err := db.conn.Exec(`UPDATE tasks SET description = ?, updated_at = ? WHERE id = ?`,
			*upd.Description, now, taskID)
		if err != nil {
			return fmt.Errorf("update task description: %w", err)
		}
	}
	return nil
}

// UpdateDayNote replaces the day's note text.
func (db *DB) UpdateDayNote(dayID, note string) error {
	res, err := db.conn.Exec(`UPDATE days SET notes = ? WHERE id = ?`, note, dayID)
	if err != nil {
		return fmt.Errorf("update day note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes the task. The task must belong to dayID.
func (db *DB) DeleteTask(dayID, taskID string) error {
	if err := db.checkTaskOwner("tasks", dayID, taskID); err != nil {
		return err
	}
	_, err := db.conn.Exec(`DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// MoveTask reassigns the task from one day to another. Moving a task to the
// day it is already on is a no-op.
func (db *DB) MoveTask(fromDayID, taskID, toDayID string) error {
	if err := db.checkTaskOwner("tasks", fromDayID, taskID); err != nil {
		return err
	}
	if fromDayID == toDayID {
		return nil
	}

	var exists int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM days WHERE id = ?`, toDayID).Scan(&exists); err != nil {
		return fmt.Errorf("lookup target day: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	var pos int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM tasks WHERE day_id = ?`, toDayID).Scan(&pos); err != nil {
		return fmt.Errorf("count target tasks: %w", err)
	}

	_, err := db.conn.Exec(`UPDATE tasks SET day_id = ?, position = ?, updated_at = ? WHERE id = ?`,
		toDayID, pos, time.Now().UTC(), taskID)
	if err != nil {
		return fmt.Errorf("move task: %w", err)
	}
	return nil
}

// SetDvorushCompletion sets the completion flag on a dvorush task. The task
// must belong to dayID.
func (db *DB) SetDvorushCompletion(dayID, taskID string, completed bool) error {
	if err := db.checkTaskOwner("dvorush_tasks", dayID, taskID); err != nil {
		return err
	}
	val := 0
	if completed {
		val = 1
	}
	_, err := db.conn.Exec(`UPDATE dvorush_tasks SET completed = ? WHERE id = ?`, val, taskID)
	if err != nil {
		return fmt.Errorf("update dvorush completion: %w", err)
	}
	return nil
}

func (db *DB) checkTaskOwner(table, dayID, taskID string) error {
	var got string
	query := fmt.Sprintf(`SELECT day_id FROM %s WHERE id = ?`, table)
	err := db.conn.QueryRow(query, taskID).Scan(&got)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup task: %w", err)
	}
	if got != dayID {
		return ErrNotFound
	}
	return nil
}
