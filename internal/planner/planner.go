// Package planner is the core engine keeping a client's in-progress edits,
// the server-held source of truth, and the disclosure/celebration UI state
// coherent under an always-refetch synchronization strategy. Views are pure
// functions of (cache, edit buffer, disclosure state); every mutation is
// followed by a wholesale refresh, never a local splice.
package planner

import (
	"fmt"
	"sync"
	"time"

	"github.com/dvora/yoman/internal/models"
)

// Store is the remote surface the engine reads and mutates through. The
// HTTP client satisfies it; tests use a fake.
type Store interface {
	ListDays() ([]models.Day, error)
	AddTask(title, description string, date *time.Time) error
	AddDayNote(note string) error
	UpdateTask(dayID, taskID string, upd models.TaskUpdate) error
	UpdateDayNote(dayID, note string) error
	DeleteTask(dayID, taskID string) error
	MoveTask(fromDayID, taskID, toDayID string) error
	SetDvorushCompletion(dayID, taskID string, completed bool) error
}

// Engine owns the aggregate cache, the edit buffer, the disclosure machine
// and the celebration marker. State access is guarded by a mutex so Bubble
// Tea command goroutines can run mutations while the UI thread reads; the
// lock is never held across a network call. Consistency under interleaving
// comes from refresh-replaces-snapshot plus the orphan cleanup performed
// inside every refresh.
type Engine struct {
	store Store

	mu          sync.Mutex
	cache       Cache
	buffer      *EditBuffer
	disclosure  Disclosure
	celebration Celebration

	now          func() time.Time
	celebrateFor time.Duration
	fetchErr     func(error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithCelebrationDuration overrides the celebration window.
func WithCelebrationDuration(d time.Duration) Option {
	return func(e *Engine) { e.celebrateFor = d }
}

// WithFetchErrorHook installs a diagnostic callback for swallowed fetch
// failures. The fail-soft policy stands either way: the cache still resets
// to empty and no error reaches the user through the engine.
func WithFetchErrorHook(fn func(error)) Option {
	return func(e *Engine) { e.fetchErr = fn }
}

// New creates an engine over the given store.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:        store,
		buffer:       NewEditBuffer(),
		now:          time.Now,
		celebrateFor: DefaultCelebrationDuration,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Refresh fetches and replaces the entire snapshot. A fetch failure
// degrades to an empty day list with no error surfaced; a transient network
// issue reads as "no days yet" rather than blocking the UI. After the
// snapshot is installed, orphaned buffer entries are dropped and the
// disclosure state self-heals, atomically with respect to other engine
// calls.
func (e *Engine) Refresh() {
	days, err := e.store.ListDays()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.cache.Clear()
		if e.fetchErr != nil {
			e.fetchErr(err)
		}
	} else {
		e.cache.Replace(days)
	}
	live := e.cache.LiveIDs()
	e.buffer.Prune(live)
	e.disclosure.Heal(live)
}

// Days returns the cached snapshot, newest date first.
func (e *Engine) Days() []models.Day {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Days()
}

// --- Edit buffer ---

// SetPending records typed-but-unsaved input for a task description (task
// id) or a day note (day id).
func (e *Engine) SetPending(id, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer.SetPending(id, value)
}

// DiscardPending drops unsaved input for id.
func (e *Engine) DiscardPending(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer.Discard(id)
}

// TaskDescription returns the display value for a task's description:
// pending input when present, else the cached value.
func (e *Engine) TaskDescription(taskID string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	task, _ := models.TaskByID(e.cache.Days(), taskID)
	fallback := ""
	if task != nil {
		fallback = task.Description
	}
	return e.buffer.DisplayValue(taskID, fallback)
}

// DayNote returns the display value for a day's note.
func (e *Engine) DayNote(dayID string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	fallback := ""
	if day := models.DayByID(e.cache.Days(), dayID); day != nil {
		fallback = day.Notes
	}
	return e.buffer.DisplayValue(dayID, fallback)
}

// IsTaskDirty reports whether a task has unsaved description input that
// differs from the cached value.
func (e *Engine) IsTaskDirty(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	task, _ := models.TaskByID(e.cache.Days(), taskID)
	fallback := ""
	if task != nil {
		fallback = task.Description
	}
	return e.buffer.IsDirty(taskID, fallback)
}

// --- Disclosure ---

// ToggleDisclosure opens id's description panel, closes it when already
// open, or switches the open slot. Toggling away from an in-progress edit
// abandons its unsaved input.
func (e *Engine) ToggleDisclosure(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if editing, ok := e.disclosure.EditingID(); ok && editing != id {
		e.buffer.Discard(editing)
	}
	e.disclosure.Toggle(id)
}

// BeginEdit enters edit mode for the open task, seeding the buffer with the
// current description so the edit field starts from the saved value.
// Earlier unsaved input for the same task is kept, not overwritten.
func (e *Engine) BeginEdit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, ok := e.disclosure.OpenID()
	if !ok {
		return false
	}
	if !e.disclosure.BeginEdit() {
		return false
	}
	if _, has := e.buffer.Pending(id); !has {
		task, _ := models.TaskByID(e.cache.Days(), id)
		desc := ""
		if task != nil {
			desc = task.Description
		}
		e.buffer.SetPending(id, desc)
	}
	return true
}

// CancelEdit leaves edit mode and drops the unsaved input.
func (e *Engine) CancelEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id, ok := e.disclosure.EditingID(); ok {
		e.buffer.Discard(id)
	}
	e.disclosure.EndEdit()
}

// OpenTaskID returns the task whose description panel is expanded.
func (e *Engine) OpenTaskID() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disclosure.OpenID()
}

// EditingTaskID returns the task being edited.
func (e *Engine) EditingTaskID() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disclosure.EditingID()
}

// --- Mutations (remote call, then wholesale refresh on success) ---

// AddTask creates a task on the given date's day (nil = today). On success
// the snapshot is refetched; nothing is added locally.
func (e *Engine) AddTask(title, description string, date *time.Time) error {
	if err := e.store.AddTask(title, description, date); err != nil {
		return err
	}
	e.Refresh()
	return nil
}

// AddDayNote appends a note to today's day, creating it if needed.
func (e *Engine) AddDayNote(note string) error {
	if err := e.store.AddDayNote(note); err != nil {
		return err
	}
	e.Refresh()
	return nil
}

// ToggleTask sets a task's completion flag.
func (e *Engine) ToggleTask(taskID string, completed bool) error {
	dayID, err := e.taskDay(taskID)
	if err != nil {
		return err
	}
	if err := e.store.UpdateTask(dayID, taskID, models.TaskUpdate{Completed: &completed}); err != nil {
		return err
	}
	e.Refresh()
	return nil
}

// SaveDescription commits the pending description of the task being edited.
// On success the entry is cleared, the snapshot refreshed and edit mode
// exits; on failure everything stays put so no typed input is lost.
func (e *Engine) SaveDescription() error {
	e.mu.Lock()
	id, ok := e.disclosure.EditingID()
	if !ok {
		e.mu.Unlock()
		return nil
	}
	value, has := e.buffer.Pending(id)
	_, day := models.TaskByID(e.cache.Days(), id)
	e.mu.Unlock()

	if !has {
		// Nothing typed; just leave edit mode.
		e.mu.Lock()
		e.disclosure.EndEdit()
		e.mu.Unlock()
		return nil
	}
	if day == nil {
		return fmt.Errorf("task %s no longer exists", id)
	}
	if err := e.store.UpdateTask(day.ID, id, models.TaskUpdate{Description: &value}); err != nil {
		return err
	}

	e.mu.Lock()
	e.buffer.Discard(id)
	e.disclosure.EndEdit()
	e.mu.Unlock()
	e.Refresh()
	return nil
}

// SaveDayNote commits the pending note for dayID as a full replace.
func (e *Engine) SaveDayNote(dayID string) error {
	e.mu.Lock()
	value, has := e.buffer.Pending(dayID)
	e.mu.Unlock()
	if !has {
		return nil
	}
	if err := e.store.UpdateDayNote(dayID, value); err != nil {
		return err
	}
	e.mu.Lock()
	e.buffer.Discard(dayID)
	e.mu.Unlock()
	e.Refresh()
	return nil
}

// DeleteTask removes a task. The refresh that follows prunes any pending
// edit for it and closes its disclosure panel.
func (e *Engine) DeleteTask(taskID string) error {
	dayID, err := e.taskDay(taskID)
	if err != nil {
		return err
	}
	if err := e.store.DeleteTask(dayID, taskID); err != nil {
		return err
	}
	e.Refresh()
	return nil
}

// MoveTask relocates a task to another day. The task must currently be
// displayed under some day; the server arbitrates the move's atomicity and
// the wholesale refresh adopts whatever placement it decided.
func (e *Engine) MoveTask(taskID, toDayID string) error {
	fromDayID, err := e.taskDay(taskID)
	if err != nil {
		return err
	}
	if err := e.store.MoveTask(fromDayID, taskID, toDayID); err != nil {
		return err
	}
	e.Refresh()
	return nil
}

// ToggleDvorush sets a dvorush task's completion flag. Completing arms the
// celebration marker for it; un-completing never does.
func (e *Engine) ToggleDvorush(taskID string, completed bool) error {
	e.mu.Lock()
	_, day := models.DvorushByID(e.cache.Days(), taskID)
	e.mu.Unlock()
	if day == nil {
		return fmt.Errorf("dvorush task %s not found", taskID)
	}
	if err := e.store.SetDvorushCompletion(day.ID, taskID, completed); err != nil {
		return err
	}
	if completed {
		e.mu.Lock()
		e.celebration.Arm(taskID, e.now(), e.celebrateFor)
		e.mu.Unlock()
	}
	e.Refresh()
	return nil
}

// --- Celebration ---

// CelebratingID returns the dvorush task currently highlighted.
func (e *Engine) CelebratingID() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.celebration.Active(e.now())
}

// ExpireCelebration clears the marker if it still belongs to taskID. A
// later completion owns its own window (last write wins).
func (e *Engine) ExpireCelebration(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.celebration.Expire(taskID)
}

// CelebrationDuration returns the configured highlight window, for callers
// scheduling the expiry.
func (e *Engine) CelebrationDuration() time.Duration {
	return e.celebrateFor
}

// taskDay returns the id of the day currently displaying taskID.
func (e *Engine) taskDay(taskID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, day := models.TaskByID(e.cache.Days(), taskID)
	if day == nil {
		return "", fmt.Errorf("task %s not found", taskID)
	}
	return day.ID, nil
}
