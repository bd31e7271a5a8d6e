package planner

// disclosurePhase is the current phase of the description panel.
type disclosurePhase int

const (
	phaseClosed disclosurePhase = iota
	phaseOpen
	phaseEditing
)

// Disclosure tracks which task's description panel is expanded and whether
// it is in edit mode. At most one task is open at a time; edit mode implies
// disclosure. The machine is pure state: side effects (buffer seeding,
// remote commits) happen at the transition boundary in the engine.
type Disclosure struct {
	phase  disclosurePhase
	taskID string
}

// OpenID returns the open task id, if any (set in both the open and editing
// phases).
func (d *Disclosure) OpenID() (string, bool) {
	if d.phase == phaseClosed {
		return "", false
	}
	return d.taskID, true
}

// EditingID returns the task id being edited, if any.
func (d *Disclosure) EditingID() (string, bool) {
	if d.phase != phaseEditing {
		return "", false
	}
	return d.taskID, true
}

// IsOpen reports whether id's panel is expanded.
func (d *Disclosure) IsOpen(id string) bool {
	return d.phase != phaseClosed && d.taskID == id
}

// IsEditing reports whether id is in edit mode.
func (d *Disclosure) IsEditing(id string) bool {
	return d.phase == phaseEditing && d.taskID == id
}

// Toggle opens id's panel, closes it when already open, or switches the
// single open slot to id when another task was open. Toggling away from an
// editing task abandons the edit; the engine discards its buffer entry.
func (d *Disclosure) Toggle(id string) {
	switch {
	case d.phase == phaseClosed:
		d.phase, d.taskID = phaseOpen, id
	case d.taskID == id:
		d.phase, d.taskID = phaseClosed, ""
	default:
		d.phase, d.taskID = phaseOpen, id
	}
}

// BeginEdit moves Open(id) to Editing(id). Reports false (and does nothing)
// from any other state: edit mode is only reachable through disclosure.
func (d *Disclosure) BeginEdit() bool {
	if d.phase != phaseOpen {
		return false
	}
	d.phase = phaseEditing
	return true
}

// EndEdit returns Editing(id) to Open(id) after a save or cancel.
func (d *Disclosure) EndEdit() {
	if d.phase == phaseEditing {
		d.phase = phaseOpen
	}
}

// Close resets to the closed state.
func (d *Disclosure) Close() {
	d.phase, d.taskID = phaseClosed, ""
}

// Heal closes the machine when the referenced task is no longer live.
// Called after every cache refresh so the panel never points at a task that
// was deleted or moved away by another action.
func (d *Disclosure) Heal(live map[string]struct{}) {
	if d.phase == phaseClosed {
		return
	}
	if _, ok := live[d.taskID]; !ok {
		d.Close()
	}
}
