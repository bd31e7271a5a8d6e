package planner

import "time"

// DefaultCelebrationDuration is how long a just-completed dvorush task stays
// highlighted.
const DefaultCelebrationDuration = time.Second

// Celebration is a single-slot transient marker for a just-completed
// dvorush task. Last write wins: completing a second task during the window
// overwrites the marker rather than queueing. Never persisted.
type Celebration struct {
	taskID string
	until  time.Time
}

// Arm sets the marker for id, expiring after d.
func (c *Celebration) Arm(id string, now time.Time, d time.Duration) {
	c.taskID = id
	c.until = now.Add(d)
}

// Active returns the marked task id when the marker has not yet expired.
func (c *Celebration) Active(now time.Time) (string, bool) {
	if c.taskID == "" || !now.Before(c.until) {
		return "", false
	}
	return c.taskID, true
}

// Expire clears the marker only when it still belongs to id. A later Arm
// for a different task keeps its own window.
func (c *Celebration) Expire(id string) {
	if c.taskID == id {
		c.Clear()
	}
}

// Clear unconditionally drops the marker.
func (c *Celebration) Clear() {
	c.taskID = ""
	c.until = time.Time{}
}
