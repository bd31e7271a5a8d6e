package planner

import (
	"testing"
	"time"
)

func TestCelebrationExpiry(t *testing.T) {
	var c Celebration
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	c.Arm("dv-1", now, time.Second)
	if id, ok := c.Active(now); !ok || id != "dv-1" {
		t.Fatalf("active = %q,%v, want dv-1", id, ok)
	}
	if _, ok := c.Active(now.Add(999 * time.Millisecond)); !ok {
		t.Fatal("marker must hold inside the window")
	}
	if _, ok := c.Active(now.Add(time.Second)); ok {
		t.Fatal("marker must expire at the deadline")
	}
}

func TestCelebrationLastWriteWins(t *testing.T) {
	var c Celebration
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	c.Arm("dv-1", now, time.Second)
	// Second completion during the window overwrites, never queues.
	c.Arm("dv-2", now.Add(500*time.Millisecond), time.Second)

	if id, _ := c.Active(now.Add(600 * time.Millisecond)); id != "dv-2" {
		t.Fatalf("active = %q, want dv-2", id)
	}

	// The stale expiry for dv-1 must not clear dv-2's window.
	c.Expire("dv-1")
	if id, ok := c.Active(now.Add(700 * time.Millisecond)); !ok || id != "dv-2" {
		t.Fatalf("after stale expire: active = %q,%v, want dv-2", id, ok)
	}

	c.Expire("dv-2")
	if _, ok := c.Active(now.Add(700 * time.Millisecond)); ok {
		t.Fatal("expire for the owning id must clear the marker")
	}
}
