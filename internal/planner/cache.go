package planner

import (
	"sort"

	"github.com/dvora/yoman/internal/models"
)

// Cache holds the last full snapshot of all days, newest date first. It is
// replaced wholesale after every successful mutation; nothing ever patches
// it incrementally.
type Cache struct {
	days []models.Day
}

// Replace installs a new snapshot, reordering it newest-first. The server
// lists days oldest-first; the UI wants the reverse.
func (c *Cache) Replace(days []models.Day) {
	sorted := make([]models.Day, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	c.days = sorted
}

// Clear resets the cache to an empty snapshot.
func (c *Cache) Clear() {
	c.days = nil
}

// Days returns the current snapshot, newest first.
func (c *Cache) Days() []models.Day {
	return c.days
}

// LiveIDs returns the set of every entity id present in the snapshot: day
// ids, task ids and dvorush ids. Used for orphan cleanup after a refresh.
func (c *Cache) LiveIDs() map[string]struct{} {
	live := make(map[string]struct{})
	for i := range c.days {
		live[c.days[i].ID] = struct{}{}
		for _, t := range c.days[i].Tasks {
			live[t.ID] = struct{}{}
		}
		for _, d := range c.days[i].Dvorush {
			live[d.ID] = struct{}{}
		}
	}
	return live
}
