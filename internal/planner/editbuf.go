package planner

// EditBuffer tracks typed-but-unsaved field values keyed by entity id (task
// id for descriptions, day id for notes). A pending entry shadows the
// cache's value for display until it is committed, discarded, or orphaned
// by a refresh that no longer contains its entity.
type EditBuffer struct {
	pending map[string]string
}

// NewEditBuffer returns an empty buffer.
func NewEditBuffer() *EditBuffer {
	return &EditBuffer{pending: make(map[string]string)}
}

// SetPending records or overwrites the pending value for id. It never
// touches the cache or the server.
func (b *EditBuffer) SetPending(id, value string) {
	b.pending[id] = value
}

// Pending returns the pending value for id, if any.
func (b *EditBuffer) Pending(id string) (string, bool) {
	v, ok := b.pending[id]
	return v, ok
}

// DisplayValue returns the pending value for id when one exists, else
// fallback (the cache's current value). This merge is what lets in-progress
// typing survive the wholesale cache refresh triggered by other mutations.
func (b *EditBuffer) DisplayValue(id, fallback string) string {
	if v, ok := b.pending[id]; ok {
		return v
	}
	return fallback
}

// IsDirty reports whether a pending value exists for id and differs from
// fallback. Drives whether a save affordance is shown.
func (b *EditBuffer) IsDirty(id, fallback string) bool {
	v, ok := b.pending[id]
	return ok && v != fallback
}

// Discard drops the pending entry for id without saving.
func (b *EditBuffer) Discard(id string) {
	delete(b.pending, id)
}

// Prune drops every pending entry whose id is not in live. Called after
// each cache refresh so no entry can reference a deleted entity.
func (b *EditBuffer) Prune(live map[string]struct{}) {
	for id := range b.pending {
		if _, ok := live[id]; !ok {
			delete(b.pending, id)
		}
	}
}

// Len returns the number of pending entries.
func (b *EditBuffer) Len() int {
	return len(b.pending)
}
