package model

// History is the bounded conversation buffer: an ordered sequence of turns
// capped at maxTurns. Once the cap is reached the oldest turns are evicted
// first, one at a time. Eviction is per turn, not per user/assistant pair.
//
// Only the bubbletea update loop mutates a History; background commands work
// on snapshots, so no locking is needed.
type History struct {
	maxTurns int
	turns    []Message
	appended int // turns ever appended, including evicted ones
}

// NewHistory creates a buffer bounded to maxTurns. A non-positive bound is
// treated as 1 so Append can never grow without limit.
func NewHistory(maxTurns int) *History {
	if maxTurns < 1 {
		maxTurns = 1
	}
	return &History{maxTurns: maxTurns}
}

// Append adds a turn to the end of the buffer, evicting from the front until
// the buffer is within bound. Always succeeds.
func (h *History) Append(msg Message) {
	h.turns = append(h.turns, msg)
	h.appended++
	if over := len(h.turns) - h.maxTurns; over > 0 {
		// Copy down instead of reslicing so evicted turns don't pin the
		// backing array
		h.turns = append(h.turns[:0], h.turns[over:]...)
	}
}

// Clear empties the buffer unconditionally.
func (h *History) Clear() {
	h.turns = h.turns[:0]
	h.appended = 0
}

// Snapshot returns a copy of the turns in append order. Mutating the copy
// does not affect the buffer.
func (h *History) Snapshot() []Message {
	out := make([]Message, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the current number of turns.
func (h *History) Len() int {
	return len(h.turns)
}

// MaxTurns returns the configured bound.
func (h *History) MaxTurns() int {
	return h.maxTurns
}

// Last returns a pointer to the most recent turn, or nil when empty. The
// pointer is only valid until the next Append or Clear.
func (h *History) Last() *Message {
	if len(h.turns) == 0 {
		return nil
	}
	return &h.turns[len(h.turns)-1]
}

// AbsIndex converts a current buffer index into an absolute turn number
// that stays valid across front evictions.
func (h *History) AbsIndex(i int) int {
	return h.appended - len(h.turns) + i
}

// UpdateRendered replaces the cached rendering of the turn with absolute
// number abs. Turns that were evicted while the render was in flight are
// silently ignored.
func (h *History) UpdateRendered(abs int, rendered string) {
	i := abs - (h.appended - len(h.turns))
	if i < 0 || i >= len(h.turns) {
		return
	}
	h.turns[i].Rendered = rendered
}
