package tui

import (
	"time"

	"github.com/vovakirdan/leapengine/internal/core"
)

// Terminals report key presses and autorepeats, never releases. A key is
// treated as held for a short window after each press. The first window is
// longer to bridge the delay before autorepeat starts.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

type holdState struct {
	since time.Time // first press of the current hold
	last  time.Time // most recent press or repeat
}

// HoldTracker turns press events into held state.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	keys   map[core.Input]holdState
}

// NewHoldTracker creates a tracker with the given windows.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		first:  first,
		repeat: repeat,
		keys:   make(map[core.Input]holdState),
	}
}

// Press records a press or autorepeat of in at t.
func (h *HoldTracker) Press(in core.Input, t time.Time) {
	s, ok := h.keys[in]
	if !ok || !h.heldAt(s, t) {
		s.since = t
	}
	s.last = t
	h.keys[in] = s
}

// Held reports whether in counts as held at t.
func (h *HoldTracker) Held(in core.Input, t time.Time) bool {
	s, ok := h.keys[in]
	return ok && h.heldAt(s, t)
}

// Release forgets in immediately.
func (h *HoldTracker) Release(in core.Input) {
	delete(h.keys, in)
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

func (h *HoldTracker) heldAt(s holdState, t time.Time) bool {
	window := h.repeat
	if s.last.Equal(s.since) {
		window = h.first
	}
	return t.Sub(s.last) < window
}
