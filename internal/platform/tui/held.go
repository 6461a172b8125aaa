package tui

import (
	"time"

	"github.com/vovakirdan/passive/internal/core"
)

// HeldKeys approximates key-down state from a stream of key presses.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until window passes without another press of it.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker that releases keys after window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a movement key press at now. Pressing a direction
// releases its opposite immediately.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !a.IsMovement() {
		return
	}
	h.last[a] = now
	delete(h.last, opposite(a))
}

// Held returns the movement keys pressed within the window before now,
// in MovementActions order. Expired keys are forgotten.
func (h *HeldKeys) Held(now time.Time) []core.Action {
	var held []core.Action
	for _, a := range core.MovementActions {
		at, ok := h.last[a]
		if !ok {
			continue
		}
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		held = append(held, a)
	}
	return held
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	clear(h.last)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
