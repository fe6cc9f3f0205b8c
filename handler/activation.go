package handler

import "go.uber.org/atomic"

// Activatable is the base capability every handler interface must embed.
//
// It is a binary switch, on by default, that lets consumers suspend a
// handler's effect without uninstalling it. The switch is advisory: the
// handler substrate itself never gates on it, consumers decide whether to
// honor it.
type Activatable interface {
	// Activate switches on.
	Activate()

	// Deactivate switches off.
	Deactivate()

	// IsActive reports the switch state.
	IsActive() bool
}

// Activation implements Activatable and is meant to be embedded in handler
// implementations. The zero value is active.
//
// Activate and Deactivate set the flag unconditionally (no toggling).
// The flag is a single atomic bool; concurrent toggles are eventually
// visible, which is sufficient for an advisory switch.
type Activation struct {
	// suspended inverts the exposed state so the zero value reads active.
	suspended atomic.Bool
}

// Activate switches on.
func (a *Activation) Activate() { a.suspended.Store(false) }

// Deactivate switches off.
func (a *Activation) Deactivate() { a.suspended.Store(true) }

// IsActive reports the switch state.
func (a *Activation) IsActive() bool { return !a.suspended.Load() }
