// Package phys implements the fixed-timestep physics pipeline: input-driven
// acceleration, velocity/position integration with exponential damping, and
// boundary collision with a bounce response. All state is in-memory and all
// operations are pure per-tick computation; the platform owns timing.
package phys

import "physbox/internal/core"

// DefaultFriction is the damping coefficient bodies spawn with.
const DefaultFriction = 0.95

// MotionState is the per-body physics record: position, velocity, the
// transient per-tick acceleration, and the damping coefficient.
type MotionState struct {
	Pos core.Vec2 // World-space coordinates
	Vel core.Vec2 // Units/second
	Acc core.Vec2 // Units/second², written each tick, reset by the integrator

	// Friction is the per-body damping coefficient in [0, 1]:
	// 0 = no damping, 1 = instant stop. Clamped on construction.
	Friction float64
}

// NewMotionState creates a body at rest at the given position.
// Friction is clamped into [0, 1].
func NewMotionState(pos core.Vec2, friction float64) MotionState {
	return MotionState{
		Pos:      pos,
		Friction: core.ClampF(friction, 0, 1),
	}
}

// NewDefaultMotionState creates a body at rest at the world origin with the
// default friction, matching the state a freshly spawned player body has.
func NewDefaultMotionState() MotionState {
	return NewMotionState(core.Vec2{}, DefaultFriction)
}

// Speed returns the current velocity magnitude in units/second.
func (m *MotionState) Speed() float64 {
	return m.Vel.Length()
}
