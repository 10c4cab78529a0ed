package phys

import "physbox/internal/core"

// Default thrust parameters, matching the feel of a 3000 units/s² base force
// with a ×3 boost.
const (
	DefaultForce       = 3000.0
	DefaultBoostFactor = 3.0
)

// Controller maps per-tick input frames to an acceleration vector.
// It holds no state between ticks: the output is purely a function of the
// current input snapshot.
type Controller struct {
	// Force is the base thrust magnitude in units/second².
	Force float64

	// BoostFactor multiplies the force while the boost modifier is held.
	// Boost is a single modifier channel; multiple boost sources do not chain.
	BoostFactor float64
}

// NewController creates a controller with the default thrust parameters.
func NewController() Controller {
	return Controller{
		Force:       DefaultForce,
		BoostFactor: DefaultBoostFactor,
	}
}

// Read builds the acceleration for this tick from the input frame.
//
// Each direction contributes ±1 once regardless of how many key aliases
// produced it; the raw vector is normalized before scaling so diagonal
// thrust is not faster than axis-aligned thrust. No pressed direction yields
// the zero vector.
func (c Controller) Read(frame core.InputFrame) core.Vec2 {
	var dir core.Vec2

	if frame.Has(core.ActionUp) {
		dir.Y += 1
	}
	if frame.Has(core.ActionDown) {
		dir.Y -= 1
	}
	if frame.Has(core.ActionLeft) {
		dir.X -= 1
	}
	if frame.Has(core.ActionRight) {
		dir.X += 1
	}

	if dir.IsZero() {
		return core.Vec2{}
	}

	force := c.Force
	if frame.Has(core.ActionBoost) {
		force *= c.BoostFactor
	}

	return dir.Normalize().Scale(force)
}

// Apply reads the frame and overwrites the body's acceleration with the
// result. The write replaces any prior value: force sources that should
// combine with input must sum before this call.
func (c Controller) Apply(frame core.InputFrame, body *MotionState) {
	body.Acc = c.Read(frame)
}
