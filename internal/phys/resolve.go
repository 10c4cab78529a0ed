package phys

import "physbox/internal/core"

// Hit reports which axes of a body collided with the bounds during one tick.
type Hit struct {
	X bool
	Y bool
}

// Any returns true if either axis hit a boundary.
func (h Hit) Any() bool {
	return h.X || h.Y
}

// Count returns the number of axes that hit, 0 to 2.
func (h Hit) Count() int {
	n := 0
	if h.X {
		n++
	}
	if h.Y {
		n++
	}
	return n
}

// Resolve detects and responds to boundary collisions for one body.
//
// Each axis is tested independently so a corner overshoot reflects both
// components in the same tick. The test is inclusive: a body resting exactly
// on a wall counts as a hit and reflects again next tick. On a hit the
// velocity component is scaled by the bounce factor and then negated, and the
// position component is clamped back into the rectangle, since reflection
// only changes velocity for the next tick and cannot undo this tick's
// overshoot.
//
// Resolve keeps no state between ticks; it re-evaluates from scratch every
// call and its only side effect is on the body it is given.
func Resolve(body *MotionState, bounds Bounds) Hit {
	var hit Hit

	if body.Pos.X <= bounds.Min.X || body.Pos.X >= bounds.Max.X {
		body.Vel.X = -(body.Vel.X * bounds.BounceFactor)
		body.Pos.X = core.ClampF(body.Pos.X, bounds.Min.X, bounds.Max.X)
		hit.X = true
	}

	if body.Pos.Y <= bounds.Min.Y || body.Pos.Y >= bounds.Max.Y {
		body.Vel.Y = -(body.Vel.Y * bounds.BounceFactor)
		body.Pos.Y = core.ClampF(body.Pos.Y, bounds.Min.Y, bounds.Max.Y)
		hit.Y = true
	}

	return hit
}
