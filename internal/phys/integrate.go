package phys

import (
	"fmt"
	"math"

	"physbox/internal/core"
)

// DampingMode selects which friction sources the integrator applies.
type DampingMode int

const (
	// DampBody applies only the per-body friction coefficient.
	DampBody DampingMode = iota
	// DampAmbient applies only the bounds-level ambient friction.
	DampAmbient
	// DampBoth composes body and ambient damping multiplicatively.
	DampBoth
)

// String returns the configuration name of the mode.
func (m DampingMode) String() string {
	switch m {
	case DampBody:
		return "body"
	case DampAmbient:
		return "ambient"
	case DampBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseDampingMode converts a configuration string to a DampingMode.
func ParseDampingMode(s string) (DampingMode, error) {
	switch s {
	case "", "body":
		return DampBody, nil
	case "ambient":
		return DampAmbient, nil
	case "both":
		return DampBoth, nil
	default:
		return DampBody, fmt.Errorf("phys: unknown damping mode %q", s)
	}
}

// Integrate advances one body by dt seconds:
//
//	vel += acc * dt
//	vel *= (1 - friction)^dt
//	pos += vel * dt
//	acc = 0
//
// The damping step uses exponential decay scaled by elapsed time, so the
// decay rate is independent of tick rate: one tick of dt=1.0 and two ticks
// of dt=0.5 produce the same velocity. Friction of exactly 1 zeroes the
// velocity at the first non-zero dt.
//
// The step order is a contract: acceleration before damping before position.
// A non-positive dt skips the motion update but still clears acceleration,
// so a stale force can never leak into a later tick.
func Integrate(body *MotionState, bounds Bounds, mode DampingMode, dt float64) {
	if dt > 0 {
		body.Vel = body.Vel.Add(body.Acc.Scale(dt))

		decay := dampingDecay(body.Friction, bounds.Friction, mode, dt)
		body.Vel = body.Vel.Scale(decay)

		body.Pos = body.Pos.Add(body.Vel.Scale(dt))
	}

	body.Acc = core.Vec2{}
}

// dampingDecay returns the velocity retention factor for one tick.
func dampingDecay(bodyFriction, ambientFriction float64, mode DampingMode, dt float64) float64 {
	decay := 1.0
	if mode == DampBody || mode == DampBoth {
		decay *= math.Pow(1-bodyFriction, dt)
	}
	if mode == DampAmbient || mode == DampBoth {
		decay *= math.Pow(1-ambientFriction, dt)
	}
	return decay
}
