package phys

import (
	"fmt"

	"physbox/internal/core"
)

// Default collision-response parameters for bounds constructors.
const (
	DefaultAmbientFriction = 0.1
	DefaultBounceFactor    = 2.0
)

// Bounds describes the playable axis-aligned rectangle and its collision
// response. It is created once at startup and read-only during ticks.
type Bounds struct {
	Min core.Vec2
	Max core.Vec2

	// Friction is the ambient damping coefficient, applied independently of
	// per-body friction depending on the world's damping mode.
	Friction float64

	// BounceFactor scales the reflected velocity component on a boundary hit:
	// 1.0 is elastic in magnitude, below 1.0 loses energy, above 1.0 gains it.
	BounceFactor float64
}

// NewBounds creates a validated rectangle. Min must be strictly less than
// Max on both axes; ambient friction is clamped into [0, 1].
func NewBounds(min, max core.Vec2, friction, bounceFactor float64) (Bounds, error) {
	if min.X >= max.X || min.Y >= max.Y {
		return Bounds{}, fmt.Errorf("phys: degenerate bounds min=%v max=%v", min, max)
	}
	return Bounds{
		Min:          min,
		Max:          max,
		Friction:     core.ClampF(friction, 0, 1),
		BounceFactor: bounceFactor,
	}, nil
}

// BoundsFromViewport derives bounds from viewport dimensions minus a margin,
// centered on the origin. A 1280×720 viewport with a 50-unit margin yields
// ±590 by ±310.
func BoundsFromViewport(width, height, margin float64) (Bounds, error) {
	halfW := width/2 - margin
	halfH := height/2 - margin
	return NewBounds(
		core.Vec2{X: -halfW, Y: -halfH},
		core.Vec2{X: halfW, Y: halfH},
		DefaultAmbientFriction,
		DefaultBounceFactor,
	)
}

// Contains returns true if the position is inside the rectangle, edges
// included.
func (b Bounds) Contains(p core.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ClampPoint restricts a position to the rectangle on both axes.
func (b Bounds) ClampPoint(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, b.Min.X, b.Max.X),
		Y: core.ClampF(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Width returns the horizontal extent of the rectangle.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the rectangle.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}
