package phys

import (
	"testing"

	"physbox/internal/core"
)

func TestBoundsFromViewport(t *testing.T) {
	b, err := BoundsFromViewport(1280, 720, 50)
	if err != nil {
		t.Fatalf("BoundsFromViewport() failed: %v", err)
	}

	if b.Min.X != -590 || b.Max.X != 590 {
		t.Errorf("X bounds = [%f, %f], expected [-590, 590]", b.Min.X, b.Max.X)
	}
	if b.Min.Y != -310 || b.Max.Y != 310 {
		t.Errorf("Y bounds = [%f, %f], expected [-310, 310]", b.Min.Y, b.Max.Y)
	}
	if b.BounceFactor != DefaultBounceFactor {
		t.Errorf("bounce factor = %f, expected %f", b.BounceFactor, DefaultBounceFactor)
	}
}

func TestNewBoundsValidation(t *testing.T) {
	tests := []struct {
		name     string
		min, max core.Vec2
		wantErr  bool
	}{
		{"valid", core.Vec2{X: -1, Y: -1}, core.Vec2{X: 1, Y: 1}, false},
		{"min.x equals max.x", core.Vec2{X: 1, Y: -1}, core.Vec2{X: 1, Y: 1}, true},
		{"min.y above max.y", core.Vec2{X: -1, Y: 5}, core.Vec2{X: 1, Y: 1}, true},
		{"inverted on both axes", core.Vec2{X: 9, Y: 9}, core.Vec2{X: -9, Y: -9}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBounds(tc.min, tc.max, 0.1, 2.0)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewBounds() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestBoundsContainsAndClamp(t *testing.T) {
	b := testBounds(t)

	tests := []struct {
		name    string
		p       core.Vec2
		inside  bool
		clamped core.Vec2
	}{
		{"center", core.Vec2{}, true, core.Vec2{}},
		{"on edge", core.Vec2{X: 590, Y: 0}, true, core.Vec2{X: 590, Y: 0}},
		{"past right", core.Vec2{X: 600, Y: 0}, false, core.Vec2{X: 590, Y: 0}},
		{"past corner", core.Vec2{X: -700, Y: 400}, false, core.Vec2{X: -590, Y: 310}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.inside {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.inside)
			}
			if got := b.ClampPoint(tc.p); got != tc.clamped {
				t.Errorf("ClampPoint(%v) = %v, expected %v", tc.p, got, tc.clamped)
			}
		})
	}
}
