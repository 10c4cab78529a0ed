package phys

import (
	"testing"

	"physbox/internal/core"
)

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestControllerRead(t *testing.T) {
	c := Controller{Force: 3000, BoostFactor: 3}

	tests := []struct {
		name     string
		frame    core.InputFrame
		expected core.Vec2
	}{
		{
			name:     "no input yields zero, not a fault",
			frame:    core.NewInputFrame(),
			expected: core.Vec2{},
		},
		{
			name:     "single axis gets full force",
			frame:    frameWith(core.ActionRight),
			expected: core.Vec2{X: 3000},
		},
		{
			name:     "opposite directions cancel",
			frame:    frameWith(core.ActionLeft, core.ActionRight),
			expected: core.Vec2{},
		},
		{
			name:     "boost multiplies force",
			frame:    frameWith(core.ActionUp, core.ActionBoost),
			expected: core.Vec2{Y: 9000},
		},
		{
			name:     "boost alone produces no thrust",
			frame:    frameWith(core.ActionBoost),
			expected: core.Vec2{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Read(tc.frame)
			if !approxEq(got.X, tc.expected.X, 1e-9) || !approxEq(got.Y, tc.expected.Y, 1e-9) {
				t.Errorf("Read() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestControllerDiagonalNormalized(t *testing.T) {
	c := Controller{Force: 3000, BoostFactor: 3}

	got := c.Read(frameWith(core.ActionRight, core.ActionUp))

	// Diagonal thrust has the base magnitude, not √2 times it.
	if !approxEq(got.Length(), 3000, 1e-6) {
		t.Errorf("diagonal magnitude = %f, expected 3000", got.Length())
	}
	if !approxEq(got.X, got.Y, 1e-9) {
		t.Errorf("diagonal components unequal: %v", got)
	}
}

func TestControllerApplyOverwrites(t *testing.T) {
	c := NewController()

	body := NewDefaultMotionState()
	body.Acc = core.Vec2{X: -12345, Y: 42}

	c.Apply(frameWith(core.ActionRight), &body)

	// The write replaces the previous acceleration entirely.
	if !approxEq(body.Acc.X, c.Force, 1e-9) || body.Acc.Y != 0 {
		t.Errorf("Apply() left acceleration %v, expected (%f, 0)", body.Acc, c.Force)
	}

	c.Apply(core.NewInputFrame(), &body)
	if !body.Acc.IsZero() {
		t.Errorf("Apply() with empty frame left acceleration %v", body.Acc)
	}
}
