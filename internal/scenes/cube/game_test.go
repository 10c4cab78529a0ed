package cube

import (
	"testing"

	"physbox/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func thrustFrame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestSceneThrustMovesCube(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	start := s.world.Body(s.player).Pos

	for i := 0; i < 10; i++ {
		s.Step(thrustFrame(core.ActionRight))
	}

	body := s.world.Body(s.player)
	if body.Pos.X <= start.X {
		t.Errorf("rightward thrust did not move cube right: %f -> %f", start.X, body.Pos.X)
	}
	if body.Pos.Y != start.Y {
		t.Errorf("rightward thrust moved cube vertically: %f -> %f", start.Y, body.Pos.Y)
	}
}

func TestSceneBoostIsFaster(t *testing.T) {
	plain := New()
	plain.Reset(testRuntime())
	boosted := New()
	boosted.Reset(testRuntime())

	for i := 0; i < 10; i++ {
		plain.Step(thrustFrame(core.ActionRight))
		boosted.Step(thrustFrame(core.ActionRight, core.ActionBoost))
	}

	plainX := plain.world.Body(plain.player).Pos.X
	boostedX := boosted.world.Body(boosted.player).Pos.X
	if boostedX <= plainX {
		t.Errorf("boosted thrust not faster: plain %f, boosted %f", plainX, boostedX)
	}
}

func TestSceneStaysInBounds(t *testing.T) {
	s := New()
	s.Reset(testRuntime())
	bounds := s.world.Bounds()

	// Hold boosted rightward thrust long enough to bounce repeatedly.
	for i := 0; i < 600; i++ {
		s.Step(thrustFrame(core.ActionRight, core.ActionBoost))

		pos := s.world.Body(s.player).Pos
		if !bounds.Contains(pos) {
			t.Fatalf("tick %d: cube escaped bounds at %v", i, pos)
		}
	}

	if s.State().Bounces == 0 {
		t.Error("sustained boosted thrust never hit the wall")
	}
}

func TestSceneDeterminism(t *testing.T) {
	run := func() core.SceneState {
		s := New()
		s.Reset(testRuntime())
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionRight)
			}
			if i%7 == 0 {
				in.Set(core.ActionUp)
			}
			s.Step(in)
		}
		return s.State()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestSceneReset(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	for i := 0; i < 120; i++ {
		s.Step(thrustFrame(core.ActionRight, core.ActionBoost))
	}

	s.Reset(testRuntime())

	state := s.State()
	if state.Ticks != 0 || state.Bounces != 0 || state.PeakSpeed != 0 {
		t.Errorf("Reset did not clear state: %+v", state)
	}

	body := s.world.Body(s.player)
	if !body.Pos.IsZero() || !body.Vel.IsZero() {
		t.Errorf("Reset did not respawn cube at rest at origin: pos %v vel %v", body.Pos, body.Vel)
	}
}

func TestScenePause(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	s.Step(thrustFrame(core.ActionPause))
	if !s.State().Paused {
		t.Fatal("pause action did not pause the scene")
	}

	ticksBefore := s.State().Ticks
	s.Step(thrustFrame(core.ActionRight))
	if s.State().Ticks != ticksBefore {
		t.Error("paused scene advanced the simulation")
	}

	s.Step(thrustFrame(core.ActionPause))
	if s.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestSceneRender(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	// Cube at origin renders at the screen center.
	if screen.Get(40, 12) != CubeChar {
		t.Errorf("cube not at screen center, found %q", screen.Get(40, 12))
	}
}
