package swarm

import (
	"testing"

	"physbox/internal/core"
	"physbox/internal/phys"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestSceneDeterminism(t *testing.T) {
	run := func() core.SceneState {
		s := New()
		s.Reset(testRuntime(12345))
		for i := 0; i < 200; i++ {
			s.Step(core.NewInputFrame())
		}
		return s.State()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestSceneSpawnsPopulation(t *testing.T) {
	s := New()
	s.Reset(testRuntime(1))

	if s.world.Len() != s.cfg.Population {
		t.Errorf("spawned %d bodies, expected %d", s.world.Len(), s.cfg.Population)
	}
}

func TestSceneBodiesStayInBounds(t *testing.T) {
	s := New()
	s.Reset(testRuntime(42))
	bounds := s.world.Bounds()

	for i := 0; i < 300; i++ {
		s.Step(core.NewInputFrame())
	}

	s.world.ForEach(func(id phys.BodyID, body *phys.MotionState) {
		if !bounds.Contains(body.Pos) {
			t.Errorf("body %d escaped bounds: %v", id, body.Pos)
		}
	})

	if s.State().Bounces == 0 {
		t.Error("no body ever hit a wall in 300 ticks")
	}
}

func TestSceneSeedChangesLayout(t *testing.T) {
	a := New()
	a.Reset(testRuntime(1))
	b := New()
	b.Reset(testRuntime(2))

	same := true
	for id := 0; id < a.world.Len() && same; id++ {
		pa := a.world.Body(phys.BodyID(id))
		pb := b.world.Body(phys.BodyID(id))
		if pa.Pos != pb.Pos {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical body layouts")
	}
}
