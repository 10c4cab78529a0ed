// Package swarm implements the swarm scene: hundreds of uncontrolled bodies
// seeded with random velocities, bouncing inside the world bounds. It exists
// to exercise the parallel world step at scale.
package swarm

import (
	"fmt"
	"math/rand"

	"physbox/internal/config"
	"physbox/internal/core"
	"physbox/internal/phys"
	"physbox/internal/scene"
)

// BodyChar is the rune each swarm body renders as.
const BodyChar = '•'

var (
	configPath string
)

// SetConfigPath sets a custom config file path for the next scene instance.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the swarm simulation.
type Scene struct {
	cfg     config.SwarmConfig
	runtime core.RuntimeConfig

	world *phys.World
	rng   *rand.Rand

	ticks     int
	bounces   int
	peakSpeed float64
	paused    bool
}

// New creates a new swarm scene instance.
func New() *Scene {
	cfg, err := config.LoadSwarm(configPath)
	if err != nil {
		cfg = config.DefaultSwarmConfig()
	}
	return &Scene{cfg: cfg}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "swarm"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Swarm"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.rng = rand.New(rand.NewSource(runtime.Seed))

	bounds, err := phys.NewBounds(
		core.Vec2{
			X: -(float64(runtime.ScreenW)/2 - s.cfg.Physics.Margin - 1),
			Y: -(float64(runtime.ScreenH)/2 - s.cfg.Physics.Margin - 1),
		},
		core.Vec2{
			X: float64(runtime.ScreenW)/2 - s.cfg.Physics.Margin - 1,
			Y: float64(runtime.ScreenH)/2 - s.cfg.Physics.Margin - 1,
		},
		s.cfg.Physics.AmbientFriction,
		s.cfg.Physics.BounceFactor,
	)
	if err != nil {
		bounds, _ = phys.NewBounds(
			core.Vec2{X: -1, Y: -1}, core.Vec2{X: 1, Y: 1},
			s.cfg.Physics.AmbientFriction, s.cfg.Physics.BounceFactor,
		)
	}

	mode, err := phys.ParseDampingMode(s.cfg.Physics.DampingMode)
	if err != nil {
		mode = phys.DampBody
	}

	s.world = phys.NewWorld(bounds, mode)
	for i := 0; i < s.cfg.Population; i++ {
		st := phys.NewMotionState(core.Vec2{
			X: bounds.Min.X + s.rng.Float64()*bounds.Width(),
			Y: bounds.Min.Y + s.rng.Float64()*bounds.Height(),
		}, s.cfg.Physics.Friction)
		st.Vel = core.Vec2{
			X: (s.rng.Float64()*2 - 1) * s.cfg.MaxSpeed,
			Y: (s.rng.Float64()*2 - 1) * s.cfg.MaxSpeed,
		}
		s.world.Spawn(st)
	}

	s.ticks = 0
	s.bounces = 0
	s.peakSpeed = 0
	s.paused = false
}

// Step advances the simulation by one fixed tick. The swarm takes no
// directional input; only pause and restart are honored.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.Reset(s.runtime)
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	stats := s.world.Step(s.runtime.Dt())

	s.ticks++
	s.bounces += stats.Bounces
	if stats.PeakSpeed > s.peakSpeed {
		s.peakSpeed = stats.PeakSpeed
	}

	return core.StepResult{State: s.State()}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{
		Ticks:     s.ticks,
		Bounces:   s.bounces,
		PeakSpeed: s.peakSpeed,
		Paused:    s.paused,
	}
}

// Render draws the border, every body and the HUD.
func (s *Scene) Render(dst *core.Screen) {
	bounds := s.world.Bounds()

	bx := dst.Width()/2 + int(bounds.Min.X) - 1
	by := dst.Height()/2 - int(bounds.Max.Y) - 1
	dst.DrawBox(bx, by, int(bounds.Width())+3, int(bounds.Height())+3, core.ColorGray)

	s.world.ForEach(func(_ phys.BodyID, body *phys.MotionState) {
		x := dst.Width()/2 + int(body.Pos.X)
		y := dst.Height()/2 - int(body.Pos.Y)

		color := core.ColorCyan
		if body.Speed() > s.cfg.MaxSpeed/2 {
			color = core.ColorBrightCyan
		}
		dst.SetColored(x, y, BodyChar, color)
	})

	hud := fmt.Sprintf(" swarm  bodies %d  bounces %d ", s.world.Len(), s.bounces)
	if s.paused {
		hud += "[PAUSED] "
	}
	dst.DrawTextColored(1, 0, hud, core.ColorGray)
}

func init() {
	scene.Register("swarm", func() scene.Scene {
		return New()
	})
}
