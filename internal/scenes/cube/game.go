// Package cube implements the player cube scene: a single controlled body
// pushed around a bounded world, damped by friction and bouncing off walls.
package cube

import (
	"fmt"

	"physbox/internal/config"
	"physbox/internal/core"
	"physbox/internal/phys"
	"physbox/internal/scene"
)

// CubeChar is the rune the player cube renders as.
const CubeChar = '█'

var (
	configPath string
)

// SetConfigPath sets a custom config file path for the next scene instance.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the player cube simulation.
type Scene struct {
	cfg     config.CubeConfig
	runtime core.RuntimeConfig

	world  *phys.World
	player phys.BodyID
	ctrl   phys.Controller

	// Input echo for this frame, used for recoloring the cube.
	thrusting bool
	boosting  bool

	ticks     int
	bounces   int
	peakSpeed float64
	paused    bool
}

// New creates a new player cube scene instance.
func New() *Scene {
	cfg, err := config.LoadCube(configPath)
	if err != nil {
		cfg = config.DefaultCubeConfig()
	}
	return &Scene{cfg: cfg}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "cube"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Player Cube"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	// World units are screen cells, origin at the viewport center. The
	// margin keeps the playable rectangle inside the border drawing.
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
		// Degenerate terminal size; fall back to a minimal world.
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
	s.player = s.world.Spawn(phys.NewMotionState(core.Vec2{}, s.cfg.Physics.Friction))
	s.ctrl = phys.Controller{
		Force:       s.cfg.Physics.Force,
		BoostFactor: s.cfg.Physics.BoostFactor,
	}

	s.thrusting = false
	s.boosting = false
	s.ticks = 0
	s.bounces = 0
	s.peakSpeed = 0
	s.paused = false
}

// Step advances the simulation by one fixed tick:
// input mapping, then integration, then boundary resolution.
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

	body := s.world.Body(s.player)
	s.ctrl.Apply(in, body)
	s.thrusting = !body.Acc.IsZero()
	s.boosting = s.thrusting && in.Has(core.ActionBoost)

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

// Render draws the world border, the cube and the HUD.
func (s *Scene) Render(dst *core.Screen) {
	bounds := s.world.Bounds()

	// Border one cell outside the playable rectangle.
	bx, by := s.toScreen(dst, core.Vec2{X: bounds.Min.X, Y: bounds.Max.Y})
	bw := int(bounds.Width()) + 3
	bh := int(bounds.Height()) + 3
	dst.DrawBox(bx-1, by-1, bw, bh, core.ColorGray)

	body := s.world.Body(s.player)

	// The cube recolors with input, echoing thrust and boost.
	color := core.ColorBlue
	switch {
	case s.boosting:
		color = core.ColorBrightMagenta
	case s.thrusting:
		color = core.ColorBrightCyan
	}

	x, y := s.toScreen(dst, body.Pos)
	dst.SetColored(x, y, CubeChar, color)

	hud := fmt.Sprintf(" cube  vel %+6.1f %+6.1f  spd %6.1f  bounces %d ",
		body.Vel.X, body.Vel.Y, body.Speed(), s.bounces)
	if s.paused {
		hud += "[PAUSED] "
	}
	dst.DrawTextColored(1, 0, hud, core.ColorGray)
}

// toScreen maps world coordinates (origin center, Y up) to screen cells
// (origin top-left, Y down).
func (s *Scene) toScreen(dst *core.Screen, p core.Vec2) (int, int) {
	x := dst.Width()/2 + int(p.X+0.5*sign(p.X))
	y := dst.Height()/2 - int(p.Y+0.5*sign(p.Y))
	return x, y
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func init() {
	scene.Register("cube", func() scene.Scene {
		return New()
	})
}
