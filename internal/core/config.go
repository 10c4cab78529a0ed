package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed tick duration in seconds.
// A non-positive tick rate yields 0, which the physics core treats as a no-op.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(c.TickRate)
}

// SceneState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Ticks     int     // Simulation ticks elapsed
	Bounces   int     // Boundary hits so far
	PeakSpeed float64 // Highest speed observed, units/second
	Paused    bool    // Whether the scene is paused
	Done      bool    // Whether the scene has ended
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
