// Package config provides YAML-based scene configuration loading for the
// physbox platform.
package config

// PhysicsConfig defines the physics parameters shared by all scenes.
// Values are in world units (screen cells for the TUI scenes) and seconds.
type PhysicsConfig struct {
	// Force is the base input thrust in units/second².
	Force float64 `yaml:"force"`
	// BoostFactor multiplies the force while boost is held.
	BoostFactor float64 `yaml:"boost_factor"`
	// Friction is the per-body damping coefficient in [0, 1].
	Friction float64 `yaml:"friction"`
	// AmbientFriction is the bounds-level damping coefficient in [0, 1].
	AmbientFriction float64 `yaml:"ambient_friction"`
	// DampingMode selects the damping source: "body", "ambient" or "both".
	DampingMode string `yaml:"damping_mode"`
	// BounceFactor scales reflected velocity on a boundary hit.
	BounceFactor float64 `yaml:"bounce_factor"`
	// Margin shrinks the playable rectangle inward from the viewport edge.
	Margin float64 `yaml:"margin"`
}

// CubeConfig contains all configuration for the player cube scene.
type CubeConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
}

// SwarmConfig contains all configuration for the swarm scene.
type SwarmConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	// Population is the number of drifting bodies to spawn.
	Population int `yaml:"population"`
	// MaxSpeed bounds the random initial velocity per axis, units/second.
	MaxSpeed float64 `yaml:"max_speed"`
}
