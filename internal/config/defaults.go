package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

//go:embed defaults/swarm.yaml
var defaultSwarmYAML []byte

// DefaultCubeConfig returns the default player cube configuration.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		Physics: PhysicsConfig{
			Force:           600.0,
			BoostFactor:     3.0,
			Friction:        0.95,
			AmbientFriction: 0.1,
			DampingMode:     "body",
			BounceFactor:    2.0,
			Margin:          1.0,
		},
	}
}

// DefaultSwarmConfig returns the default swarm configuration.
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Physics: PhysicsConfig{
			Force:           0.0,
			BoostFactor:     1.0,
			Friction:        0.02,
			AmbientFriction: 0.0,
			DampingMode:     "body",
			BounceFactor:    1.0,
			Margin:          1.0,
		},
		Population: 400,
		MaxSpeed:   30.0,
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "cube":
		return defaultCubeYAML
	case "swarm":
		return defaultSwarmYAML
	default:
		return nil
	}
}
