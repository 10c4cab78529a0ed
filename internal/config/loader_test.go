package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCubeEmbeddedDefault(t *testing.T) {
	cfg, err := LoadCube("")
	if err != nil {
		t.Fatalf("LoadCube() failed: %v", err)
	}

	want := DefaultCubeConfig()
	if cfg.Physics.Force != want.Physics.Force {
		t.Errorf("force = %f, expected %f", cfg.Physics.Force, want.Physics.Force)
	}
	if cfg.Physics.Friction != want.Physics.Friction {
		t.Errorf("friction = %f, expected %f", cfg.Physics.Friction, want.Physics.Friction)
	}
	if cfg.Physics.DampingMode != "body" {
		t.Errorf("damping_mode = %q, expected \"body\"", cfg.Physics.DampingMode)
	}
}

func TestLoadCubeCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cube.yaml")

	custom := `physics:
  force: 1234.0
  boost_factor: 2.0
  friction: 0.5
  ambient_friction: 0.0
  damping_mode: both
  bounce_factor: 0.8
  margin: 3.0
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadCube(path)
	if err != nil {
		t.Fatalf("LoadCube() failed: %v", err)
	}

	if cfg.Physics.Force != 1234.0 {
		t.Errorf("force = %f, expected 1234", cfg.Physics.Force)
	}
	if cfg.Physics.DampingMode != "both" {
		t.Errorf("damping_mode = %q, expected \"both\"", cfg.Physics.DampingMode)
	}
	if cfg.Physics.BounceFactor != 0.8 {
		t.Errorf("bounce_factor = %f, expected 0.8", cfg.Physics.BounceFactor)
	}
}

func TestLoadCubeMissingCustomPath(t *testing.T) {
	_, err := LoadCube(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadCube() with missing custom path should fail")
	}
}

func TestLoadSwarmEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSwarm("")
	if err != nil {
		t.Fatalf("LoadSwarm() failed: %v", err)
	}

	want := DefaultSwarmConfig()
	if cfg.Population != want.Population {
		t.Errorf("population = %d, expected %d", cfg.Population, want.Population)
	}
	if cfg.MaxSpeed != want.MaxSpeed {
		t.Errorf("max_speed = %f, expected %f", cfg.MaxSpeed, want.MaxSpeed)
	}
	if cfg.Physics.BounceFactor != 1.0 {
		t.Errorf("bounce_factor = %f, expected 1.0", cfg.Physics.BounceFactor)
	}
}
