package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		scene     string
		ticks     int
		bounces   int
		peakSpeed float64
	}{
		{"cube", 600, 4, 820.5},
		{"cube", 1200, 12, 1640.0},
		{"cube", 300, 1, 310.0},
		{"swarm", 6000, 900, 30.0},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s.scene, s.ticks, s.bounces, s.peakSpeed); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions("cube", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 cube sessions, got %d", len(top))
	}
	if top[0].Bounces != 12 || top[1].Bounces != 4 || top[2].Bounces != 1 {
		t.Errorf("Sessions not sorted by bounces: %d, %d, %d",
			top[0].Bounces, top[1].Bounces, top[2].Bounces)
	}
	if top[0].PeakSpeed != 1640.0 {
		t.Errorf("peak speed = %f, expected 1640", top[0].PeakSpeed)
	}

	best, err := store.BestBounces("cube")
	if err != nil {
		t.Fatalf("BestBounces() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("BestBounces() = %d, expected 12", best)
	}
}

func TestStoreSceneIsolation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession("cube", 100, 2, 50); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession("swarm", 100, 40, 30); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	cube, err := store.TopSessions("cube", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(cube) != 1 || cube[0].SceneID != "cube" {
		t.Errorf("cube query returned %d entries, expected 1 cube entry", len(cube))
	}
}

func TestStoreEmptyScene(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.RecentSessions("cube", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no sessions, got %d", len(entries))
	}

	best, err := store.BestBounces("cube")
	if err != nil {
		t.Fatalf("BestBounces() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestBounces() on empty scene = %d, expected 0", best)
	}
}
