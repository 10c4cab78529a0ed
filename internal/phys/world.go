package phys

import (
	"runtime"
	"sync"
)

// BodyID is a stable handle for a body in a World. IDs are never reused
// within a World's lifetime.
type BodyID int

// parallelThreshold is the live-body count above which Step fans out across
// goroutines. Below it the goroutine overhead outweighs the work.
const parallelThreshold = 256

// StepStats summarizes one tick of a World.
type StepStats struct {
	Bounces   int     // Axis hits across all bodies this tick (a corner counts twice)
	PeakSpeed float64 // Highest post-integration speed this tick, units/second
}

// World owns an arena of Motion States and runs the per-tick pipeline over
// them. Bodies are fully independent: no system reads another body's state,
// so the update is embarrassingly parallel per body. The bounds are read-only
// during a tick; resizing, if ever added, belongs between ticks.
type World struct {
	bounds Bounds
	mode   DampingMode
	bodies []MotionState
	alive  []bool
	live   int
}

// NewWorld creates an empty world with the given bounds and damping mode.
func NewWorld(bounds Bounds, mode DampingMode) *World {
	return &World{
		bounds: bounds,
		mode:   mode,
	}
}

// Bounds returns the world rectangle and collision response parameters.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// DampingMode returns the active damping source selection.
func (w *World) DampingMode() DampingMode {
	return w.mode
}

// Spawn adds a body and returns its handle.
func (w *World) Spawn(st MotionState) BodyID {
	w.bodies = append(w.bodies, st)
	w.alive = append(w.alive, true)
	w.live++
	return BodyID(len(w.bodies) - 1)
}

// Despawn removes a body. Despawning an unknown or dead ID is a no-op.
func (w *World) Despawn(id BodyID) {
	if int(id) < 0 || int(id) >= len(w.bodies) || !w.alive[id] {
		return
	}
	w.alive[id] = false
	w.live--
}

// Body returns a pointer to the body's Motion State, or nil if the ID is
// unknown or despawned. The pointer is valid until the next Spawn.
func (w *World) Body(id BodyID) *MotionState {
	if int(id) < 0 || int(id) >= len(w.bodies) || !w.alive[id] {
		return nil
	}
	return &w.bodies[id]
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.live
}

// ForEach visits every live body in spawn order.
func (w *World) ForEach(fn func(id BodyID, body *MotionState)) {
	for i := range w.bodies {
		if w.alive[i] {
			fn(BodyID(i), &w.bodies[i])
		}
	}
}

// Step advances the simulation one tick: integration over every live body,
// then boundary resolution over every live body. The two phases run in that
// strict order; callers write input acceleration before Step so the full
// pipeline per tick is input → integrate → resolve.
func (w *World) Step(dt float64) StepStats {
	if w.live >= parallelThreshold {
		return w.stepParallel(dt)
	}

	var stats StepStats
	for i := range w.bodies {
		if !w.alive[i] {
			continue
		}
		Integrate(&w.bodies[i], w.bounds, w.mode, dt)
		if speed := w.bodies[i].Speed(); speed > stats.PeakSpeed {
			stats.PeakSpeed = speed
		}
	}
	for i := range w.bodies {
		if !w.alive[i] {
			continue
		}
		stats.Bounces += Resolve(&w.bodies[i], w.bounds).Count()
	}
	return stats
}

// stepParallel is Step fanned out over GOMAXPROCS chunks. The barrier
// between the integrate and resolve phases preserves the pipeline order;
// within a phase bodies never touch each other's state.
func (w *World) stepParallel(dt float64) StepStats {
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(w.bodies) + workers - 1) / workers

	partial := make([]StepStats, workers)

	w.inChunks(workers, chunk, func(worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			if !w.alive[i] {
				continue
			}
			Integrate(&w.bodies[i], w.bounds, w.mode, dt)
			if speed := w.bodies[i].Speed(); speed > partial[worker].PeakSpeed {
				partial[worker].PeakSpeed = speed
			}
		}
	})

	w.inChunks(workers, chunk, func(worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			if !w.alive[i] {
				continue
			}
			partial[worker].Bounces += Resolve(&w.bodies[i], w.bounds).Count()
		}
	})

	var stats StepStats
	for _, p := range partial {
		stats.Bounces += p.Bounces
		if p.PeakSpeed > stats.PeakSpeed {
			stats.PeakSpeed = p.PeakSpeed
		}
	}
	return stats
}

// inChunks runs fn over [lo, hi) body ranges on worker goroutines and waits
// for all of them.
func (w *World) inChunks(workers, chunk int, fn func(worker, lo, hi int)) {
	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		lo := worker * chunk
		if lo >= len(w.bodies) {
			break
		}
		hi := lo + chunk
		if hi > len(w.bodies) {
			hi = len(w.bodies)
		}
		wg.Add(1)
		go func(worker, lo, hi int) {
			defer wg.Done()
			fn(worker, lo, hi)
		}(worker, lo, hi)
	}
	wg.Wait()
}
