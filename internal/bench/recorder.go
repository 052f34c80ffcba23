// Package bench provides optional, caller-owned instrumentation for
// engine.Solve. The engine never creates one; it only updates the *Recorder
// a caller passes in through engine.Config, and the caller reads it after
// Solve returns.
package bench

import "sync/atomic"

// Recorder accumulates node/placement counters across a single Solve call
// (or a whole benchmark run, at the caller's discretion). Every field is an
// atomic so concurrent search goroutines can bump it without a lock.
// State is always caller-owned rather than global, so multiple
// Solve calls (or concurrent benchmark runs) never share counters
// unintentionally.
type Recorder struct {
	NodesExpanded   atomic.Uint64
	PlacementsSeen  atomic.Uint64
	SolveCalls      atomic.Uint64
	EvaluatorCalls  atomic.Uint64
}

// New returns a zeroed Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Snapshot is a point-in-time, non-atomic copy suitable for logging or
// persistence (internal/storage.BenchStore).
type Snapshot struct {
	NodesExpanded  uint64
	PlacementsSeen uint64
	SolveCalls     uint64
	EvaluatorCalls uint64
}

// Snapshot reads every counter once and returns a plain value copy.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return Snapshot{
		NodesExpanded:  r.NodesExpanded.Load(),
		PlacementsSeen: r.PlacementsSeen.Load(),
		SolveCalls:     r.SolveCalls.Load(),
		EvaluatorCalls: r.EvaluatorCalls.Load(),
	}
}

// AddPlacements and the other Add* helpers are no-ops on a nil Recorder so
// callers can pass nil when they don't want instrumentation.
func (r *Recorder) AddPlacements(n int) {
	if r != nil {
		r.PlacementsSeen.Add(uint64(n))
	}
}

func (r *Recorder) IncSolveCalls() {
	if r != nil {
		r.SolveCalls.Add(1)
	}
}

func (r *Recorder) IncEvaluatorCalls() {
	if r != nil {
		r.EvaluatorCalls.Add(1)
	}
}

func (r *Recorder) AddNodesExpanded(n int) {
	if r != nil {
		r.NodesExpanded.Add(uint64(n))
	}
}
