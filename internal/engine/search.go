package engine

import (
	"log"
	"math"
	"sort"

	"github.com/hailam/tetrion/internal/bench"
	"github.com/hailam/tetrion/internal/board"
	"golang.org/x/sync/errgroup"
)

// Debug gates verbose search logging. Off by default; set it from a caller
// (e.g. a CLI flag) to log node counts and beam-prune decisions as Solve
// descends.
var Debug = false

// Config bounds a Solve call: Depth is the remaining recursion budget
// (0..=3), Mode selects the evaluator. Recorder is optional instrumentation
// (nil is safe and has no effect) — the core algorithm itself does not
// depend on it.
type Config struct {
	Depth    int
	Mode     Mode
	Recorder *bench.Recorder
}

// Result is a found move: the immediate child reached by Placement, and its
// (possibly beam-informed) score.
type Result struct {
	State     State
	Placement board.Placement
	Score     float32
}

// scoreCutoffFactor and strictCutoff are the beam-pruning constants, indexed
// by depth-1. They are package vars (not consts, since arrays have no const
// form) so tests can assert against them directly. inheritanceF is the
// single weight of a survivor's own score when blending it with its
// subtree's result.
var scoreCutoffFactor = [3]float32{0.4, 0.3, 0.25}
var strictCutoff = [3]int{12, 11, 10}

const inheritanceF = float32(0.0)

type candidate struct {
	child     State
	placement board.Placement
	score     float32
}

// Solve is the public entry point: it enumerates, evaluates, and — when
// Depth > 0 — beam-prunes and recurses, forking one goroutine per surviving
// candidate at this, the outermost, expansion only. Deeper recursion happens
// sequentially inside each goroutine.
func Solve(s State, cfg Config) (Result, bool) {
	return solve(s, cfg, true)
}

func solve(s State, cfg Config, forkChildren bool) (Result, bool) {
	cfg.Recorder.IncSolveCalls()

	placements := s.Enumerate()
	cfg.Recorder.AddPlacements(len(placements))
	if len(placements) == 0 {
		return Result{}, false
	}

	cands := make([]candidate, 0, len(placements))
	for lockedBoard, pl := range placements {
		child := s.CloneAsChild(lockedBoard, pl)
		cfg.Recorder.IncEvaluatorCalls()
		cands = append(cands, candidate{child, pl, Evaluate(child, cfg.Mode)})
	}
	cfg.Recorder.AddNodesExpanded(len(cands))
	sort.Slice(cands, func(i, j int) bool { return cands[i].score < cands[j].score })

	if Debug {
		log.Printf("engine: depth=%d expanded=%d best=%.2f worst=%.2f",
			cfg.Depth, len(cands), cands[len(cands)-1].score, cands[0].score)
	}

	if cfg.Depth == 0 {
		best := cands[len(cands)-1]
		return Result{best.child, best.placement, best.score}, true
	}

	survivors := beamPrune(cands, cfg.Depth)
	childCfg := Config{Depth: cfg.Depth - 1, Mode: cfg.Mode, Recorder: cfg.Recorder}
	blended := make([]float32, len(survivors))

	recurse := func(i int) {
		r, ok := solve(survivors[i].child, childCfg, false)
		if !ok {
			blended[i] = float32(math.Inf(-1))
			return
		}
		blended[i] = survivors[i].score*inheritanceF + r.Score*(1-inheritanceF)
	}

	if forkChildren {
		g := new(errgroup.Group)
		for i := range survivors {
			i := i
			g.Go(func() error {
				recurse(i)
				return nil
			})
		}
		_ = g.Wait() // recurse never returns an error
	} else {
		for i := range survivors {
			recurse(i)
		}
	}

	final := make([]candidate, len(survivors))
	for i, surv := range survivors {
		final[i] = candidate{surv.child, surv.placement, blended[i]}
	}
	sort.Slice(final, func(i, j int) bool { return final[i].score < final[j].score })

	best := final[len(final)-1]
	return Result{best.child, best.placement, best.score}, true
}

// beamPrune applies a score-range cutoff followed by a hard cap on the
// surviving set size, both indexed by depth-1. cands must already be sorted
// ascending by score.
func beamPrune(cands []candidate, depth int) []candidate {
	min, max := cands[0].score, cands[len(cands)-1].score
	cutoff := max - (max-min)*scoreCutoffFactor[depth-1]

	survivors := cands[:0:0]
	for _, c := range cands {
		if c.score >= cutoff {
			survivors = append(survivors, c)
		}
	}

	if limit := strictCutoff[depth-1]; len(survivors) > limit {
		survivors = survivors[len(survivors)-limit:]
	}

	if Debug {
		log.Printf("engine: beamPrune depth=%d cutoff=%.2f survivors=%d", depth, cutoff, len(survivors))
	}
	return survivors
}
