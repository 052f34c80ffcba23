package engine

import (
	"testing"

	"github.com/hailam/tetrion/internal/board"
)

func TestSolveEmptyQueueReturnsNone(t *testing.T) {
	s := NewState()
	_, ok := Solve(s, Config{Depth: 0, Mode: ModeAttack})
	if ok {
		t.Fatal("Solve with an empty queue should return ok=false")
	}
}

// TestSolveDepthZeroPicksBestImmediateChild checks that at depth 0, Solve
// returns the placement whose immediate child has the maximal evaluator
// score.
func TestSolveDepthZeroPicksBestImmediateChild(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.L}

	result, ok := Solve(s, Config{Depth: 0, Mode: ModeAttack})
	if !ok {
		t.Fatal("Solve should find at least one placement on an empty board")
	}

	placements := s.Enumerate()
	var want float32 = -1 << 30
	for lockedBoard, pl := range placements {
		child := s.CloneAsChild(lockedBoard, pl)
		if score := Evaluate(child, ModeAttack); score > want {
			want = score
		}
	}
	if result.Score != want {
		t.Fatalf("Solve depth=0 score = %v, want max child score %v", result.Score, want)
	}
}

func TestSolveDepthGreaterThanZeroReturnsSomeResult(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.O, board.L, board.T}

	_, ok := Solve(s, Config{Depth: 1, Mode: ModeNorm})
	if !ok {
		t.Fatal("Solve with a 3-piece queue and depth=1 should find a move")
	}
}

func TestBeamPruneRespectsStrictCutoff(t *testing.T) {
	cands := make([]candidate, 20)
	for i := range cands {
		cands[i] = candidate{score: float32(i)}
	}
	survivors := beamPrune(cands, 1) // STRICT_CUTOFF[0] == 12
	if len(survivors) > strictCutoff[0] {
		t.Fatalf("beamPrune returned %d survivors, want <= %d", len(survivors), strictCutoff[0])
	}
}

func TestBeamPruneKeepsTopScores(t *testing.T) {
	cands := []candidate{{score: 0}, {score: 5}, {score: 10}}
	survivors := beamPrune(cands, 3) // smallest cutoff factor (0.25), the narrowest score window
	// the top score must always survive regardless of cutoff math.
	found := false
	for _, s := range survivors {
		if s.score == 10 {
			found = true
		}
	}
	if !found {
		t.Fatal("beamPrune dropped the top-scoring candidate")
	}
}
