// Command tetrion-bench drives engine.Solve over a scripted or randomly
// bagged piece sequence and reports search throughput. It is a demo/
// benchmark harness, not part of the decision core's public API.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/tetrion/internal/bench"
	"github.com/hailam/tetrion/internal/board"
	"github.com/hailam/tetrion/internal/engine"
	"github.com/hailam/tetrion/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	depth      = flag.Int("depth", 2, "search depth (0..3)")
	placements = flag.Int("placements", 50, "number of placements to play out")
	seed       = flag.Int64("seed", 1, "bag randomizer seed")
	persist    = flag.Bool("persist", false, "save the run to the local BadgerDB bench store")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	rec := bench.New()
	cfg := engine.Config{Depth: *depth, Mode: engine.ModeNorm, Recorder: rec}

	state := engine.NewState()
	state.Queue = bagQueue(*seed, *placements+7)

	start := time.Now()
	played := 0
	for played < *placements {
		result, ok := engine.Solve(state, cfg)
		if !ok {
			log.Printf("game over after %d placements (no legal move)", played)
			break
		}
		state = result.State
		state.Queue = append(state.Queue, nextBagPieces(*seed, played)...)
		played++
	}
	elapsed := time.Since(start)

	snap := rec.Snapshot()
	log.Printf("played %d placements in %s", played, elapsed)
	log.Printf("solve calls: %s", humanize.Comma(int64(snap.SolveCalls)))
	log.Printf("placements enumerated: %s", humanize.Comma(int64(snap.PlacementsSeen)))
	log.Printf("evaluator calls: %s", humanize.Comma(int64(snap.EvaluatorCalls)))
	log.Printf("nodes/sec: %s", humanize.Comma(int64(float64(snap.NodesExpanded)/elapsed.Seconds())))

	if *persist {
		store, err := storage.NewBenchStore()
		if err != nil {
			log.Fatalf("opening bench store: %v", err)
		}
		defer store.Close()

		run := storage.BenchRun{
			Timestamp:  time.Now(),
			Depth:      *depth,
			QueueLen:   played,
			Counters:   snap,
			DurationMs: elapsed.Milliseconds(),
		}
		if err := store.SaveRun(run); err != nil {
			log.Fatalf("saving bench run: %v", err)
		}
		log.Printf("run persisted")
	}
}

var allPieces = [7]board.Piece{board.I, board.O, board.T, board.S, board.Z, board.J, board.L}

// bagQueue deterministically generates n pieces using a seeded 7-bag
// randomizer (standard modern-Tetris piece source).
func bagQueue(seed int64, n int) []board.Piece {
	r := rand.New(rand.NewSource(seed))
	var out []board.Piece
	for len(out) < n {
		out = append(out, shuffledBag(r)...)
	}
	return out[:n]
}

// nextBagPieces draws a deterministic replacement slice so the running
// queue stays topped up; it reseeds per call index so repeated runs with
// the same seed/placements reproduce identically.
func nextBagPieces(seed int64, playedSoFar int) []board.Piece {
	r := rand.New(rand.NewSource(seed + int64(playedSoFar) + 1))
	return shuffledBag(r)
}

func shuffledBag(r *rand.Rand) []board.Piece {
	bag := allPieces
	r.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	return bag[:]
}
