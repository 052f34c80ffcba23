package engine

import "github.com/hailam/tetrion/internal/board"

// SetProps locks pl onto lockedBoard (already painted by board.ApplyMove,
// not yet cleared), clears full rows, computes the attack/downstack value of
// the clear, and updates the rolling combo/back-to-back counters in stats.
// It returns the post-clear board.
func SetProps(lockedBoard board.Board, pl board.Placement, stats *Stats) board.Board {
	cleared, clears, bitmap := lockedBoard.ClearRows()
	stats.ClearsBitmap = bitmap

	tspinClear := pl.TSpin && clears >= 1
	tetris := clears == 4

	var atk int
	switch {
	case clears == 0:
		atk = 0
	case tspinClear:
		atk = B2BTable(stats.B2B, clears, stats.Combo)
	case tetris:
		atk = B2BTable(stats.B2B, clearTetris, stats.Combo)
	default:
		atk = TableN(clears, stats.Combo)
	}

	if clears > 0 && cleared.Empty() {
		atk += PerfectClearBonus
	}

	stats.Atk = atk
	stats.Ds = clears

	if clears > 0 {
		stats.Combo++
	} else {
		stats.Combo = 0
	}

	if tetris || tspinClear {
		stats.B2B++
	} else {
		stats.B2B = 0
	}

	return cleared
}
