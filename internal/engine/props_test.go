package engine

import (
	"testing"

	"github.com/hailam/tetrion/internal/board"
)

// TestSetPropsFlatPlacementNoClear covers a piece locked flat along the
// bottom row of an empty board with no resulting clear.
func TestSetPropsFlatPlacementNoClear(t *testing.T) {
	var locked board.Board
	locked[19] = 0b0000001111 // an L-shaped lock, simplified to a partial row

	stats := Stats{}
	out := SetProps(locked, board.Placement{}, &stats)

	if stats.Ds != 0 || stats.Atk != 0 {
		t.Fatalf("stats = %+v, want Ds=0 Atk=0", stats)
	}
	if out != locked {
		t.Fatalf("no-clear SetProps should not mutate the board")
	}
	if stats.Combo != 0 || stats.B2B != 0 {
		t.Fatalf("stats = %+v, want Combo=0 B2B=0 after a non-clearing move", stats)
	}
}

// TestSetPropsPerfectClear covers a fully packed board cleared to empty by a
// single placement: the perfect-clear bonus must push the attack value to at
// least PerfectClearBonus regardless of the clear type that triggered it.
func TestSetPropsPerfectClear(t *testing.T) {
	var locked board.Board
	locked[18] = 0b1111111111
	locked[19] = 0b1111111111

	stats := Stats{}
	out := SetProps(locked, board.Placement{}, &stats)

	if stats.Ds != 2 {
		t.Fatalf("Ds = %d, want 2", stats.Ds)
	}
	if !out.Empty() {
		t.Fatalf("board should be empty after a perfect clear")
	}
	if stats.Atk < PerfectClearBonus {
		t.Fatalf("Atk = %d, want >= PerfectClearBonus (%d)", stats.Atk, PerfectClearBonus)
	}
	if stats.Combo != 1 {
		t.Fatalf("Combo = %d, want 1", stats.Combo)
	}
}

func TestSetPropsTSpinDoubleUsesB2BTable(t *testing.T) {
	var locked board.Board
	locked[18] = 0b1111111111
	locked[19] = 0b1111111111

	stats := Stats{}
	pl := board.Placement{TSpin: true}
	SetProps(locked, pl, &stats)

	if stats.Ds != 2 {
		t.Fatalf("Ds = %d, want 2", stats.Ds)
	}
	want := B2BTable(0, clearTSD, 0) + PerfectClearBonus
	if stats.Atk != want {
		t.Fatalf("Atk = %d, want %d (B2B_TABLE[0][tsd][0] + perfect clear)", stats.Atk, want)
	}
	if stats.B2B != 1 {
		t.Fatalf("B2B = %d, want 1 after a T-spin-with-clears", stats.B2B)
	}
}

func TestSetPropsComboResetsOnNoClear(t *testing.T) {
	stats := Stats{Combo: 4, B2B: 2}
	var locked board.Board
	locked[19] = 0b0000001111
	SetProps(locked, board.Placement{}, &stats)

	if stats.Combo != 0 {
		t.Fatalf("Combo = %d, want reset to 0 on a non-clearing move", stats.Combo)
	}
	if stats.B2B != 0 {
		t.Fatalf("B2B = %d, want reset to 0 on a non-clearing move", stats.B2B)
	}
}
