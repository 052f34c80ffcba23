package engine

import (
	"testing"

	"github.com/hailam/tetrion/internal/board"
)

func TestStateFrontSecondEmptyQueue(t *testing.T) {
	s := NewState()
	if s.Front() != board.None {
		t.Fatalf("Front() on empty queue = %v, want None", s.Front())
	}
	if s.Second() != board.None {
		t.Fatalf("Second() on empty queue = %v, want None", s.Second())
	}
}

func TestStateCloneAsChildAdvancesQueueWithoutHold(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.L, board.T, board.J}

	var locked board.Board
	locked[19] = 0b0000001111
	child := s.CloneAsChild(locked, board.Placement{})

	if len(child.Queue) != 2 || child.Queue[0] != board.T || child.Queue[1] != board.J {
		t.Fatalf("child.Queue = %v, want [T J]", child.Queue)
	}
	if child.Hold != board.None {
		t.Fatalf("child.Hold = %v, want None (no hold placement)", child.Hold)
	}
}

func TestStateCloneAsChildFirstHoldPopsTwo(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.L, board.T, board.J}
	s.Hold = board.None

	var locked board.Board
	locked[19] = 0b0000001111
	child := s.CloneAsChild(locked, board.Placement{Hold: true})

	if child.Hold != board.L {
		t.Fatalf("child.Hold = %v, want L (the piece swapped into hold)", child.Hold)
	}
	if len(child.Queue) != 1 || child.Queue[0] != board.J {
		t.Fatalf("child.Queue = %v, want [J] (T was consumed as the placed piece)", child.Queue)
	}
}

func TestStateCloneAsChildSwapHoldPopsOne(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.L, board.T}
	s.Hold = board.J

	var locked board.Board
	locked[19] = 0b0000001111
	child := s.CloneAsChild(locked, board.Placement{Hold: true})

	if child.Hold != board.L {
		t.Fatalf("child.Hold = %v, want L", child.Hold)
	}
	if len(child.Queue) != 1 || child.Queue[0] != board.T {
		t.Fatalf("child.Queue = %v, want [T]", child.Queue)
	}
}

func TestStateCloneAsChildAccumulatesSum(t *testing.T) {
	s := NewState()
	s.Queue = []board.Piece{board.O}
	s.Stats = Stats{Atk: 4, Ds: 2, SumAtk: 10, SumDs: 3}

	var locked board.Board
	child := s.CloneAsChild(locked, board.Placement{})

	if child.Stats.SumAtk != 14 {
		t.Fatalf("child.Stats.SumAtk = %d, want 14 (10 + parent's atk 4)", child.Stats.SumAtk)
	}
	if child.Stats.SumDs != 5 {
		t.Fatalf("child.Stats.SumDs = %d, want 5 (3 + parent's ds 2)", child.Stats.SumDs)
	}
}
