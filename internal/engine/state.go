// Package engine implements the game-state transition and scoring model and
// the bounded-depth parallel beam search that drives move selection.
package engine

import "github.com/hailam/tetrion/internal/board"

// Stats holds the rolling per-path aggregates and the most recent move's
// clear outcome.
type Stats struct {
	SumAtk, SumDs int
	Atk, Ds       int
	B2B, Combo    int
	ClearsBitmap  uint32
}

// State is the queue, hold slot, board, and rolling stats a search node
// carries. It is immutable to callers of Solve; children are produced by
// CloneAsChild.
type State struct {
	Queue []board.Piece
	Hold  board.Piece
	Board board.Board
	Stats Stats
}

// NewState returns an empty State: empty board, empty hold, empty queue.
func NewState() State {
	return State{Hold: board.None}
}

// Front backs board.Queue's Front (via queueView): the piece to be placed next, or board.None
// if the queue is empty.
func (s State) Front() board.Piece {
	if len(s.Queue) == 0 {
		return board.None
	}
	return s.Queue[0]
}

// Second backs board.Queue's Second (via queueView): the piece after Front, or board.None if
// there isn't one.
func (s State) Second() board.Piece {
	if len(s.Queue) < 2 {
		return board.None
	}
	return s.Queue[1]
}

// HoldPiece returns the hold-slot piece; queueView exposes it as
// board.Queue's Hold.
func (s State) HoldPiece() board.Piece {
	return s.Hold
}

// satisfy the board.Queue interface name (method Hold() vs field Hold) —
// Go allows a value-type field and method to share a name only on distinct
// types, so the interface method is named HoldPiece; queueView adapts it.
type queueView struct{ s State }

func (q queueView) Front() board.Piece  { return q.s.Front() }
func (q queueView) Second() board.Piece { return q.s.Second() }
func (q queueView) Hold() board.Piece   { return q.s.HoldPiece() }

// Enumerate runs board.Enumerate against this state's board and queue.
func (s State) Enumerate() map[board.Board]board.Placement {
	return board.Enumerate(s.Board, queueView{s})
}

// CloneAsChild derives the child State reached by locking pl onto lockedBoard
// (the board board.ApplyMove already painted the piece onto, pre-clear).
// SumAtk/SumDs accumulate the *parent's* last-move atk/ds before SetProps
// overwrites Atk/Ds with this move's own clear outcome. The queue then
// advances by one piece, or two if this placement performed the first-ever
// hold from an empty hold slot (the piece swapped out of hold is also
// consumed from the queue in that case).
func (s State) CloneAsChild(lockedBoard board.Board, pl board.Placement) State {
	stats := s.Stats
	stats.SumAtk += s.Stats.Atk
	stats.SumDs += s.Stats.Ds

	clearedBoard := SetProps(lockedBoard, pl, &stats)

	queue := make([]board.Piece, len(s.Queue))
	copy(queue, s.Queue)
	hold := s.Hold

	if pl.Hold {
		hold, queue = queue[0], queue[1:]
		if s.Hold == board.None {
			queue = queue[1:]
		}
	} else {
		queue = queue[1:]
	}

	return State{
		Queue: queue,
		Hold:  hold,
		Board: clearedBoard,
		Stats: stats,
	}
}
