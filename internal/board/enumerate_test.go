package board

import "testing"

type fixedQueue struct {
	front, second, hold Piece
}

func (q fixedQueue) Front() Piece  { return q.front }
func (q fixedQueue) Second() Piece { return q.second }
func (q fixedQueue) Hold() Piece   { return q.hold }

func TestEnumerateEmptyQueueYieldsEmptyResult(t *testing.T) {
	var b Board
	q := fixedQueue{front: None}
	got := Enumerate(b, q)
	if len(got) != 0 {
		t.Fatalf("Enumerate with an empty queue returned %d boards, want 0", len(got))
	}
}

func TestEnumerateTopOutYieldsEmptyResult(t *testing.T) {
	var b Board
	for y := 0; y < Height; y++ {
		b[y] = fullRow
	}
	q := fixedQueue{front: T, hold: None}
	got := Enumerate(b, q)
	if len(got) != 0 {
		t.Fatalf("Enumerate on a filled board returned %d boards, want 0", len(got))
	}
}

func TestEnumerateEmptyBoardProducesPlacements(t *testing.T) {
	var b Board
	q := fixedQueue{front: L, hold: None}
	got := Enumerate(b, q)
	if len(got) == 0 {
		t.Fatal("Enumerate on an empty board with a piece in queue returned nothing")
	}
	for _, pl := range got {
		if !pl.Lock {
			t.Fatalf("placement %+v in the result map is not locked", pl)
		}
		if len(pl.Path) == 0 {
			t.Fatalf("placement %+v has an empty path", pl)
		}
	}
}

// TestEnumerateReplayReachesSameBoard checks enumeration completeness:
// replaying a result's path from spawn reaches the board that keys it.
func TestEnumerateReplayReachesSameBoard(t *testing.T) {
	var b Board
	q := fixedQueue{front: L, second: J, hold: None}
	got := Enumerate(b, q)

	for wantBoard, pl := range got {
		replay := NewPlacement()
		for _, key := range pl.Path {
			if !replay.ApplyKey(key, b, L, J) {
				t.Fatalf("replay of path %v failed at key %v", pl.Path, key)
			}
		}
		gotBoard := b.ApplyMove(replay, L, J)
		if gotBoard != wantBoard {
			t.Fatalf("replaying path %v produced a different board than the result map key", pl.Path)
		}
	}
}

func TestEnumerateResultMapHasNoDuplicateBoards(t *testing.T) {
	var b Board
	q := fixedQueue{front: T, hold: O}
	got := Enumerate(b, q)
	seen := make(map[Board]bool, len(got))
	for board := range got {
		if seen[board] {
			t.Fatalf("board %v appears twice as a result key", board)
		}
		seen[board] = true
	}
}
