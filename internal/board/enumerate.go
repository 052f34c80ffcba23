package board

import "log"

// Queue is the minimal view of the upcoming-piece queue and hold slot the
// enumerator needs. engine.State is adapted to it by an unexported view type.
type Queue interface {
	// Front returns the piece to be placed next, and Second the piece
	// after it (used when a hold swap empties into an empty hold slot).
	Front() Piece
	Second() Piece
	Hold() Piece
}

// enumKeys is the fixed key set the enumerator drives the BFS with —
// DASLeft/DASRight are part of Placement's public input vocabulary but
// aren't needed to reach every distinct locked board, so the BFS omits them.
var enumKeys = [7]Key{Left, Right, Cw, Ccw, Rotate180, SoftDrop, HardDrop}

// Enumerate performs a breadth-first search over reachable placements: from
// the spawn pose (and, if a hold piece is available, the spawn pose with
// Hold applied), it expands every reachable non-terminal placement and
// records the first Placement that reaches each distinct locked Board. An
// empty queue or a spawn-pose conflict (top-out) yields an empty result.
func Enumerate(field Board, q Queue) map[Board]Placement {
	result := make(map[Board]Placement)

	piece := q.Front()
	if piece == None {
		return result
	}
	held := q.Hold()
	if held == None {
		held = q.Second()
	}

	seen := make(map[uint64]struct{}, 256)
	queue := make([]Placement, 0, 64)

	spawn := NewPlacement()
	if !field.CheckConflict(spawn, piece) {
		queue = append(queue, spawn)
		seen[spawn.Digest()] = struct{}{}
	}
	if held != None {
		spawnHold := NewPlacement()
		spawnHold.ApplyKey(Hold, field, piece, held)
		if !field.CheckConflict(spawnHold, held) {
			queue = append(queue, spawnHold)
			seen[spawnHold.Digest()] = struct{}{}
		}
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if len(cur.Path) >= MaxPathLen {
			continue
		}
		for _, key := range enumKeys {
			next := cur
			// cur.Path's backing array must not be shared across sibling
			// branches: appendPath would otherwise let one branch's append
			// clobber another's in place.
			next.Path = append([]Key(nil), cur.Path...)
			if !next.ApplyKey(key, field, piece, held) {
				continue
			}
			if next.Lock {
				locked := field.ApplyMove(next, piece, held)
				if _, ok := result[locked]; !ok {
					result[locked] = next
				}
				continue
			}
			d := next.Digest()
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			queue = append(queue, next)
		}
	}

	if Debug {
		log.Printf("board: enumerate visited=%d terminal=%d", len(queue), len(result))
	}

	return result
}
