package board

// Offset is a wall-kick test: the pose is retried at (x+dx, y-dy) relative
// to the pre-kick center.
type Offset struct{ DX, DY int }

// rotPair packs a (from, to) rotation-index pair into a lookup key.
type rotPair struct{ From, To uint8 }

// jlstzKicks and iKicks hold the standard Tetris Guideline Super Rotation
// System wall-kick data: five offset tests per adjacent rotation transition
// (0<->R, R<->2, 2<->L, L<->0). Non-adjacent transitions (180 degree spins,
// 0<->2 and R<->L) have no kick data in the official SRS; they get a single
// no-kick test padded to five entries, so a 180 only succeeds if the
// destination orientation doesn't conflict in place.
var jlstzKicks = map[rotPair][5]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[rotPair][5]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var noKick = [5]Offset{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}

// Kicks returns the five offset tests for rotating piece p from `from` to
// `to` (both mod 4). O never kicks, so it always gets the degenerate
// no-kick table.
func Kicks(p Piece, from, to uint8) [5]Offset {
	from, to = from&3, to&3
	if p == O {
		return noKick
	}
	table := jlstzKicks
	if p == I {
		table = iKicks
	}
	if off, ok := table[rotPair{from, to}]; ok {
		return off
	}
	return noKick
}
