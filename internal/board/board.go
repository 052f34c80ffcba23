package board

// Width and Height are the playfield dimensions. Column 0 is bit 0 of each
// row mask; row 0 is the top of the field, row Height-1 the bottom.
const (
	Width  = 10
	Height = 20
)

const fullRow = uint16(1<<Width) - 1

// Board is a 10x20 bitboard. Each row is a 10-bit occupancy mask. The zero
// value is an empty field.
//
// Board is a plain comparable array type so it can be used directly as a Go
// map key (see Enumerate): two Boards with identical occupancy compare equal
// without needing a digest.
type Board [Height]uint16

// CheckConflict reports whether painting piece p, at the pose described by
// pl (center column pl.X, center row pl.Y, rotation pl.R), would collide
// with existing occupancy or leave the playfield. Mirrors
// Field::check_conflict in the reference implementation.
func (b Board) CheckConflict(pl Placement, p Piece) bool {
	n := p.BoxSize()
	rows := Shape(p, pl.R)
	cx := int(pl.X) - n/2
	cy := int(pl.Y) - n/2

	for y := 0; y < n; y++ {
		rowMask := rows[y]
		if rowMask == 0 {
			continue
		}
		by := cy + y
		if by < 0 {
			return true
		}
		if by >= Height {
			return true
		}
		if cx < 0 && rowMask&((1<<uint(-cx))-1) > 0 {
			return true
		}
		var shifted uint16
		if cx > 0 {
			shifted = rowMask << uint(cx)
		} else {
			shifted = rowMask >> uint(-cx)
		}
		if shifted > fullRow {
			return true
		}
		if b[by]&shifted > 0 {
			return true
		}
	}
	return false
}

// ApplyMove paints the locked piece from pl onto a copy of b and returns the
// result. piece is the current piece, held is the hold-slot piece; pl.Hold
// selects which of the two is actually painted. ApplyMove panics if pl
// describes an out-of-bounds pose — that indicates a programming error in
// the caller, since a well-formed locked Placement never triggers this.
func (b Board) ApplyMove(pl Placement, piece, held Piece) Board {
	p := piece
	if pl.Hold {
		p = held
	}
	n := p.BoxSize()
	rows := Shape(p, pl.R)
	cx := int(pl.X) - n/2
	cy := int(pl.Y) - n/2

	out := b
	for y := 0; y < n; y++ {
		rowMask := rows[y]
		if rowMask == 0 {
			continue
		}
		by := cy + y
		if by < 0 || by >= Height {
			panic("board: ApplyMove out of bounds on vertical edge")
		}
		if cx < 0 && rowMask&((1<<uint(-cx))-1) > 0 {
			panic("board: ApplyMove out of bounds on left edge")
		}
		var shifted uint16
		if cx > 0 {
			shifted = rowMask << uint(cx)
		} else {
			shifted = rowMask >> uint(-cx)
		}
		if shifted > fullRow {
			panic("board: ApplyMove out of bounds on right edge")
		}
		out[by] |= shifted
	}
	return out
}

// ClearRows removes every full row from b, shifting the rows above it down,
// and returns the resulting board along with the number of rows cleared and
// a bitmap of which of the 20 rows (pre-clear indices) were cleared.
func (b Board) ClearRows() (out Board, clears int, clearsBitmap uint32) {
	out = b
	n := 0
	for y := Height - 1; y >= 0; y-- {
		if b[y] == fullRow {
			clearsBitmap |= 1 << uint(y)
			n++
			out[y] = 0
			continue
		}
		if n > 0 {
			out[y+n] = b[y]
			out[y] = 0
		}
	}
	return out, n, clearsBitmap
}

// Empty reports whether every row of b is unoccupied.
func (b Board) Empty() bool {
	for _, row := range b {
		if row != 0 {
			return false
		}
	}
	return true
}

// Heights returns, for each of the 10 columns, the row index of the
// topmost occupied cell (0 = stack reaches the very top, Height = column is
// completely empty).
func (b Board) Heights() [Width]uint8 {
	var h [Width]uint8
	top := 0
	for top < Height && b[top] == 0 {
		top++
	}
	for x := 0; x < Width; x++ {
		h[x] = Height
		for y := top; y < Height; y++ {
			if b[y]&(1<<uint(x)) != 0 {
				h[x] = uint8(y)
				break
			}
		}
	}
	return h
}
