package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// zobristCell holds one XOR key per (column, row) cell. Keys are seeded
// deterministically from xxhash.Sum64 of a fixed string, so Hash() is
// reproducible across processes without needing a stored table.
var zobristCell [Width][Height]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	var buf [8]byte
	seed := uint64(0x7465_7472_6973_0001) // "tetris" + version tag
	next := func() uint64 {
		binary.LittleEndian.PutUint64(buf[:], seed)
		h := xxhash.Sum64(buf[:])
		seed = h
		return h
	}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			zobristCell[x][y] = next()
		}
	}
}

// Hash returns a Zobrist-style digest of the board's occupancy. It is not
// used for enumeration dedup (Board is already a comparable array and is
// used directly as a map key) — it exists for bench keys, logging, and
// quick-reject comparisons.
func (b Board) Hash() uint64 {
	var h uint64
	for y := 0; y < Height; y++ {
		row := b[y]
		for row != 0 {
			x := trailingZeros16(row)
			h ^= zobristCell[x][y]
			row &= row - 1
		}
	}
	return h
}

func trailingZeros16(v uint16) int {
	if v == 0 {
		return 16
	}
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}

// HashString returns the board hash as a fixed-width hex string, convenient
// for use as a bench/storage key.
func (b Board) HashString() string {
	return fmt.Sprintf("%016x", b.Hash())
}
