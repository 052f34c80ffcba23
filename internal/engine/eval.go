package engine

import "github.com/hailam/tetrion/internal/board"

// Mode selects which weight/factor set Evaluate uses.
type Mode int

const (
	ModeNorm Mode = iota
	ModeAttack
	ModeDownstack
)

// Weights is one tuned term set. The Attack and Downstack tables share this
// shape; only the tuned values differ.
type Weights struct {
	Hole, HoleDepth                   float32
	HLocalDeviation, HGlobalDeviation float32
	AverageH                          float32
	WellV, WellParity                 float32
	WellOddPar, WellFlatParity        float32
	TspinFlatBonus                    float32
	TspinDist, TspinCompleteness      float32
	SumAttack, SumDownstack           float32
	Attack, Downstack                 float32
	Eff                               float32
	WellPlacementF                    float32
}

// Factors holds the auxiliary scalars the weighted terms are measured
// against (ideal stack height, the well-detection threshold).
type Factors struct {
	IdealH        float32
	WellThreshold float32
}

// weightsAtk/weightsDS and factorsAtk/factorsDS are tuned constants,
// hand-picked rather than derived.
var weightsAtk = Weights{
	Hole:              -100,
	HoleDepth:         -20,
	HLocalDeviation:   -7,
	HGlobalDeviation:  -7,
	AverageH:          -5,
	WellV:             10,
	WellParity:        -4,
	WellOddPar:        -6,
	WellFlatParity:    6,
	TspinFlatBonus:    40,
	TspinDist:         -8,
	TspinCompleteness: 12,
	SumAttack:         30,
	SumDownstack:      20,
	Attack:            35,
	Downstack:         25,
	Eff:               15,
	WellPlacementF:    5,
}

var weightsDS = Weights{
	Hole:              -150,
	HoleDepth:         -30,
	HLocalDeviation:   -10,
	HGlobalDeviation:  -10,
	AverageH:          -8,
	WellV:             4,
	WellParity:        -2,
	WellOddPar:        -3,
	WellFlatParity:    3,
	TspinFlatBonus:    -20, // sign-flipped: downstacking disfavors committing to a twist
	TspinDist:         -4,
	TspinCompleteness: 4,
	SumAttack:         10,
	SumDownstack:      35,
	Attack:            15,
	Downstack:         45,
	Eff:               -10,
	WellPlacementF:    2,
}

var factorsAtk = Factors{IdealH: 8, WellThreshold: 3}
var factorsDS = Factors{IdealH: 2, WellThreshold: 2}

// wellPlacement penalizes wells dug at the board's edges.
var wellPlacement = [board.Width]float32{-1, -1, 0.8, 1.2, 1.0, 1.0, 1.2, 0.8, -1, -1}

// downstackCommitmentPenalty is the fixed cost Norm mode pays when it
// switches to Downstack weights.
const downstackCommitmentPenalty = -1000

const hDeltaCap = 5

// twist describes a recognized T-slot, scanned from a hole cell.
type twist struct {
	DistToT    int
	Clearable  int
	WellX, WellY int
}

// Evaluate scores state under mode, resolving Norm mode's automatic
// Attack/Downstack switch first.
func Evaluate(s State, mode Mode) float32 {
	h := s.Board.Heights()
	avg := meanHeight(h)

	holes, holeDepthSumSq, holeCells := scanHoles(s.Board, h)

	effMode := mode
	var score float32
	if mode == ModeNorm {
		if (20-avg) >= 14 || holes >= 1 {
			effMode = ModeDownstack
			score += downstackCommitmentPenalty
		} else {
			effMode = ModeAttack
		}
	}

	var w Weights
	var f Factors
	if effMode == ModeDownstack {
		w, f = weightsDS, factorsDS
	} else {
		w, f = weightsAtk, factorsAtk
	}

	score += w.Hole * float32(holes)
	score += w.HoleDepth * holeDepthSumSq

	wellX, hasWell := detectWell(h, avg, f.WellThreshold)

	avgExclWell := avg
	if hasWell {
		avgExclWell = meanHeightExcluding(h, wellX)
	}

	tw := scanTwist(s.Board, holeCells, s.Hold, s.Queue)

	score += w.HLocalDeviation * localDeviation(h, wellX, hasWell, tw)
	score += w.HGlobalDeviation * globalDeviation(h, avgExclWell, wellX, hasWell) / 1000.0

	d := float32(board.Height) - avgExclWell - f.IdealH
	score += w.AverageH * d * d

	if hasWell {
		score += w.WellV * float32(wellDepth(s.Board, wellX))

		leftH, rightH := wellNeighborHeights(h, wellX)
		diff := int(leftH) - int(rightH)
		if diff < 0 {
			diff = -diff
		}
		parity := diff % 2
		score += w.WellParity * float32(parity*parity)
		if parity != 0 {
			score += w.WellOddPar
		} else {
			bonus := w.WellFlatParity
			if tw != nil && tw.WellX == wellX {
				bonus *= 1.5
			}
			score += bonus
		}

		score += w.WellPlacementF * wellPlacement[wellX]
	}

	if tw != nil {
		score += w.TspinFlatBonus
		score += w.TspinDist * float32(tw.DistToT)
		score += w.TspinCompleteness * float32(tw.Clearable)
	}

	score += w.SumAttack * float32(s.Stats.SumAtk)
	score += w.SumDownstack * float32(s.Stats.SumDs)
	score += w.Attack * float32(s.Stats.Atk)
	score += w.Downstack * float32(s.Stats.Ds)
	score += w.Eff * float32(s.Stats.SumAtk-s.Stats.SumDs)

	return score
}

func meanHeight(h [board.Width]uint8) float32 {
	var sum int
	for _, v := range h {
		sum += int(v)
	}
	return float32(sum) / float32(board.Width)
}

func meanHeightExcluding(h [board.Width]uint8, skip int) float32 {
	var sum int
	for i, v := range h {
		if i == skip {
			continue
		}
		sum += int(v)
	}
	return float32(sum) / float32(board.Width-1)
}

// scanHoles returns the hole count, Σ min(depth,3)² across holes, and the
// (x, y) coordinates of each hole cell.
func scanHoles(b board.Board, h [board.Width]uint8) (count int, depthSumSq float32, cells [][2]int) {
	for x := 0; x < board.Width; x++ {
		top := int(h[x])
		for y := top + 1; y < board.Height; y++ {
			if b[y]&(1<<uint(x)) != 0 {
				continue
			}
			count++
			depth := y - top
			if depth > 3 {
				depth = 3
			}
			depthSumSq += float32(depth * depth)
			cells = append(cells, [2]int{x, y})
		}
	}
	return count, depthSumSq, cells
}

// detectWell picks the column whose height deviates negatively from avg by
// at least threshold, i.e. the column with the largest h[x]-avg. It returns
// the most pronounced candidate if more than one qualifies.
func detectWell(h [board.Width]uint8, avg, threshold float32) (x int, ok bool) {
	best := -1
	var bestDev float32
	for i := 0; i < board.Width; i++ {
		dev := float32(h[i]) - avg
		if dev >= threshold && dev > bestDev {
			bestDev = dev
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func wellNeighborHeights(h [board.Width]uint8, wellX int) (left, right uint8) {
	left, right = h[wellX], h[wellX]
	if wellX > 0 {
		left = h[wellX-1]
	}
	if wellX < board.Width-1 {
		right = h[wellX+1]
	}
	if wellX == 0 {
		left = right
	}
	if wellX == board.Width-1 {
		right = left
	}
	return left, right
}

// wellDepth counts contiguous rows from the bottom whose mask equals "all
// columns occupied except wellX".
func wellDepth(b board.Board, wellX int) int {
	mask := uint16((1<<board.Width)-1) &^ (1 << uint(wellX))
	depth := 0
	for y := board.Height - 1; y >= 0; y-- {
		if b[y] != mask {
			break
		}
		depth++
	}
	return depth
}

// localDeviation sums squared height differences between neighboring
// columns, skipping the well column and columns adjacent to an identified
// twist.
func localDeviation(h [board.Width]uint8, wellX int, hasWell bool, tw *twist) float32 {
	skip := func(i int) bool {
		if hasWell && (i-1 == wellX || i == wellX) {
			return true
		}
		if tw != nil && (abs(i-1-tw.WellX) <= 1 || abs(i-tw.WellX) <= 1) {
			return true
		}
		return false
	}
	var sum float32
	for i := 1; i < board.Width; i++ {
		if skip(i) {
			continue
		}
		d := float32(int(h[i]) - int(h[i-1]))
		sum += d * d
	}
	return sum
}

// globalDeviation sums squared (clamped) deviations of non-well columns
// from avg.
func globalDeviation(h [board.Width]uint8, avg float32, wellX int, hasWell bool) float32 {
	var sum float32
	for i := 0; i < board.Width; i++ {
		if hasWell && i == wellX {
			continue
		}
		d := avg - float32(h[i])
		if d > hDeltaCap {
			d = hDeltaCap
		}
		if d < -hDeltaCap {
			d = -hDeltaCap
		}
		sum += d * d
	}
	return sum
}

// scanTwist looks for a fillable T-slot among the given hole cells: an
// overhang at (x,y+1), an empty notch at (x-1,y) and (x+1,y), and a filled
// far-bottom floor at (x-1,y+1)/(x+1,y+1). It keeps the candidate with the
// most clearable rows.
func scanTwist(b board.Board, cells [][2]int, hold board.Piece, queue []board.Piece) *twist {
	var best *twist
	for _, c := range cells {
		x, y := c[0], c[1]
		if y+1 >= board.Height || b[y+1]&(1<<uint(x)) == 0 {
			continue
		}
		leftOpen := x-1 >= 0 && b[y]&(1<<uint(x-1)) == 0
		rightOpen := x+1 < board.Width && b[y]&(1<<uint(x+1)) == 0
		if !leftOpen || !rightOpen {
			continue
		}
		if !occupiedOrWall(b, x-1, y+1) || !occupiedOrWall(b, x+1, y+1) {
			continue
		}

		clearable := 0
		for _, ry := range [2]int{y - 1, y} {
			if ry < 0 || ry >= board.Height {
				continue
			}
			filled := b[ry]
			for _, cx := range [3]int{x - 1, x, x + 1} {
				if cx >= 0 && cx < board.Width {
					filled |= 1 << uint(cx)
				}
			}
			if filled == uint16((1<<board.Width)-1) {
				clearable++
			}
		}

		cand := &twist{DistToT: tDistance(hold, queue), Clearable: clearable, WellX: x, WellY: y}
		if best == nil || cand.Clearable > best.Clearable {
			best = cand
		}
	}
	return best
}

func occupiedOrWall(b board.Board, x, y int) bool {
	if x < 0 || x >= board.Width || y < 0 || y >= board.Height {
		return true
	}
	return b[y]&(1<<uint(x)) != 0
}

// tDistance is 1 if T is held, else the 1-based index of the next T in
// queue, else 7.
func tDistance(hold board.Piece, queue []board.Piece) int {
	if hold == board.T {
		return 1
	}
	for i, p := range queue {
		if p == board.T {
			return i + 1
		}
	}
	return 7
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
