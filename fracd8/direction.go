package fracd8

import "math"

// D8 direction numbering, 0 being the cell itself:
//
//	7 8 1
//	6 0 2
//	5 4 3
var d8 = [9][2]int{
	{0, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
}

const sqrt2 = math.Sqrt2

// Position returns the row/col of the neighbour of (r,c) in D8 direction n.
func Position(r, c int, n uint8) (int, int) {
	return r + d8[n][0], c + d8[n][1]
}

// dist returns the grid-normalized distance to the neighbour in direction n.
func dist(n uint8) float64 {
	if n%2 == 1 { // diagonals
		return sqrt2
	}
	return 1.
}

// ClassifyAspect computes the D8 direction of steepest descent for every
// cell of the (nr x nc) row-major surface ele. Slopes to diagonal
// neighbours are normalized by the cell-diagonal distance. Cells with no
// lower neighbour (pits, flats) are assigned 0.
func ClassifyAspect(ele []float64, nr, nc int) []uint8 {
	asp := make([]uint8, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			i := r*nc + c
			e0, a0, smax := ele[i], uint8(0), 0.
			for n := uint8(1); n <= 8; n++ {
				rr, cc := Position(r, c, n)
				if rr < 0 || rr >= nr || cc < 0 || cc >= nc {
					continue // off-grid neighbours never receive
				}
				if s := (e0 - ele[rr*nc+cc]) / dist(n); s > smax {
					a0, smax = n, s
				}
			}
			asp[i] = a0
		}
	}
	return asp
}
