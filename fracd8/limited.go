package fracd8

import (
	"math"
	"math/rand"
)

// minThick is the thickness below which a cell is treated as immobile.
const minThick = 1e-5

// FracCap keeps the moving fraction strictly below unity so that a donor
// cell always retains part of its mass.
const FracCap = 0.9999

// Limited moves the velocity-derived fraction of h towards the steepest
// descent neighbour, assuming u < cw everywhere (faster cells are capped).
// The full flux field is computed from the unmutated snapshots and committed
// at once. If rng is non-nil, each transfer is redirected to an adjacent
// lower neighbour with probability nudge; the donated volume is unchanged,
// so total mass is conserved exactly.
func Limited(ele, u, h []float64, nr, nc int, cw float64, rng *rand.Rand, nudge float64) ([]float64, []uint8) {
	asp := ClassifyAspect(ele, nr, nc)
	hNew := make([]float64, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			i := r*nc + c
			h0 := h[i]
			if h0 < minThick {
				hNew[i] += h0 // nothing to flow
				continue
			}
			a0 := asp[i]
			if a0 == 0 {
				hNew[i] += h0 // nowhere to flow
				continue
			}
			frac := math.Min(u[i], FracCap*cw) / cw
			j := receiver(ele, nr, nc, r, c, a0, rng, nudge)
			hNew[i] += h0 * (1. - frac)
			hNew[j] += h0 * frac
		}
	}
	return hNew, asp
}

// receiver resolves the flat index of the cell receiving the transfer from
// (r,c) along direction a0, optionally rotating the direction by one D8
// step. A rotation is only accepted when the alternate neighbour is on-grid
// and below the donor surface.
func receiver(ele []float64, nr, nc, r, c int, a0 uint8, rng *rand.Rand, nudge float64) int {
	a := a0
	if rng != nil && nudge > 0. && rng.Float64() < nudge {
		ar := rotate(a0, 1-2*rng.Intn(2))
		rr, cc := Position(r, c, ar)
		if rr >= 0 && rr < nr && cc >= 0 && cc < nc && ele[rr*nc+cc] < ele[r*nc+c] {
			a = ar
		}
	}
	rr, cc := Position(r, c, a)
	return rr*nc + cc
}

// rotate shifts a D8 direction by d steps, wrapping on the 1..8 ring.
func rotate(a uint8, d int) uint8 {
	v := (int(a) - 1 + d + 8) % 8
	return uint8(v + 1)
}
