package fracd8

import "math/rand"

// Infinite handles cells whose travel distance exceeds the grid resolution
// by walking the classified aspect until the necessary number of cells has
// been covered, then splitting the moving mass between the last two cells of
// the walk. The walk neglects inflow into the followed cells, which would
// have changed their aspect; this is the accepted trade-off for velocities
// above the grid resolution.
func Infinite(ele, u, h []float64, nr, nc int, cw float64, maxOffset int, rng *rand.Rand, nudge float64) ([]float64, []uint8) {
	asp := ClassifyAspect(ele, nr, nc)
	hNew := make([]float64, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			i := r*nc + c
			h0 := h[i]
			if h0 < minThick {
				hNew[i] += h0
				continue
			}
			if asp[i] == 0 {
				hNew[i] += h0
				continue
			}

			frac := u[i] / cw
			share := frac - float64(int(frac))
			offset := int(frac)
			if offset > maxOffset {
				offset = maxOffset
			}

			// follow the aspect for offset cells
			ri, ci := r, c
			for s := 0; s < offset; s++ {
				a := asp[ri*nc+ci]
				if a == 0 {
					break // walked into a pit
				}
				rr, cc := Position(ri, ci, a)
				if rr < 0 || rr >= nr || cc < 0 || cc >= nc {
					break // walked to the grid edge
				}
				ri, ci = rr, cc
			}

			// split between destination-1 and destination cell
			a := asp[ri*nc+ci]
			if a == 0 {
				hNew[ri*nc+ci] += h0
				continue
			}
			j := receiver(ele, nr, nc, ri, ci, a, rng, nudge)
			hNew[ri*nc+ci] += h0 * (1. - share)
			hNew[j] += h0 * share
		}
	}
	return hNew, asp
}
