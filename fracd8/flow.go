package fracd8

import "math/rand"

// Mode identifies which kernel resolved a flow step.
type Mode string

const (
	ModeLimited  Mode = "limited"
	ModeInfinite Mode = "infinite"
)

// Flow redistributes h over the (nr x nc) row-major grid for one step,
// choosing the limited kernel unless maxOffset permits following flow over
// distances greater than the cell width cw and the velocity field demands
// it. Returns the redistributed layer, the classified aspect and the kernel
// used.
func Flow(ele, u, h []float64, nr, nc int, cw float64, maxOffset int, rng *rand.Rand, nudge float64) ([]float64, []uint8, Mode) {
	if maxOffset >= 1 {
		for _, v := range u {
			if v >= cw {
				hNew, asp := Infinite(ele, u, h, nr, nc, cw, maxOffset, rng, nudge)
				return hNew, asp, ModeInfinite
			}
		}
	}
	hNew, asp := Limited(ele, u, h, nr, nc, cw, rng, nudge)
	return hNew, asp, ModeLimited
}
