package gfm

import (
	"math"

	"github.com/munterfi/glacier-flow-model/fracd8"
)

// flow lets the ice flow for one year. Deformation velocities are derived
// from local thickness and surface slope, the fracd8 kernel moves the
// velocity-scaled fraction of each cell towards its steepest descent
// neighbour, and the redistributed thickness is box-filtered to suppress
// the checkerboard artifacts of discrete 8-neighbour routing.
func (m *GlacierFlowModel) flow() {
	m.velocity()

	hNew, asp, mode := fracd8.Flow(m.ele, m.u, m.h, m.nr, m.nc, m.cw, m.cfg.MaxOffset, m.rng, m.cfg.NudgeProb)
	m.mode = mode
	for i, a := range asp {
		if a == 0 {
			m.u[i] = 0.
		}
	}

	// stabilize and cut cells thinned below the gradient
	thin := make([]bool, len(hNew))
	for i, v := range hNew {
		thin[i] = v < m.cfg.Gradient
	}
	m.h = uniformFilter(hNew, m.nr, m.nc, m.cfg.SmoothSize)
	for i, t := range thin {
		if t {
			m.h[i] = 0.
		}
	}
}

// velocity fills u with the ice deformation speed at mid-height,
//
//	u = 1/2 * 2A (f p g sin b)^3 h^4 / 4
//
// where b is the local surface slope. Basal sliding and soft-bed
// deformation are excluded. Velocities are capped so that the yearly travel
// distance stays within reach of the flow kernel.
func (m *GlacierFlowModel) velocity() {
	a, f, p, g := m.cfg.RateFactor, m.cfg.ValleyShape, m.cfg.IceDensity, m.cfg.Gravity
	uMax := fracd8.FracCap * m.cw * float64(m.cfg.MaxOffset+1)
	for r := 0; r < m.nr; r++ {
		for c := 0; c < m.nc; c++ {
			i := r*m.nc + c
			sb := math.Sin(m.slope(r, c))
			d := f * p * g * sb
			ud := 2. * a * d * d * d * m.h[i] * m.h[i] * m.h[i] * m.h[i] / 4.
			ud *= 0.5 // linear decrease towards zero at the bed; take mid-height
			if ud > uMax {
				ud = uMax
			}
			m.u[i] = ud
		}
	}
}

// slope returns the surface slope angle [rad] at (r,c) from central
// differences, falling back to one-sided differences at the grid edge.
func (m *GlacierFlowModel) slope(r, c int) float64 {
	gx := m.gradient(r, c, 0, 1)
	gy := m.gradient(r, c, 1, 0)
	return math.Atan(math.Sqrt(gx*gx + gy*gy))
}

func (m *GlacierFlowModel) gradient(r, c, dr, dc int) float64 {
	r0, c0, r1, c1, w := r-dr, c-dc, r+dr, c+dc, 2.
	if r0 < 0 || c0 < 0 {
		r0, c0, w = r, c, 1.
	}
	if r1 >= m.nr || c1 >= m.nc {
		r1, c1, w = r, c, w-1.
	}
	if w <= 0. {
		return 0. // single row or column
	}
	return (m.ele[r1*m.nc+c1] - m.ele[r0*m.nc+c0]) / (w * m.cw)
}
