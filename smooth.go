package gfm

import "math"

// uniformFilter applies a size x size box average to the row-major layer f.
// Edges are handled by clamping the window to the grid, so the filter
// preserves non-negativity but not totals near the boundary. size < 2
// returns a copy.
func uniformFilter(f []float64, nr, nc, size int) []float64 {
	out := make([]float64, len(f))
	if size < 2 {
		copy(out, f)
		return out
	}
	lo, hi := -(size-1)/2, size/2
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			s, n := 0., 0
			for dr := lo; dr <= hi; dr++ {
				rr := r + dr
				if rr < 0 || rr >= nr {
					continue
				}
				for dc := lo; dc <= hi; dc++ {
					cc := c + dc
					if cc < 0 || cc >= nc {
						continue
					}
					s += f[rr*nc+cc]
					n++
				}
			}
			out[r*nc+c] = s / float64(n)
		}
	}
	return out
}

// gaussianFilter applies a separable gaussian blur with the given sigma,
// truncated at three standard deviations. Edge windows are renormalized.
func gaussianFilter(f []float64, nr, nc int, sigma float64) []float64 {
	radius := int(3.*sigma + 0.5)
	if radius < 1 {
		out := make([]float64, len(f))
		copy(out, f)
		return out
	}
	k := make([]float64, 2*radius+1)
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2. * sigma * sigma))
	}

	// rows then columns
	tmp := make([]float64, len(f))
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			s, w := 0., 0.
			for i, kv := range k {
				cc := c + i - radius
				if cc < 0 || cc >= nc {
					continue
				}
				s += kv * f[r*nc+cc]
				w += kv
			}
			tmp[r*nc+c] = s / w
		}
	}
	out := make([]float64, len(f))
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			s, w := 0., 0.
			for i, kv := range k {
				rr := r + i - radius
				if rr < 0 || rr >= nr {
					continue
				}
				s += kv * tmp[rr*nc+c]
				w += kv
			}
			out[r*nc+c] = s / w
		}
	}
	return out
}
