package gfm

import "math"

// Hillshade renders a surface into 0..255 shading values for a light source
// at the given azimuth and altitude angles [deg]. It is a read-only helper
// for visualization collaborators and plays no role in the simulation.
func Hillshade(z []float64, nr, nc int, cw, azimuth, altitude float64) []float64 {
	azr := azimuth * math.Pi / 180.
	alr := altitude * math.Pi / 180.
	out := make([]float64, nr*nc)
	g := func(r, c, dr, dc int) float64 {
		r0, c0, r1, c1, w := r-dr, c-dc, r+dr, c+dc, 2.
		if r0 < 0 || c0 < 0 {
			r0, c0, w = r, c, 1.
		}
		if r1 >= nr || c1 >= nc {
			r1, c1, w = r, c, w-1.
		}
		if w <= 0. {
			return 0.
		}
		return (z[r1*nc+c1] - z[r0*nc+c0]) / (w * cw)
	}
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			gx, gy := g(r, c, 0, 1), g(r, c, 1, 0)
			slope := math.Pi/2. - math.Atan(math.Sqrt(gx*gx+gy*gy))
			aspect := math.Atan2(-gy, gx)
			shaded := math.Sin(alr)*math.Sin(slope) + math.Cos(alr)*math.Cos(slope)*math.Cos(azr-aspect)
			out[r*nc+c] = 255. * (shaded + 1.) / 2.
		}
	}
	return out
}
