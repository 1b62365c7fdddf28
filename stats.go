package gfm

import "gonum.org/v1/gonum/stat"

// tracker accumulates the per-year summary statistics and decides on steady
// state. The mass statistic is the mean thickness over glaciated cells, its
// yearly difference is the realized mass balance, and the trend is the mean
// of the most recent window of those differences. Steady state is never
// signaled before a full window of years has been collected.
type tracker struct {
	size int
	tol  float64

	mass        []float64 // mean thickness over glaciated cells, per year
	massBalance []float64 // yearly change of mass
	trend       []float64 // windowed mean of massBalance
}

func newTracker(size int, tol float64) *tracker {
	return &tracker{size: size, tol: tol}
}

// update records the statistics of the thickness layer for one year.
func (t *tracker) update(h []float64) {
	s, n := 0., 0
	for _, v := range h {
		if v > 0. {
			s += v
			n++
		}
	}
	mass := 0.
	if n > 0 {
		mass = s / float64(n)
	}

	mb := mass
	if len(t.mass) > 0 {
		mb = mass - t.mass[len(t.mass)-1]
	}
	t.mass = append(t.mass, mass)
	t.massBalance = append(t.massBalance, mb)

	w := t.massBalance
	if len(w) > t.size {
		w = w[len(w)-t.size:]
	}
	t.trend = append(t.trend, stat.Mean(w, nil))
}

// lastTrend returns the most recent windowed trend, 0 before any update.
func (t *tracker) lastTrend() float64 {
	if len(t.trend) == 0 {
		return 0.
	}
	return t.trend[len(t.trend)-1]
}

// steady reports whether a full trend window has been collected and its
// drift has fallen within tolerance.
func (t *tracker) steady() bool {
	if len(t.massBalance) < t.size {
		return false
	}
	d := t.lastTrend()
	return -t.tol <= d && d <= t.tol
}
