package gfm

// lifo is a fixed-capacity last-in-first-out stack of grid layers, evicting
// the oldest layer once full.
type lifo struct {
	size int
	s    [][]float64
}

func (l *lifo) push(f []float64) {
	l.s = append(l.s, clone(f))
	if len(l.s) > l.size {
		l.s = l.s[1:]
	}
}

// mean returns the cell-wise mean over the recorded layers, nil when empty.
func (l *lifo) mean() []float64 {
	if len(l.s) == 0 {
		return nil
	}
	out := make([]float64, len(l.s[0]))
	for _, f := range l.s {
		for i, v := range f {
			out[i] += v
		}
	}
	fn := float64(len(l.s))
	for i := range out {
		out[i] /= fn
	}
	return out
}

// meanDiff returns the cell-wise mean of the layer-to-layer differences,
// nil with fewer than two recorded layers.
func (l *lifo) meanDiff() []float64 {
	if len(l.s) < 2 {
		return nil
	}
	out := make([]float64, len(l.s[0]))
	for j := 1; j < len(l.s); j++ {
		for i, v := range l.s[j] {
			out[i] += v - l.s[j-1][i]
		}
	}
	fn := float64(len(l.s) - 1)
	for i := range out {
		out[i] /= fn
	}
	return out
}

// record keeps the most recent model layers for time-averaged export.
type record struct {
	h, u, b lifo
}

func newRecord(size int) *record {
	return &record{
		h: lifo{size: size},
		u: lifo{size: size},
		b: lifo{size: size},
	}
}

func (rc *record) push(h, u, b []float64) {
	rc.h.push(h)
	rc.u.push(u)
	rc.b.push(b)
}

func (rc *record) years() int { return len(rc.h.s) }
