package gfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerGatesOnWindow(t *testing.T) {
	trk := newTracker(5, 1e-4)
	h := []float64{0., 0.}
	for i := 0; i < 4; i++ {
		trk.update(h)
		assert.False(t, trk.steady(), "year %d", i+1)
	}
	trk.update(h)
	assert.True(t, trk.steady(), "window full, zero trend")
}

func TestTrackerMeanOverIceCellsOnly(t *testing.T) {
	trk := newTracker(3, 1e-4)
	trk.update([]float64{2., 0., 4., 0.})
	assert.Equal(t, 3., trk.mass[0])

	// ice-free grid contributes zero, not NaN
	trk.update([]float64{0., 0., 0., 0.})
	assert.Equal(t, 0., trk.mass[1])
	assert.Equal(t, -3., trk.massBalance[1])
}

func TestTrackerTrendIsWindowedMean(t *testing.T) {
	trk := newTracker(2, 1e-4)
	trk.update([]float64{1.}) // mass 1, mb 1
	trk.update([]float64{3.}) // mass 3, mb 2
	trk.update([]float64{4.}) // mass 4, mb 1
	assert.InDelta(t, 1.5, trk.trend[2], 1e-12) // mean of last 2: (2+1)/2
	assert.False(t, trk.steady())

	trk.update([]float64{4.})
	trk.update([]float64{4.})
	assert.True(t, trk.steady())
}
