package gfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformFilterConstantField(t *testing.T) {
	f := make([]float64, 16)
	for i := range f {
		f[i] = 7.
	}
	out := uniformFilter(f, 4, 4, 5)
	for i, v := range out {
		assert.InDelta(t, 7., v, 1e-12, "cell %d", i)
	}
}

func TestUniformFilterPreservesNonNegativity(t *testing.T) {
	f := []float64{
		0., 10., 0.,
		0., 0., 0.,
		5., 0., 0.,
	}
	out := uniformFilter(f, 3, 3, 3)
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0., "cell %d", i)
	}
}

func TestUniformFilterSizeOneIsIdentity(t *testing.T) {
	f := []float64{1., 2., 3., 4.}
	assert.Equal(t, f, uniformFilter(f, 2, 2, 1))
}

func TestGaussianFilterConstantField(t *testing.T) {
	f := make([]float64, 25)
	for i := range f {
		f[i] = 3.
	}
	// edge windows are renormalized, a constant field stays constant
	out := gaussianFilter(f, 5, 5, 2.)
	for i, v := range out {
		assert.InDelta(t, 3., v, 1e-12, "cell %d", i)
	}
}

func TestGaussianFilterSmooths(t *testing.T) {
	f := make([]float64, 49)
	f[24] = 100. // spike at the centre
	out := gaussianFilter(f, 7, 7, 1.)
	assert.Less(t, out[24], 100.)
	assert.Greater(t, out[23], 0.)
	assert.Greater(t, out[17], 0.)
}
