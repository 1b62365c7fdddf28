// Package gfm models glacier flow over a digital elevation model. An
// altitude-dependent mass balance law accumulates and ablates ice, a
// fractional D8 scheme redistributes it downslope, and a trend of the mean
// mass balance decides when the glacier geometry has stabilized.
package gfm

import (
	"fmt"
	"math/rand"

	"github.com/munterfi/glacier-flow-model/fracd8"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// GlacierFlowModel owns the ice layers derived from a DEM and iterates them
// one year at a time. A model instance is not safe for concurrent use;
// callers must serialize ReachSteadyState, Simulate and export calls.
type GlacierFlowModel struct {
	cfg Config
	dem *DEM

	nr, nc int
	cw     float64

	ele []float64 // surface elevation including glaciers
	h   []float64 // ice thickness
	u   []float64 // ice deformation velocity at mid-height
	b   []float64 // applied mass balance

	ela    float64 // working equilibrium line altitude
	year   int     // simulation clock
	steady bool
	mode   fracd8.Mode

	rng *rand.Rand
	trk *tracker
	rec *record
}

// New builds a model over dem. The DEM is shared, never copied or mutated;
// all derived layers are owned exclusively by the returned model.
func New(dem *DEM, cfg Config) (*GlacierFlowModel, error) {
	if dem == nil {
		return nil, fmt.Errorf("gfm.New: nil DEM")
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	nr, nc := dem.Shape()
	m := &GlacierFlowModel{
		cfg: cfg,
		dem: dem,
		nr:  nr,
		nc:  nc,
		cw:  dem.CellWidth(),
		rng: rand.New(mrg63k3a.New()),
	}
	m.reset()
	return m, nil
}

// reset reinitializes every derived layer, the statistics and the clock.
// The bedrock and configuration are kept.
func (m *GlacierFlowModel) reset() {
	n := m.nr * m.nc
	m.ele = make([]float64, n)
	copy(m.ele, m.dem.z)
	m.h = make([]float64, n)
	m.u = make([]float64, n)
	m.b = make([]float64, n)

	m.ela = m.cfg.Ela
	m.year = 0
	m.steady = false
	m.mode = fracd8.ModeLimited

	m.rng.Seed(m.cfg.Seed)
	m.trk = newTracker(m.cfg.TrendSize, m.cfg.Tolerance)
	m.rec = newRecord(m.cfg.RecordSize)
}

// Year returns the simulation clock.
func (m *GlacierFlowModel) Year() int { return m.year }

// Ela returns the working equilibrium line altitude [m MSL].
func (m *GlacierFlowModel) Ela() float64 { return m.ela }

// SteadyState reports whether the mass-balance trend has stabilized.
func (m *GlacierFlowModel) SteadyState() bool { return m.steady }

// Shape returns the number of rows and columns of the model grid.
func (m *GlacierFlowModel) Shape() (int, int) { return m.nr, m.nc }

// Thickness returns a copy of the row-major ice thickness layer [m].
func (m *GlacierFlowModel) Thickness() []float64 { return clone(m.h) }

// Velocity returns a copy of the row-major ice velocity layer [m/yr].
func (m *GlacierFlowModel) Velocity() []float64 { return clone(m.u) }

// MassBalance returns a copy of the applied mass balance layer [m].
func (m *GlacierFlowModel) MassBalance() []float64 { return clone(m.b) }

// Surface returns a copy of the surface elevation including ice [m MSL].
func (m *GlacierFlowModel) Surface() []float64 { return clone(m.ele) }

// Stats returns the per-year series of mean glacier thickness, its yearly
// change (the realized mass balance) and the windowed mass-balance trend.
func (m *GlacierFlowModel) Stats() (mass, massBalance, trend []float64) {
	return clone(m.trk.mass), clone(m.trk.massBalance), clone(m.trk.trend)
}

func (m *GlacierFlowModel) String() string {
	ss := "not in steady state"
	if m.steady {
		ss = "in steady state"
	}
	return fmt.Sprintf("GlacierFlowModel %s with:\n - m:          %10.5f [m/m]\n - ela:        %10.2f [m MSL]\n - resolution: %10.2f [m]\n - grid:       %d x %d\n - year:       %d",
		ss, m.cfg.Gradient, m.ela, m.cw, m.nr, m.nc, m.year)
}

func clone(f []float64) []float64 {
	out := make([]float64, len(f))
	copy(out, f)
	return out
}
