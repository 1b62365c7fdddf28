package gfm

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/munterfi/glacier-flow-model/fracd8"
)

// State is a gob-serializable snapshot of a model's mutable state. The
// bedrock and configuration are not part of the snapshot; a restored state
// must be applied to a model built over the same DEM.
type State struct {
	Year   int
	Ela    float64
	Steady bool
	Mode   string

	Ele, H, U, B []float64

	Mass, MassBalance, Trend []float64
	RecH, RecU, RecB         [][]float64
}

// State captures the current model state.
func (m *GlacierFlowModel) State() *State {
	return &State{
		Year:        m.year,
		Ela:         m.ela,
		Steady:      m.steady,
		Mode:        string(m.mode),
		Ele:         clone(m.ele),
		H:           clone(m.h),
		U:           clone(m.u),
		B:           clone(m.b),
		Mass:        clone(m.trk.mass),
		MassBalance: clone(m.trk.massBalance),
		Trend:       clone(m.trk.trend),
		RecH:        cloneLayers(m.rec.h.s),
		RecU:        cloneLayers(m.rec.u.s),
		RecB:        cloneLayers(m.rec.b.s),
	}
}

// SetState restores a previously captured snapshot.
func (m *GlacierFlowModel) SetState(s *State) error {
	n := m.nr * m.nc
	for _, f := range [][]float64{s.Ele, s.H, s.U, s.B} {
		if len(f) != n {
			return fmt.Errorf("gfm.SetState: layer holds %d cells, model grid has %d", len(f), n)
		}
	}
	m.year = s.Year
	m.ela = s.Ela
	m.steady = s.Steady
	m.mode = fracd8.Mode(s.Mode)
	m.ele = clone(s.Ele)
	m.h = clone(s.H)
	m.u = clone(s.U)
	m.b = clone(s.B)
	m.trk = newTracker(m.cfg.TrendSize, m.cfg.Tolerance)
	m.trk.mass = clone(s.Mass)
	m.trk.massBalance = clone(s.MassBalance)
	m.trk.trend = clone(s.Trend)
	m.rec = newRecord(m.cfg.RecordSize)
	m.rec.h.s = cloneLayers(s.RecH)
	m.rec.u.s = cloneLayers(s.RecU)
	m.rec.b.s = cloneLayers(s.RecB)
	return nil
}

func (s *State) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" state.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" state.SaveGob %v", err)
	}
	return nil
}

func LoadGobState(fp string) (*State, error) {
	var s State
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func cloneLayers(f [][]float64) [][]float64 {
	out := make([][]float64, len(f))
	for i, v := range f {
		out[i] = clone(v)
	}
	return out
}
