package gfm

import (
	"fmt"

	"github.com/maseology/mmio"
)

// Averaged returns the time-averaged thickness, velocity and mass balance
// layers over the recorded years. At least one year must have been
// recorded.
func (m *GlacierFlowModel) Averaged() (h, u, b []float64, err error) {
	if m.rec.years() == 0 {
		return nil, nil, nil, fmt.Errorf("gfm.Averaged: no years recorded yet")
	}
	return m.rec.h.mean(), m.rec.u.mean(), m.rec.b.mean(), nil
}

// Export writes the run statistics and the time-averaged layers to dir:
// a csv of the mass, mass balance and trend series, float32 rasters of the
// averaged thickness, velocity and mass balance, and the mean yearly
// thickness change over the record window.
func (m *GlacierFlowModel) Export(dir string) error {
	if m.rec.years() == 0 {
		return fmt.Errorf("gfm.Export: no years recorded yet")
	}
	mmio.MakeDir(dir)
	prfx := fmt.Sprintf("%s/gfm_ela%.0f_m%.3f.", dir, m.ela, m.cfg.Gradient)

	mass, mb, trend := m.Stats()
	toIface := func(v []float64) []interface{} {
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out
	}
	mmio.WriteCSV(prfx+"stats.csv", "mass,mass_balance,mass_balance_trend", toIface(mass), toIface(mb), toIface(trend))

	if err := writeFloats32(prfx+"hmean.bil", m.rec.h.mean()); err != nil {
		return fmt.Errorf("gfm.Export: %v", err)
	}
	if err := writeFloats32(prfx+"umean.bil", m.rec.u.mean()); err != nil {
		return fmt.Errorf("gfm.Export: %v", err)
	}
	if err := writeFloats32(prfx+"bmean.bil", m.rec.b.mean()); err != nil {
		return fmt.Errorf("gfm.Export: %v", err)
	}
	if hd := m.rec.h.meanDiff(); hd != nil {
		if err := writeFloats32(prfx+"hdiff.bil", hd); err != nil {
			return fmt.Errorf("gfm.Export: %v", err)
		}
	}
	return nil
}
