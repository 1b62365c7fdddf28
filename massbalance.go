package gfm

// massBalance returns the annual ice thickness delta at surface altitude z
// for the working equilibrium line altitude: accumulation above the line,
// ablation below.
func (m *GlacierFlowModel) massBalance(z float64) float64 {
	return m.cfg.Gradient * (z - m.ela)
}

// addMassBalance applies the surface mass balance to every cell. Ablation
// beyond the available thickness is clipped at zero; the b layer records the
// applied (clipped) delta so that layer statistics stay consistent with the
// thickness actually present. Afterwards the glaciated part of the surface
// is low-pass filtered to keep the flow field from locking onto
// grid-aligned noise.
func (m *GlacierFlowModel) addMassBalance() {
	for i, h0 := range m.h {
		hn := h0 + m.massBalance(m.ele[i])
		if hn < 0. {
			hn = 0.
		}
		m.b[i] = hn - h0
		m.h[i] = hn
	}
	m.updateSurface()
}

// updateSurface recomputes the surface elevation from bedrock and ice and
// smooths it where ice is present. Ice-free cells keep the exact bedrock
// elevation.
func (m *GlacierFlowModel) updateSurface() {
	for i, zb := range m.dem.z {
		m.ele[i] = zb + m.h[i]
	}
	if m.cfg.SmoothSigma <= 0. {
		return
	}
	sm := gaussianFilter(m.ele, m.nr, m.nc, m.cfg.SmoothSigma)
	for i, zb := range m.dem.z {
		if m.h[i] > 0. {
			m.ele[i] = sm[i]
		} else {
			m.ele[i] = zb
		}
	}
}
