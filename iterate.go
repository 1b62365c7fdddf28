package gfm

import (
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/munterfi/glacier-flow-model/fracd8"
)

// ErrNotSteady is returned by Simulate when the model has not reached
// steady state yet.
var ErrNotSteady = errors.New("gfm: model not in steady state, call ReachSteadyState first")

// Result summarizes an iteration run. A run that hits the iteration cap
// without convergence reports SteadyState false; the model state remains
// usable.
type Result struct {
	SteadyState bool
	Years       int         // simulation clock at return
	RunYears    int         // years iterated by this call
	Ela         float64     // working equilibrium line altitude at return
	Mode        fracd8.Mode // flow kernel used in the last year
}

// ReachSteadyState resets the model to bare ice-free terrain and iterates
// annual steps until the mass-balance trend stabilizes or the iteration cap
// is reached. Restarting from scratch keeps the outcome independent of call
// history.
func (m *GlacierFlowModel) ReachSteadyState() Result {
	m.reset()
	return m.iterate(m.cfg.Ela)
}

// Simulate applies a sustained temperature change [°C] to a steady model.
// The working ELA ramps linearly towards the new target; iteration then
// continues until the glacier stabilizes under the changed regime. The
// statistics record is carried over, the ramp being part of the transient
// tracked for convergence.
func (m *GlacierFlowModel) Simulate(tempChange float64) (Result, error) {
	if !m.steady {
		return Result{}, ErrNotSteady
	}
	m.steady = false
	return m.iterate(m.cfg.Ela + m.cfg.ElaTempGradient*tempChange), nil
}

// iterate runs annual steps towards the target ELA until steady state, for
// at most MaxYears. One year is mass balance, flow, statistics, record.
func (m *GlacierFlowModel) iterate(target float64) Result {
	var bar *uiprogress.Bar
	if m.cfg.Verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(m.cfg.MaxYears).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	ran := 0
	for y := 0; y < m.cfg.MaxYears; y++ {
		m.addMassBalance()
		m.flow()
		m.trk.update(m.h)
		m.rec.push(m.h, m.u, m.b)
		m.year++
		ran++
		if bar != nil {
			bar.Incr()
		}

		m.rampEla(target)
		if m.ela == target && m.trk.steady() {
			m.steady = true
			if m.cfg.Verbose {
				fmt.Printf(" steady state reached after %d years (ELA: %.0f, trend: %.5f)\n", m.year, m.ela, m.trk.lastTrend())
			}
			break
		}
	}
	if !m.steady && m.cfg.Verbose {
		fmt.Printf(" steady state was not reached after %d years (ELA: %.0f, trend: %.5f)\n", ran, m.ela, m.trk.lastTrend())
	}
	return Result{
		SteadyState: m.steady,
		Years:       m.year,
		RunYears:    ran,
		Ela:         m.ela,
		Mode:        m.mode,
	}
}

// rampEla drifts the working ELA towards target by at most RampRate per
// year, landing exactly on the target.
func (m *GlacierFlowModel) rampEla(target float64) {
	switch d := target - m.ela; {
	case d > m.cfg.RampRate:
		m.ela += m.cfg.RampRate
	case d < -m.cfg.RampRate:
		m.ela -= m.cfg.RampRate
	default:
		m.ela = target
	}
}
