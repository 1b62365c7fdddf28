package gfm

import "fmt"

// Config holds the parameters of a glacier flow model. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Ela      float64 // base equilibrium line altitude [m MSL]
	Gradient float64 // mass balance gradient [m/m]

	Tolerance float64 // mass-balance trend fluctuation accepted as steady [m]
	TrendSize int     // years averaged for the mass-balance trend; also the minimum run length
	RecordSize int    // years of (h,u,b) layers kept for export averaging
	MaxYears  int     // iteration cap per ReachSteadyState/Simulate call

	// ice deformation velocity
	RateFactor  float64 // rate factor of ice (tempered ice 0°C: 1.4e-16)
	IceDensity  float64 // [kg/m³], assumed uniform over the vertical column
	ValleyShape float64 // valley shape factor, 0..1
	Gravity     float64 // [m/s²]

	MaxOffset int // flow-following steps for cells with u > cell width; 0 keeps the limited kernel

	// surface stabilization
	SmoothSize  int     // box filter size applied to h after flow
	SmoothSigma float64 // gaussian sigma applied to the glaciated surface

	// temperature forcing
	ElaTempGradient float64 // ELA shift per degree of temperature change [m/°C]
	RampRate        float64 // working ELA drift towards its target [m/yr]

	NudgeProb float64 // probability of redirecting a cell's outflow by one D8 step
	Seed      int64   // seed of the model-owned generator

	Verbose bool // progress reporting on the annual loop
}

// DefaultConfig returns the alpine parameterization.
func DefaultConfig() Config {
	return Config{
		Ela:             2850.,
		Gradient:        0.006,
		Tolerance:       0.0001,
		TrendSize:       100,
		RecordSize:      10,
		MaxYears:        10000,
		RateFactor:      1.4e-16,
		IceDensity:      917.,
		ValleyShape:     0.8,
		Gravity:         9.81,
		MaxOffset:       0,
		SmoothSize:      5,
		SmoothSigma:     3.,
		ElaTempGradient: 100.,
		RampRate:        1.,
		NudgeProb:       0.2,
		Seed:            1,
	}
}

func (c *Config) check() error {
	switch {
	case c.Gradient <= 0.:
		return fmt.Errorf("gfm.Config: mass balance gradient must be positive, got %g", c.Gradient)
	case c.Tolerance <= 0.:
		return fmt.Errorf("gfm.Config: tolerance must be positive, got %g", c.Tolerance)
	case c.TrendSize < 1:
		return fmt.Errorf("gfm.Config: trend size must be at least 1, got %d", c.TrendSize)
	case c.RecordSize < 1:
		return fmt.Errorf("gfm.Config: record size must be at least 1, got %d", c.RecordSize)
	case c.MaxYears < 1:
		return fmt.Errorf("gfm.Config: iteration cap must be at least 1, got %d", c.MaxYears)
	case c.MaxOffset < 0:
		return fmt.Errorf("gfm.Config: max offset cannot be negative, got %d", c.MaxOffset)
	case c.SmoothSize < 0:
		return fmt.Errorf("gfm.Config: smoothing size cannot be negative, got %d", c.SmoothSize)
	case c.RampRate <= 0.:
		return fmt.Errorf("gfm.Config: ramp rate must be positive, got %g", c.RampRate)
	case c.NudgeProb < 0. || c.NudgeProb > 1.:
		return fmt.Errorf("gfm.Config: nudge probability must be within [0,1], got %g", c.NudgeProb)
	}
	return nil
}
