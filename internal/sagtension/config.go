package sagtension

import "github.com/alexiusacademia/gosag/internal/logging"

// DefaultPointsAverage is the number of samples used for the average
// tension that drives the elongation model.
const DefaultPointsAverage = 100

// Config holds the solver settings of a reload. Zero fields take the value
// from DefaultConfig.
type Config struct {
	// Convergence. A reload converges only when the length residual is
	// within Tolerance. A tension bracket narrower than TensionTolerance
	// while the residual is still larger fails with a *ConvergenceError.
	Tolerance        float64 // length residual, relative to the unloaded-unstretched length
	TensionTolerance float64 // lb, smallest bracket width
	IterationsMax    int     // bracket expansions plus solver iterations

	// Bracket limits for the horizontal tension (lb)
	TensionMin float64
	TensionMax float64

	// Samples for the average tension
	PointsAverage int

	// Valid temperature domain of the elongation model (°F)
	TemperatureMin float64
	TemperatureMax float64

	Logger logging.Logger
}

// DefaultConfig returns the solver settings used when none are given
func DefaultConfig() Config {
	return Config{
		Tolerance:        1e-10,
		TensionTolerance: 1e-6,
		IterationsMax:    100,
		TensionMin:       1,
		TensionMax:       1e7,
		PointsAverage:    DefaultPointsAverage,
		TemperatureMin:   -100,
		TemperatureMax:   600,
		Logger:           logging.Noop(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	if c.TensionTolerance <= 0 {
		c.TensionTolerance = d.TensionTolerance
	}
	if c.IterationsMax <= 0 {
		c.IterationsMax = d.IterationsMax
	}
	if c.TensionMin <= 0 {
		c.TensionMin = d.TensionMin
	}
	if c.TensionMax <= 0 {
		c.TensionMax = d.TensionMax
	}
	if c.PointsAverage <= 0 {
		c.PointsAverage = d.PointsAverage
	}
	if c.TemperatureMin == 0 && c.TemperatureMax == 0 {
		c.TemperatureMin, c.TemperatureMax = d.TemperatureMin, d.TemperatureMax
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	return c
}
