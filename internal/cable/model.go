package cable

import (
	"fmt"
	"math"
)

// Strain search range of the inverse model (percent)
const (
	strainSearchMin = -2.0
	strainSearchMax = 5.0

	strainTolerance = 1e-12 // percent
	iterationsMax   = 200
)

// componentCurve is a component with its polynomial zero resolved
type componentCurve struct {
	Component
	zero float64 // percent strain at zero polynomial load
}

// Model is the stress-strain model of a cable at a given permanent stretch.
// Strains passed to and returned from the exported methods are fractions;
// the component polynomials are evaluated in percent internally.
type Model struct {
	cable  Cable
	curves []componentCurve

	// Locked-in mechanical strain of each component (percent); nil when the
	// cable is unstretched.
	stretch []float64
}

// NewModel creates the elongation model for a cable with the permanent
// stretch described by state. The temperature of state is not used; it is
// passed to each evaluation instead.
func NewModel(c Cable, state State) (*Model, error) {
	if c.AreaPhysical <= 0 || math.IsNaN(c.AreaPhysical) {
		return nil, fmt.Errorf("%w: area %.4f", ErrInvalidCable, c.AreaPhysical)
	}

	m := &Model{cable: c}
	for i, comp := range c.components() {
		if len(comp.CoefficientsLoadStrain) == 0 {
			return nil, fmt.Errorf("%w: component %d has no load-strain polynomial", ErrInvalidCable, i)
		}
		m.curves = append(m.curves, componentCurve{Component: comp, zero: polynomialZero(comp)})
	}

	if state.LoadStretch > 0 {
		eps, err := m.strainPercent(state.LoadStretch, state.TemperatureStretch)
		if err != nil {
			return nil, fmt.Errorf("stretch load %.1f: %w", state.LoadStretch, err)
		}
		m.stretch = make([]float64, len(m.curves))
		for i, curve := range m.curves {
			m.stretch[i] = eps - m.thermalPercent(curve, state.TemperatureStretch)
		}
	}

	return m, nil
}

// Cable returns the cable the model was built for
func (m *Model) Cable() Cable {
	return m.cable
}

// IsStretched reports whether a permanent stretch is locked in
func (m *Model) IsStretched() bool {
	return m.stretch != nil
}

// Load returns the total cable load at the given strain and temperature
func (m *Model) Load(strain, temperature float64) float64 {
	return m.loadPercent(strain*100, temperature)
}

// Stress returns the stress at the given elongation and temperature
func (m *Model) Stress(elongation, temperature float64) float64 {
	return m.Load(elongation, temperature) / m.cable.AreaPhysical
}

// Strain returns the elongation (fraction) of the cable under the given load
func (m *Model) Strain(load, temperature float64) (float64, error) {
	eps, err := m.strainPercent(load, temperature)
	if err != nil {
		return 0, err
	}
	return eps / 100, nil
}

// Elongation returns the elongation (fraction) of the cable at the given stress
func (m *Model) Elongation(stress, temperature float64) (float64, error) {
	return m.Strain(stress*m.cable.AreaPhysical, temperature)
}

// LoadComponents returns the load carried by the shell and the core at the
// given strain and temperature.
func (m *Model) LoadComponents(strain, temperature float64) (shell, core float64) {
	eps := strain * 100
	loads := make([]float64, len(m.curves))
	for i, curve := range m.curves {
		loads[i] = m.componentStress(i, eps-m.thermalPercent(curve, temperature)) * m.cable.AreaPhysical
	}
	return loads[0], loads[1]
}

func (m *Model) thermalPercent(curve componentCurve, temperature float64) float64 {
	return curve.CoefficientExpansionThermal * 100 * (temperature - m.cable.TemperatureProperties)
}

func (m *Model) loadPercent(eps, temperature float64) float64 {
	var stress float64
	for i, curve := range m.curves {
		stress += m.componentStress(i, eps-m.thermalPercent(curve, temperature))
	}
	return stress * m.cable.AreaPhysical
}

// componentStress evaluates component i at mechanical strain x (percent)
func (m *Model) componentStress(i int, x float64) float64 {
	curve := m.curves[i]
	if m.stretch == nil || x >= m.stretch[i] || curve.ModulusTension <= 0 {
		return curve.virgin(x)
	}

	// unloading line through the stretched point
	xMax := m.stretch[i]
	stressMax := curve.virgin(xMax)
	stress := stressMax + curve.ModulusTension*(x-xMax)
	if stress < 0 {
		xZero := xMax - stressMax/curve.ModulusTension
		stress = curve.ModulusCompression * (x - xZero)
	}
	return stress
}

// strainPercent inverts the model by bisection. The model load is
// non-decreasing in strain for a valid cable.
func (m *Model) strainPercent(load, temperature float64) (float64, error) {
	lo, hi := strainSearchMin, strainSearchMax
	if m.loadPercent(lo, temperature) > load || m.loadPercent(hi, temperature) < load {
		return 0, fmt.Errorf("%w: load %.2f at %.1f°", ErrStrainOutOfRange, load, temperature)
	}

	for i := 0; i < iterationsMax && hi-lo > strainTolerance; i++ {
		mid := (lo + hi) / 2
		if m.loadPercent(mid, temperature) < load {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// virgin evaluates the initial (never stretched) curve at percent strain x
func (c componentCurve) virgin(x float64) float64 {
	if x < c.zero {
		return c.ModulusCompression * (x - c.zero)
	}
	if x > c.LimitPolynomial {
		return polynomialValue(c.CoefficientsLoadStrain, c.LimitPolynomial) +
			polynomialSlope(c.CoefficientsLoadStrain, c.LimitPolynomial)*(x-c.LimitPolynomial)
	}
	return polynomialValue(c.CoefficientsLoadStrain, x)
}

func polynomialValue(coefficients []float64, x float64) float64 {
	var y float64
	for i := len(coefficients) - 1; i >= 0; i-- {
		y = y*x + coefficients[i]
	}
	return y
}

func polynomialSlope(coefficients []float64, x float64) float64 {
	var y float64
	for i := len(coefficients) - 1; i >= 1; i-- {
		y = y*x + float64(i)*coefficients[i]
	}
	return y
}

// polynomialZero finds the percent strain where the component polynomial
// crosses zero load, searching [-1, 1].
func polynomialZero(c Component) float64 {
	lo, hi := -1.0, 1.0
	for i := 0; i < iterationsMax && hi-lo > strainTolerance; i++ {
		mid := (lo + hi) / 2
		if polynomialValue(c.CoefficientsLoadStrain, mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
