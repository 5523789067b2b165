package cable

// Component represents one material layer of a stranded cable (e.g. the
// aluminum shell or the steel core of an ACSR conductor).
//
// Load-strain polynomials follow the usual sag-tension convention: the
// polynomial returns stress referenced to the total cable area as a function
// of strain in percent.
type Component struct {
	CoefficientExpansionThermal float64   // strain per degree (fraction)
	CoefficientsLoadStrain      []float64 // ascending powers, stress at percent strain
	LimitPolynomial             float64   // percent strain where the polynomial stops
	ModulusTension              float64   // unloading slope, stress per percent strain
	ModulusCompression          float64   // compression slope, stress per percent strain
}

// Cable holds the physical properties of a cable. It is never modified by
// the solvers.
type Cable struct {
	Name string

	// Geometry
	Diameter     float64 // in
	AreaPhysical float64 // in²

	// Loading
	WeightUnit    float64 // lb/ft
	StrengthRated float64 // lb

	// Temperature at which the component curves were measured (°F)
	TemperatureProperties float64

	Shell Component
	Core  Component
}

// State describes the conditions a cable's stretch is evaluated at.
type State struct {
	Temperature float64 // °F

	// Permanent stretch locked into the cable by a previous load, applied
	// at TemperatureStretch. Zero means a virgin cable.
	LoadStretch        float64 // lb
	TemperatureStretch float64 // °F
}

// components returns the shell and core in a fixed order
func (c Cable) components() []Component {
	return []Component{c.Shell, c.Core}
}

// Drake returns a 795 kcmil 26/7 ACSR "Drake" conductor, the common
// reference cable for sag-tension checks.
func Drake() Cable {
	return Cable{
		Name:                  "Drake",
		Diameter:              1.108,
		AreaPhysical:          0.7264,
		WeightUnit:            1.094,
		StrengthRated:         31500,
		TemperatureProperties: 70,
		Shell: Component{
			CoefficientExpansionThermal: 0.0000128,
			CoefficientsLoadStrain:      []float64{-1213, 44308.1, -14004.4, -37618, 30676},
			LimitPolynomial:             0.5,
			ModulusTension:              64000,
			ModulusCompression:          1500,
		},
		Core: Component{
			CoefficientExpansionThermal: 0.0000064,
			CoefficientsLoadStrain:      []float64{-69.3, 38629, 3998.1, -45713, 27892},
			LimitPolynomial:             0.5,
			ModulusTension:              37000,
			ModulusCompression:          37000,
		},
	}
}
