package weather

import (
	"fmt"
	"math"
)

// LoadCase represents the weather a cable is checked against
type LoadCase struct {
	ID          string
	Description string

	PressureWind     float64 // lb/ft²
	ThicknessIce     float64 // ft, radial
	DensityIce       float64 // lb/ft³
	TemperatureCable float64 // °F
}

// DensityIceGlaze is the density of glaze ice
const DensityIceGlaze = 57.3 // lb/ft³

// StandardLoadCases are the NESC loading districts plus the common extreme
// ice and bare-wire cases used for stringing tables.
var StandardLoadCases = []LoadCase{
	{
		ID:               "heavy",
		Description:      "NESC heavy: 0.50 in ice, 4 psf wind, 0°F",
		PressureWind:     4,
		ThicknessIce:     0.5 / 12,
		DensityIce:       DensityIceGlaze,
		TemperatureCable: 0,
	},
	{
		ID:               "medium",
		Description:      "NESC medium: 0.25 in ice, 4 psf wind, 15°F",
		PressureWind:     4,
		ThicknessIce:     0.25 / 12,
		DensityIce:       DensityIceGlaze,
		TemperatureCable: 15,
	},
	{
		ID:               "light",
		Description:      "NESC light: no ice, 9 psf wind, 30°F",
		PressureWind:     9,
		TemperatureCable: 30,
	},
	{
		ID:               "ice-1in",
		Description:      "Extreme ice: 1.00 in ice, 8 psf wind, 0°F",
		PressureWind:     8,
		ThicknessIce:     1.0 / 12,
		DensityIce:       DensityIceGlaze,
		TemperatureCable: 0,
	},
	{
		ID:               "bare-hot",
		Description:      "Maximum operating: bare, no wind, 212°F",
		TemperatureCable: 212,
	},
}

// FindLoadCase returns the standard load case with the given ID
func FindLoadCase(id string) (LoadCase, bool) {
	for _, lc := range StandardLoadCases {
		if lc.ID == id {
			return lc, true
		}
	}
	return LoadCase{}, false
}

// Validate checks the load case values
func (lc LoadCase) Validate() error {
	for name, x := range map[string]float64{
		"wind pressure": lc.PressureWind,
		"ice thickness": lc.ThicknessIce,
		"ice density":   lc.DensityIce,
	} {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return fmt.Errorf("invalid %s: %g", name, x)
		}
	}
	if lc.ThicknessIce > 0 && lc.DensityIce == 0 {
		return fmt.Errorf("ice thickness %g needs an ice density", lc.ThicknessIce)
	}
	return nil
}
