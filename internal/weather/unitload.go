package weather

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/vector"
)

// UnitLoadCalculator computes the load per unit length of a single cable,
// modeled as a cylinder with uniform radial ice in a free stream. The drag
// coefficient is 1.0.
type UnitLoadCalculator struct {
	DiameterCable   float64 // ft
	WeightUnitCable float64 // lb/ft
}

// UnitCableLoad returns the load per unit length. X is transverse, Y is
// vertical (downward).
func (c UnitLoadCalculator) UnitCableLoad(lc LoadCase) vector.Vector2 {
	diameterIced := c.DiameterCable + 2*lc.ThicknessIce
	areaIce := math.Pi / 4 * (diameterIced*diameterIced - c.DiameterCable*c.DiameterCable)

	return vector.Vector2{
		X: lc.PressureWind * diameterIced,
		Y: c.WeightUnitCable + lc.DensityIce*areaIce,
	}
}

// WeightUnit3D converts a unit load into the line coordinates used by the
// catenary: transverse along Y, vertical along Z.
func WeightUnit3D(load vector.Vector2) vector.Vector3 {
	return vector.NewVector3(0, load.X, load.Y)
}

// Validate checks the calculator inputs. Strict mode also requires a
// positive cable weight.
func (c UnitLoadCalculator) Validate(strict bool) (bool, []string) {
	var messages []string

	if !(c.DiameterCable > 0) || math.IsInf(c.DiameterCable, 0) {
		messages = append(messages, fmt.Sprintf("CABLE UNIT LOAD CALCULATOR - invalid diameter: %g", c.DiameterCable))
	}
	if math.IsNaN(c.WeightUnitCable) || math.IsInf(c.WeightUnitCable, 0) || c.WeightUnitCable < 0 {
		messages = append(messages, fmt.Sprintf("CABLE UNIT LOAD CALCULATOR - invalid unit weight: %g", c.WeightUnitCable))
	} else if strict && c.WeightUnitCable == 0 {
		messages = append(messages, "CABLE UNIT LOAD CALCULATOR - zero unit weight")
	}

	return len(messages) == 0, messages
}
