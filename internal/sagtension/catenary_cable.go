package sagtension

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/cable"
	"github.com/alexiusacademia/gosag/internal/catenary"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// CatenaryCable is a cable hanging as a catenary at a given state. Every
// derived quantity is computed from the fields on each call.
type CatenaryCable struct {
	Cable             cable.Cable
	SpacingEndpoints  vector.Vector3 // ft
	State             cable.State
	WeightUnit        vector.Vector3 // lb/ft
	TensionHorizontal float64        // lb

	// Samples of the average tension that drives the elongation model.
	// Zero means DefaultPointsAverage.
	PointsAverage int
}

func (cc CatenaryCable) pointsAverage() int {
	if cc.PointsAverage <= 0 {
		return DefaultPointsAverage
	}
	return cc.PointsAverage
}

// Catenary returns the geometry of the cable
func (cc CatenaryCable) Catenary() catenary.Catenary3D {
	return catenary.Catenary3D{
		SpacingEndpoints:  cc.SpacingEndpoints,
		TensionHorizontal: cc.TensionHorizontal,
		WeightUnit:        cc.WeightUnit,
	}
}

// Length returns the loaded, stretched curve length
func (cc CatenaryCable) Length() (float64, error) {
	return cc.Catenary().Length()
}

// Sag returns the sag along the resultant load
func (cc CatenaryCable) Sag() (float64, error) {
	return cc.Catenary().Sag()
}

// TensionMax returns the larger support tension
func (cc CatenaryCable) TensionMax() (float64, error) {
	return cc.Catenary().TensionMax()
}

// TensionAverage returns the average tension sampled at points positions
func (cc CatenaryCable) TensionAverage(points int) (float64, error) {
	return cc.Catenary().TensionAverage(points)
}

// Strain returns the cable elongation (fraction) at the average tension
func (cc CatenaryCable) Strain() (float64, error) {
	model, err := cable.NewModel(cc.Cable, cc.State)
	if err != nil {
		return 0, err
	}
	_, strain, err := cc.stretch(model, cc.pointsAverage())
	return strain, err
}

// LengthUnloadedUnstretched returns the cable length with the elongation
// at the current average tension, temperature and stretch removed.
func (cc CatenaryCable) LengthUnloadedUnstretched() (float64, error) {
	model, err := cable.NewModel(cc.Cable, cc.State)
	if err != nil {
		return 0, err
	}
	return cc.lengthUnloadedUnstretched(model, cc.pointsAverage())
}

// lengthUnloadedUnstretched lets the solver reuse one model for every
// candidate tension.
func (cc CatenaryCable) lengthUnloadedUnstretched(model *cable.Model, points int) (float64, error) {
	length, strain, err := cc.stretch(model, points)
	if err != nil {
		return 0, err
	}
	return length / (1 + strain), nil
}

func (cc CatenaryCable) stretch(model *cable.Model, points int) (length, strain float64, err error) {
	plane, err := cc.Catenary().Plane()
	if err != nil {
		return 0, 0, err
	}

	strain, err = model.Strain(plane.TensionAverage(points), cc.State.Temperature)
	if err != nil {
		return 0, 0, err
	}
	return plane.Length(), strain, nil
}

// Validate checks the catenary cable. Strict mode also rejects
// near-degenerate spans and stretch loads above the rated strength.
func (cc CatenaryCable) Validate(strict bool) (bool, []string) {
	_, messages := cc.Cable.Validate(strict)

	if !(cc.TensionHorizontal > 0) || math.IsInf(cc.TensionHorizontal, 0) {
		messages = append(messages, fmt.Sprintf("CATENARY CABLE - invalid horizontal tension: %g", cc.TensionHorizontal))
	}
	if !cc.SpacingEndpoints.IsFinite() {
		messages = append(messages, "CATENARY CABLE - non-finite endpoint spacing")
	}
	messages = append(messages, validateWeight("CATENARY CABLE", cc.WeightUnit, strict)...)
	messages = append(messages, validateState("CATENARY CABLE", cc.State, cc.Cable, strict)...)
	if len(messages) > 0 {
		return false, messages
	}

	plane, err := cc.Catenary().Plane()
	if err != nil {
		return false, append(messages, fmt.Sprintf("CATENARY CABLE - %v", err))
	}
	if strict && plane.Constant() < plane.SpanHorizontal/10 {
		messages = append(messages, fmt.Sprintf("CATENARY CABLE - near-degenerate span: catenary constant %.1f ft for a %.1f ft span",
			plane.Constant(), plane.SpanHorizontal))
	}

	length, err := cc.LengthUnloadedUnstretched()
	if err != nil {
		return false, append(messages, fmt.Sprintf("CATENARY CABLE - %v", err))
	}
	if spacing := cc.SpacingEndpoints.Magnitude(); length <= spacing {
		messages = append(messages, fmt.Sprintf("CATENARY CABLE - unstretched length %.3f ft does not exceed support spacing %.3f ft",
			length, spacing))
	}

	return len(messages) == 0, messages
}

func validateWeight(prefix string, w vector.Vector3, strict bool) []string {
	var messages []string
	if !w.IsFinite() {
		return append(messages, fmt.Sprintf("%s - non-finite unit weight", prefix))
	}
	if w.Magnitude() == 0 {
		messages = append(messages, fmt.Sprintf("%s - zero unit weight", prefix))
	}
	if w.Z < 0 || (strict && w.Y < 0) {
		messages = append(messages, fmt.Sprintf("%s - negative unit weight component: %+v", prefix, w))
	}
	return messages
}

func validateState(prefix string, s cable.State, c cable.Cable, strict bool) []string {
	var messages []string
	for _, x := range []float64{s.Temperature, s.LoadStretch, s.TemperatureStretch} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return append(messages, fmt.Sprintf("%s - non-finite state: %+v", prefix, s))
		}
	}
	if s.LoadStretch < 0 {
		messages = append(messages, fmt.Sprintf("%s - negative stretch load: %g", prefix, s.LoadStretch))
	}
	if strict && c.StrengthRated > 0 && s.LoadStretch > c.StrengthRated {
		messages = append(messages, fmt.Sprintf("%s - stretch load %.0f exceeds rated strength %.0f", prefix, s.LoadStretch, c.StrengthRated))
	}
	return messages
}
