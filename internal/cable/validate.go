package cable

import (
	"fmt"
	"math"
)

// monotonicSamples is the number of points the load-strain polynomial is
// sampled at between its zero and its limit.
const monotonicSamples = 200

// Validate checks the cable properties and returns false with a list of
// messages when the cable cannot be modeled. Strict mode tightens the
// acceptable ranges.
func (c Cable) Validate(strict bool) (bool, []string) {
	var messages []string

	if !positive(c.AreaPhysical) {
		messages = append(messages, fmt.Sprintf("CABLE - invalid physical area: %g", c.AreaPhysical))
	}
	if !positive(c.Diameter) {
		messages = append(messages, fmt.Sprintf("CABLE - invalid diameter: %g", c.Diameter))
	}
	if !positive(c.WeightUnit) {
		messages = append(messages, fmt.Sprintf("CABLE - invalid unit weight: %g", c.WeightUnit))
	}
	if math.IsNaN(c.TemperatureProperties) || math.IsInf(c.TemperatureProperties, 0) {
		messages = append(messages, "CABLE - invalid component property temperature")
	}
	if strict && !positive(c.StrengthRated) {
		messages = append(messages, fmt.Sprintf("CABLE - invalid rated strength: %g", c.StrengthRated))
	}

	messages = append(messages, c.Shell.validate("SHELL", strict)...)
	messages = append(messages, c.Core.validate("CORE", strict)...)

	return len(messages) == 0, messages
}

func (c Component) validate(name string, strict bool) []string {
	var messages []string
	prefix := "CABLE COMPONENT " + name

	if math.IsNaN(c.CoefficientExpansionThermal) || c.CoefficientExpansionThermal < 0 {
		messages = append(messages, fmt.Sprintf("%s - invalid thermal expansion coefficient: %g", prefix, c.CoefficientExpansionThermal))
	}
	if c.ModulusTension < 0 || math.IsNaN(c.ModulusTension) {
		messages = append(messages, fmt.Sprintf("%s - invalid tension modulus: %g", prefix, c.ModulusTension))
	}
	if c.ModulusCompression < 0 || math.IsNaN(c.ModulusCompression) {
		messages = append(messages, fmt.Sprintf("%s - invalid compression modulus: %g", prefix, c.ModulusCompression))
	}

	if len(c.CoefficientsLoadStrain) < 2 {
		return append(messages, fmt.Sprintf("%s - load-strain polynomial needs at least two coefficients", prefix))
	}
	for _, coef := range c.CoefficientsLoadStrain {
		if math.IsNaN(coef) || math.IsInf(coef, 0) {
			return append(messages, fmt.Sprintf("%s - non-finite load-strain coefficient", prefix))
		}
	}

	limitMin := 0.0
	if strict {
		limitMin = 0.1
	}
	if c.LimitPolynomial <= limitMin {
		return append(messages, fmt.Sprintf("%s - invalid polynomial limit: %g%%", prefix, c.LimitPolynomial))
	}

	if polynomialValue(c.CoefficientsLoadStrain, -1) >= 0 ||
		polynomialValue(c.CoefficientsLoadStrain, c.LimitPolynomial) <= 0 {
		return append(messages, fmt.Sprintf("%s - polynomial does not cross zero load below the limit", prefix))
	}

	zero := polynomialZero(c)
	step := (c.LimitPolynomial - zero) / monotonicSamples
	for i := 0; i <= monotonicSamples; i++ {
		x := zero + float64(i)*step
		if polynomialSlope(c.CoefficientsLoadStrain, x) <= 0 {
			messages = append(messages, fmt.Sprintf("%s - polynomial is not increasing at %.4f%% strain", prefix, x))
			break
		}
	}

	return messages
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
