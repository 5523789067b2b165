package cable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDrake(t *testing.T) {
	ok, messages := Drake().Validate(false)
	assert.True(t, ok)
	assert.Empty(t, messages)

	ok, messages = Drake().Validate(true)
	assert.True(t, ok)
	assert.Empty(t, messages)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Cable)
		strict bool
	}{
		{"zero area", func(c *Cable) { c.AreaPhysical = 0 }, false},
		{"negative diameter", func(c *Cable) { c.Diameter = -1 }, false},
		{"NaN unit weight", func(c *Cable) { c.WeightUnit = math.NaN() }, false},
		{"infinite property temperature", func(c *Cable) { c.TemperatureProperties = math.Inf(1) }, false},
		{"negative expansion", func(c *Cable) { c.Shell.CoefficientExpansionThermal = -1e-5 }, false},
		{"negative modulus", func(c *Cable) { c.Core.ModulusTension = -1 }, false},
		{"short polynomial", func(c *Cable) { c.Core.CoefficientsLoadStrain = []float64{1} }, false},
		{"non-finite coefficient", func(c *Cable) { c.Shell.CoefficientsLoadStrain = []float64{0, math.Inf(1)} }, false},
		{"zero limit", func(c *Cable) { c.Shell.LimitPolynomial = 0 }, false},
		{"no zero crossing", func(c *Cable) { c.Shell.CoefficientsLoadStrain = []float64{100, 10} }, false},
		{"decreasing polynomial", func(c *Cable) {
			c.Shell.CoefficientsLoadStrain = []float64{-10, 1000, -5000}
			c.Shell.LimitPolynomial = 0.15
		}, false},
		{"strict missing strength", func(c *Cable) { c.StrengthRated = 0 }, true},
		{"strict short limit", func(c *Cable) { c.Core.LimitPolynomial = 0.05 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Drake()
			tt.modify(&c)
			ok, messages := c.Validate(tt.strict)
			assert.False(t, ok)
			assert.NotEmpty(t, messages)
		})
	}
}

func TestValidateStrictOnlyWarnings(t *testing.T) {
	c := Drake()
	c.StrengthRated = 0

	ok, messages := c.Validate(false)
	assert.True(t, ok)
	assert.Empty(t, messages)
}
