package weather

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosag/internal/vector"
	"github.com/stretchr/testify/assert"
)

// Drake ACSR
var drake = UnitLoadCalculator{DiameterCable: 1.108 / 12, WeightUnitCable: 1.094}

func TestUnitCableLoad(t *testing.T) {
	tests := []struct {
		name       string
		lc         LoadCase
		transverse float64
		vertical   float64
	}{
		{"bare, still air", LoadCase{}, 0, 1.094},
		{"bare, 8 psf", LoadCase{PressureWind: 8}, 0.7387, 1.094},
		{"0.5 in ice, 8 psf", LoadCase{PressureWind: 8, ThicknessIce: 0.5 / 12, DensityIce: DensityIceGlaze}, 1.405, 2.099},
		{"1 in ice, 8 psf", LoadCase{PressureWind: 8, ThicknessIce: 1.0 / 12, DensityIce: DensityIceGlaze}, 2.072, 3.729},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load := drake.UnitCableLoad(tt.lc)
			assert.InDelta(t, tt.transverse, load.X, 5e-4)
			assert.InDelta(t, tt.vertical, load.Y, 5e-4)
		})
	}
}

func TestStandardLoadCases(t *testing.T) {
	for _, lc := range StandardLoadCases {
		assert.NoError(t, lc.Validate(), lc.ID)
	}

	heavy, ok := FindLoadCase("heavy")
	assert.True(t, ok)
	assert.Equal(t, 0.0, heavy.TemperatureCable)

	load := drake.UnitCableLoad(heavy)
	assert.InDelta(t, 0.7027, load.X, 5e-4)
	assert.InDelta(t, 2.099, load.Y, 5e-4)

	_, ok = FindLoadCase("tornado")
	assert.False(t, ok)
}

func TestLoadCaseValidate(t *testing.T) {
	assert.Error(t, LoadCase{PressureWind: -1}.Validate())
	assert.Error(t, LoadCase{ThicknessIce: math.NaN()}.Validate())
	assert.Error(t, LoadCase{ThicknessIce: 0.1}.Validate())
	assert.NoError(t, LoadCase{ThicknessIce: 0.1, DensityIce: 57.3}.Validate())
}

func TestWeightUnit3D(t *testing.T) {
	w := WeightUnit3D(vector.Vector2{X: 2.072, Y: 3.729})
	assert.Equal(t, vector.NewVector3(0, 2.072, 3.729), w)
}

func TestCalculatorValidate(t *testing.T) {
	ok, messages := drake.Validate(true)
	assert.True(t, ok)
	assert.Empty(t, messages)

	ok, messages = UnitLoadCalculator{DiameterCable: 0, WeightUnitCable: -1}.Validate(false)
	assert.False(t, ok)
	assert.Len(t, messages, 2)

	weightless := UnitLoadCalculator{DiameterCable: 0.1}
	ok, _ = weightless.Validate(false)
	assert.True(t, ok)
	ok, _ = weightless.Validate(true)
	assert.False(t, ok)
}
