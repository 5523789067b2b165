package catenary

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gosag/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatenary2DLevelSpan(t *testing.T) {
	c, err := NewCatenary2D(6000, 1.094, 1200, 0)
	require.NoError(t, err)

	assert.InDelta(t, 6000/1.094, c.Constant(), 1e-9)
	assert.InDelta(t, 1202.3951048246613, c.Length(), 1e-9)
	assert.InDelta(t, 6011.993423116625, c.TensionAverage(100), 1e-9)
	assert.InDelta(t, 6035.9409046997225, c.TensionMax(), 1e-9)
	assert.InDelta(t, 32.85274652625503, c.Sag(), 1e-9)

	// support tension exceeds the horizontal tension by w times the sag
	assert.InDelta(t, c.TensionHorizontal+c.WeightUnit*c.Sag(), c.TensionMax(), 1e-6)
}

func TestCatenary2DInclinedSpan(t *testing.T) {
	c, err := NewCatenary2D(5000, 1.0, 1000, 100)
	require.NoError(t, err)

	assert.InDelta(t, 1006.646800498463, c.Length(), 1e-9)
	assert.InDelta(t, 5033.409684007473, c.TensionAverage(100), 1e-9)
	assert.InDelta(t, 5100.000274844545, c.TensionMax(), 1e-6)
	assert.InDelta(t, 25.145288094319767, c.Sag(), 1e-9)
}

func TestCatenary2DPositionFraction(t *testing.T) {
	c, err := NewCatenary2D(5000, 1.0, 1000, 100)
	require.NoError(t, err)

	start := c.PositionFraction(0)
	assert.InDelta(t, 0.0, start.X, 1e-9)
	assert.InDelta(t, 0.0, start.Y, 1e-9)

	end := c.PositionFraction(1)
	assert.InDelta(t, 1000.0, end.X, 1e-6)
	assert.InDelta(t, 100.0, end.Y, 1e-6)

	level, err := NewCatenary2D(6000, 1.094, 1200, 0)
	require.NoError(t, err)
	mid := level.PositionFraction(0.5)
	assert.InDelta(t, 600.0, mid.X, 1e-6)
	assert.InDelta(t, -level.Sag(), mid.Y, 1e-6)
}

func TestCatenary2DTensionAveragePoints(t *testing.T) {
	c, err := NewCatenary2D(6000, 1.094, 1200, 0)
	require.NoError(t, err)

	// a single sample sits at mid-arc, the low point of a level span
	assert.InDelta(t, 6000.0, c.TensionAverage(1), 1e-9)
	assert.InDelta(t, 6000.0, c.TensionAverage(0), 1e-9)
	assert.Greater(t, c.TensionAverage(1000), c.TensionHorizontal)
	assert.Less(t, c.TensionAverage(1000), c.TensionMax())
}

func TestCatenary2DErrors(t *testing.T) {
	tests := []struct {
		name             string
		tension, w, h, v float64
		expected         error
	}{
		{"zero tension", 0, 1, 1000, 0, ErrInvalidTension},
		{"negative tension", -100, 1, 1000, 0, ErrInvalidTension},
		{"NaN tension", math.NaN(), 1, 1000, 0, ErrInvalidTension},
		{"degenerate tension", 1e-3, 1, 1000, 0, ErrInvalidTension},
		{"zero unit weight", 1000, 0, 1000, 0, ErrInvalidGeometry},
		{"zero span", 1000, 1, 0, 0, ErrInvalidGeometry},
		{"infinite rise", 1000, 1, 1000, math.Inf(1), ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatenary2D(tt.tension, tt.w, tt.h, tt.v)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestCatenary3DPlane(t *testing.T) {
	tests := []struct {
		name    string
		spacing vector.Vector3
		weight  vector.Vector3
		w, h, v float64
	}{
		{"bare level", vector.NewVector3(1200, 0, 0), vector.NewVector3(0, 0, 1.094), 1.094, 1200, 0},
		{"iced with wind", vector.NewVector3(1200, 0, 0), vector.NewVector3(0, 2.072, 3.729), math.Hypot(2.072, 3.729), 1200, 0},
		{"inclined", vector.NewVector3(1000, 0, 100), vector.NewVector3(0, 0, 1), 1, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Catenary3D{SpacingEndpoints: tt.spacing, TensionHorizontal: 5000, WeightUnit: tt.weight}
			p, err := c.Plane()
			require.NoError(t, err)
			assert.InDelta(t, tt.w, p.WeightUnit, 1e-12)
			assert.InDelta(t, tt.h, p.SpanHorizontal, 1e-9)
			assert.InDelta(t, tt.v, p.SpanVertical, 1e-9)
		})
	}
}

func TestCatenary3DBlownOutInclined(t *testing.T) {
	// wind rotates the plane, so part of the rise becomes horizontal span
	c := Catenary3D{
		SpacingEndpoints:  vector.NewVector3(1000, 0, 100),
		TensionHorizontal: 5000,
		WeightUnit:        vector.NewVector3(0, 1, 1),
	}
	p, err := c.Plane()
	require.NoError(t, err)

	assert.InDelta(t, 100/math.Sqrt2, p.SpanVertical, 1e-9)
	assert.InDelta(t, math.Hypot(1000, 100/math.Sqrt2), p.SpanHorizontal, 1e-9)
}

func TestCatenary3DDelegates(t *testing.T) {
	c := Catenary3D{
		SpacingEndpoints:  vector.NewVector3(1200, 0, 0),
		TensionHorizontal: 17125.821322238582,
		WeightUnit:        vector.NewVector3(0, 2.072, 3.729),
	}

	length, err := c.Length()
	require.NoError(t, err)
	assert.InDelta(t, 1204.4725303788273, length, 1e-9)

	average, err := c.TensionAverage(100)
	require.NoError(t, err)
	assert.InDelta(t, 17189.834561931813, average, 1e-6)

	maximum, err := c.TensionMax()
	require.NoError(t, err)
	assert.InDelta(t, 17317.45328598628, maximum, 1e-6)

	sag, err := c.Sag()
	require.NoError(t, err)
	assert.InDelta(t, 44.920922049472665, sag, 1e-9)
}

func TestCatenary3DErrors(t *testing.T) {
	c := Catenary3D{SpacingEndpoints: vector.NewVector3(1200, 0, 0), WeightUnit: vector.NewVector3(0, 0, 1.094)}

	_, err := c.Length()
	assert.True(t, errors.Is(err, ErrInvalidTension))

	c.TensionHorizontal = 6000
	c.WeightUnit = vector.Vector3{}
	_, err = c.Sag()
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	c.WeightUnit = vector.NewVector3(0, math.NaN(), 1)
	_, err = c.TensionMax()
	assert.True(t, errors.Is(err, ErrInvalidGeometry))

	// vertical spacing along the load leaves no horizontal span
	c.WeightUnit = vector.NewVector3(0, 0, 1)
	c.SpacingEndpoints = vector.NewVector3(0, 0, 100)
	_, err = c.TensionAverage(10)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}
