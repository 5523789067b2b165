package cable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelStrain(t *testing.T) {
	m, err := NewModel(Drake(), State{Temperature: 60})
	require.NoError(t, err)
	assert.False(t, m.IsStretched())

	tests := []struct {
		name        string
		load        float64
		temperature float64
		expected    float64 // percent
	}{
		{"average span tension at 60°F", 6011.993423116625, 60, 0.10880932639921725},
		{"zero load at property temperature", 0, 70, 0.002759191573602493},
		{"zero load at 212°F", 0, 212, 0.09703346260454282},
		{"zero load at 0°F", 0, 0, -0.053229117509850585},
		{"moderate load at 0°F", 5000, 0, 0.032964603592498296},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strain, err := m.Strain(tt.load, tt.temperature)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected/100, strain, 1e-9)
		})
	}
}

func TestModelLoadStrainInverse(t *testing.T) {
	m, err := NewModel(Drake(), State{})
	require.NoError(t, err)

	assert.InDelta(t, 10410.713080320002, m.Load(0.002, 70), 1e-6)

	for _, load := range []float64{0, 1000, 6000, 12000, 20000, 30000} {
		for _, temperature := range []float64{0, 60, 212} {
			strain, err := m.Strain(load, temperature)
			require.NoError(t, err)
			assert.InDelta(t, load, m.Load(strain, temperature), 1e-4)
		}
	}
}

func TestModelStressElongation(t *testing.T) {
	c := Drake()
	m, err := NewModel(c, State{})
	require.NoError(t, err)

	stress := 6000 / c.AreaPhysical
	elongation, err := m.Elongation(stress, 60)
	require.NoError(t, err)

	strain, err := m.Strain(6000, 60)
	require.NoError(t, err)
	assert.InDelta(t, strain, elongation, 1e-12)
	assert.InDelta(t, stress, m.Stress(elongation, 60), 1e-4)
}

func TestModelMonotonicInTemperature(t *testing.T) {
	m, err := NewModel(Drake(), State{})
	require.NoError(t, err)

	previous := -1.0
	for temperature := -40.0; temperature <= 250; temperature += 10 {
		strain, err := m.Strain(5000, temperature)
		require.NoError(t, err)
		assert.Greater(t, strain, previous, "strain must grow with temperature")
		previous = strain
	}
}

func TestModelStretched(t *testing.T) {
	virgin, err := NewModel(Drake(), State{})
	require.NoError(t, err)

	stretched, err := NewModel(Drake(), State{LoadStretch: 12179, TemperatureStretch: 0})
	require.NoError(t, err)
	assert.True(t, stretched.IsStretched())

	// permanent set below the stretch load
	for _, load := range []float64{0, 5000} {
		sv, err := virgin.Strain(load, 0)
		require.NoError(t, err)
		ss, err := stretched.Strain(load, 0)
		require.NoError(t, err)
		assert.Greater(t, ss, sv)
	}
	ss, err := stretched.Strain(5000, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.07095704470452549/100, ss, 1e-9)

	// the stretch load itself sits on the virgin curve
	sv, err := virgin.Strain(12179, 0)
	require.NoError(t, err)
	ss, err = stretched.Strain(12179, 0)
	require.NoError(t, err)
	assert.InDelta(t, sv, ss, 1e-12)
	assert.InDelta(t, 0.16880837719460268/100, ss, 1e-9)
}

func TestModelLoadComponents(t *testing.T) {
	m, err := NewModel(Drake(), State{})
	require.NoError(t, err)

	shell, core := m.LoadComponents(0.002, 70)
	assert.InDelta(t, m.Load(0.002, 70), shell+core, 1e-9)
	assert.Greater(t, shell, 0.0)
	assert.Greater(t, core, 0.0)

	// the aluminum shell goes into compression when hot and lightly
	// strained, along the compression modulus
	shell, _ = m.LoadComponents(0.0005, 212)
	assert.Less(t, shell, 0.0)
	next, _ := m.LoadComponents(0.0006, 212)
	assert.InDelta(t, 1500*0.01*Drake().AreaPhysical, next-shell, 1e-6)
}

func TestModelErrors(t *testing.T) {
	c := Drake()
	c.AreaPhysical = 0
	_, err := NewModel(c, State{})
	assert.True(t, errors.Is(err, ErrInvalidCable))

	c = Drake()
	c.Core.CoefficientsLoadStrain = nil
	_, err = NewModel(c, State{})
	assert.True(t, errors.Is(err, ErrInvalidCable))

	m, err := NewModel(Drake(), State{})
	require.NoError(t, err)
	_, err = m.Strain(1e9, 60)
	assert.True(t, errors.Is(err, ErrStrainOutOfRange))

	_, err = NewModel(Drake(), State{LoadStretch: 1e9})
	assert.True(t, errors.Is(err, ErrStrainOutOfRange))
}

func TestPolynomial(t *testing.T) {
	coefficients := []float64{1, 2, 3}
	assert.InDelta(t, 17.0, polynomialValue(coefficients, 2), 1e-12)
	assert.InDelta(t, 14.0, polynomialSlope(coefficients, 2), 1e-12)

	zero := polynomialZero(Component{CoefficientsLoadStrain: []float64{-0.5, 1}})
	assert.InDelta(t, 0.5, zero, 1e-10)
}
