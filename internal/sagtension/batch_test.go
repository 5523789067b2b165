package sagtension

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureSweep(t *testing.T) {
	base := newReloader()
	reloaders := TemperatureSweep(base, []float64{0, 60, 212})

	require.Len(t, reloaders, 3)
	assert.Equal(t, 0.0, reloaders[0].StateReloaded.Temperature)
	assert.Equal(t, 212.0, reloaders[2].StateReloaded.Temperature)
	assert.Equal(t, 60.0, base.StateReloaded.Temperature, "base must not change")
}

func TestReloadAll(t *testing.T) {
	temperatures := []float64{-20, 0, 32, 60, 90, 120, 167, 212}
	reloaders := TemperatureSweep(newReloader(), temperatures)

	results := ReloadAll(context.Background(), reloaders, 3)
	require.Len(t, results, len(temperatures))

	for i, r := range results {
		require.NoError(t, r.Err)
		sequential := reloadTension(t, reloaders[i])
		assert.InDelta(t, sequential, r.Result.CatenaryCable.TensionHorizontal, 1e-9)
		assert.Equal(t, temperatures[i], r.Result.CatenaryCable.State.Temperature)
	}

	assert.Equal(t, 6788.0, roundTension(results[1]))
	assert.Equal(t, 6000.0, roundTension(results[3]))
	assert.Equal(t, 4702.0, roundTension(results[7]))
}

func TestReloadAllReportsErrors(t *testing.T) {
	reloaders := TemperatureSweep(newReloader(), []float64{0, 60})
	reloaders[0].Config = Config{IterationsMax: 1}

	results := ReloadAll(context.Background(), reloaders, 0)
	assert.True(t, errors.Is(results[0].Err, ErrConvergenceFailure))
	assert.NoError(t, results[1].Err)
}

func TestReloadAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ReloadAll(ctx, TemperatureSweep(newReloader(), []float64{0, 60, 212}), 2)
	for _, r := range results {
		assert.True(t, errors.Is(r.Err, context.Canceled))
		assert.Nil(t, r.Result)
	}
}

func roundTension(r BatchResult) float64 {
	return math.Round(r.Result.CatenaryCable.TensionHorizontal)
}
