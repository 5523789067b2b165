package cmd

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosag/internal/cable"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSpanCommand returns a throwaway command carrying the shared span flags
func newSpanCommand(t *testing.T, args ...string) (*cobra.Command, *spanOptions) {
	t.Helper()

	var opts spanOptions
	cmd := &cobra.Command{Use: "test"}
	opts.addSpanFlags(cmd)
	opts.addWeatherFlags(cmd)
	cmd.Flags().Float64("temp-new", 0, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &opts
}

func TestTemperatureRange(t *testing.T) {
	temps, err := temperatureRange(-20, 40, 20)
	require.NoError(t, err)
	assert.Equal(t, []float64{-20, 0, 20, 40}, temps)

	temps, err = temperatureRange(0, 1, 0.1)
	require.NoError(t, err)
	assert.Len(t, temps, 11)

	_, err = temperatureRange(0, 10, 0)
	assert.Error(t, err)
	_, err = temperatureRange(10, 0, 1)
	assert.Error(t, err)
}

func TestSpanReloader(t *testing.T) {
	cmd, opts := newSpanCommand(t, "--span", "1200", "--tension", "6000", "--ice", "1", "--wind", "8")

	r, lc, err := opts.reloader(cmd, 0)
	require.NoError(t, err)

	assert.Equal(t, "Drake", r.CatenaryCable.Cable.Name)
	assert.Equal(t, 60.0, r.CatenaryCable.State.Temperature)
	assert.InDelta(t, 1.094, r.CatenaryCable.WeightUnit.Z, 1e-12)
	assert.InDelta(t, 1.0/12, lc.ThicknessIce, 1e-12)
	assert.InDelta(t, 2.072, r.WeightUnitReloaded.Y, 5e-4)
	assert.InDelta(t, 3.729, r.WeightUnitReloaded.Z, 5e-4)

	cc, err := r.CatenaryCableReloaded()
	require.NoError(t, err)
	assert.InDelta(t, 17126.0, cc.TensionHorizontal, 3)
}

func TestSpanReloaderStandardCase(t *testing.T) {
	cmd, opts := newSpanCommand(t, "-s", "1200", "-t", "6000", "--case", "bare-hot")
	r, _, err := opts.reloader(cmd, 0)
	require.NoError(t, err)
	assert.Equal(t, 212.0, r.StateReloaded.Temperature)

	// an explicit temperature wins over the case
	cmd, opts = newSpanCommand(t, "-s", "1200", "-t", "6000", "--case", "bare-hot", "--temp-new", "100")
	r, _, err = opts.reloader(cmd, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.StateReloaded.Temperature)

	cmd, opts = newSpanCommand(t, "-s", "1200", "-t", "6000", "--case", "tornado")
	_, _, err = opts.reloader(cmd, 0)
	assert.Error(t, err)
}

func TestSpanReloaderWeightOverride(t *testing.T) {
	cmd, opts := newSpanCommand(t, "-s", "1200", "-t", "6000", "--weight-y", "1.405", "--weight-z", "2.099")
	r, _, err := opts.reloader(cmd, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.405, r.WeightUnitReloaded.Y)
	assert.Equal(t, 2.099, r.WeightUnitReloaded.Z)

	cc, err := r.CatenaryCableReloaded()
	require.NoError(t, err)
	assert.Equal(t, 12147.0, math.Round(cc.TensionHorizontal))
}

func TestSpanReloaderStretchCase(t *testing.T) {
	cmd, opts := newSpanCommand(t, "-s", "1200", "-t", "6000", "--stretch-case", "ice-1in")
	r, _, err := opts.reloader(cmd, 60)
	require.NoError(t, err)

	assert.Greater(t, r.StateReloaded.LoadStretch, 17126.0)
	assert.Equal(t, 0.0, r.StateReloaded.TemperatureStretch)

	// stretch leaves a slacker bare cable
	cc, err := r.CatenaryCableReloaded()
	require.NoError(t, err)
	assert.Less(t, cc.TensionHorizontal, 6000.0)
}

func TestSpanReloaderInvalidWeather(t *testing.T) {
	cmd, opts := newSpanCommand(t, "-s", "1200", "-t", "6000", "--wind", "-4")
	_, _, err := opts.reloader(cmd, 0)
	assert.Error(t, err)
}

func TestSpanConfig(t *testing.T) {
	cmd, opts := newSpanCommand(t, "-s", "1200", "-t", "6000", "--tolerance", "1e-8", "--max-iterations", "20")
	r, _, err := opts.reloader(cmd, 0)
	require.NoError(t, err)
	assert.Equal(t, 1e-8, r.Config.Tolerance)
	assert.Equal(t, 20, r.Config.IterationsMax)
	assert.NotNil(t, r.Config.Logger)
}

func TestLoadCableStdin(t *testing.T) {
	text, err := os.ReadFile("../internal/cable/testdata/drake.cfg")
	require.NoError(t, err)

	saved := stdin
	t.Cleanup(func() { stdin = saved })

	stdin = strings.NewReader(string(text))
	c, err := loadCable("-")
	require.NoError(t, err)
	assert.Equal(t, cable.Drake(), c)

	stdin = strings.NewReader("[cable\nname = broken")
	_, err = loadCable("-")
	assert.Error(t, err)

	c, err = loadCable("")
	require.NoError(t, err)
	assert.Equal(t, "Drake", c.Name)
}
