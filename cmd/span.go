package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gosag/internal/cable"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/vector"
	"github.com/alexiusacademia/gosag/internal/weather"
	"github.com/spf13/cobra"
)

// spanOptions are the flags shared by the commands that build a catenary
// cable from a span and a known tension.
type spanOptions struct {
	cableFile string

	// Geometry (ft)
	span float64
	rise float64

	// Known condition
	tension     float64 // lb
	temperature float64 // °F
	stretchLoad float64 // lb
	stretchTemp float64 // °F

	// Reloaded weather
	loadCase string
	ice      float64 // in
	wind     float64 // psf
	density  float64 // lb/ft³
	weightY  float64 // lb/ft
	weightZ  float64 // lb/ft

	// Permanent stretch of the reloaded cable
	stretchCase    string
	stretchLoadNew float64
	stretchTempNew float64

	tolerance     float64
	iterationsMax int
}

func (o *spanOptions) addSpanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.cableFile, "cable", "f", "", "Cable definition file, - for stdin (default: built-in Drake ACSR)")
	cmd.Flags().Float64VarP(&o.span, "span", "s", 0, "Horizontal span length (ft) [required]")
	cmd.Flags().Float64Var(&o.rise, "rise", 0, "Elevation of the end support above the start (ft)")
	cmd.Flags().Float64VarP(&o.tension, "tension", "t", 0, "Known horizontal tension (lb) [required]")
	cmd.Flags().Float64Var(&o.temperature, "temp", 60, "Cable temperature at the known tension (°F)")
	cmd.Flags().Float64Var(&o.stretchLoad, "stretch-load", 0, "Stretch load already in the cable (lb)")
	cmd.Flags().Float64Var(&o.stretchTemp, "stretch-temp", 0, "Temperature of the existing stretch load (°F)")
	cmd.MarkFlagRequired("span")
	cmd.MarkFlagRequired("tension")
}

func (o *spanOptions) addWeatherFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.loadCase, "case", "", "Standard weather case (heavy, medium, light, ice-1in, bare-hot)")
	cmd.Flags().Float64Var(&o.ice, "ice", 0, "Radial ice thickness (in)")
	cmd.Flags().Float64Var(&o.wind, "wind", 0, "Wind pressure (psf)")
	cmd.Flags().Float64Var(&o.density, "ice-density", weather.DensityIceGlaze, "Ice density (lb/ft³)")
	cmd.Flags().Float64Var(&o.weightY, "weight-y", 0, "Transverse unit weight override (lb/ft)")
	cmd.Flags().Float64Var(&o.weightZ, "weight-z", 0, "Vertical unit weight override (lb/ft)")

	cmd.Flags().StringVar(&o.stretchCase, "stretch-case", "", "Standard weather case whose load stretches the cable")
	cmd.Flags().Float64Var(&o.stretchLoadNew, "stretch-load-new", 0, "Stretch load of the reloaded cable (lb)")
	cmd.Flags().Float64Var(&o.stretchTempNew, "stretch-temp-new", 0, "Temperature of the reloaded stretch load (°F)")

	cmd.Flags().Float64Var(&o.tolerance, "tolerance", 0, "Relative length tolerance of the solver (default 1e-10)")
	cmd.Flags().IntVar(&o.iterationsMax, "max-iterations", 0, "Iteration limit of the solver (default 100)")
}

// stdin is read by loadCable for the "-" file name
var stdin io.Reader = os.Stdin

// loadCable reads a cable file, or standard input for "-", falling back to
// Drake
func loadCable(filename string) (cable.Cable, error) {
	switch filename {
	case "":
		return cable.Drake(), nil
	case "-":
		text, err := io.ReadAll(stdin)
		if err != nil {
			return cable.Cable{}, fmt.Errorf("failed to read cable from stdin: %w", err)
		}
		return cable.Parse(string(text))
	}
	return cable.LoadFile(filename)
}

// unitLoadCalculator converts cable properties to feet
func unitLoadCalculator(c cable.Cable) weather.UnitLoadCalculator {
	return weather.UnitLoadCalculator{
		DiameterCable:   c.Diameter / 12,
		WeightUnitCable: c.WeightUnit,
	}
}

// catenaryCable builds the known condition: bare cable, no wind
func (o *spanOptions) catenaryCable() (sagtension.CatenaryCable, error) {
	c, err := loadCable(o.cableFile)
	if err != nil {
		return sagtension.CatenaryCable{}, err
	}

	return sagtension.CatenaryCable{
		Cable:            c,
		SpacingEndpoints: vector.NewVector3(o.span, 0, o.rise),
		State: cable.State{
			Temperature:        o.temperature,
			LoadStretch:        o.stretchLoad,
			TemperatureStretch: o.stretchTemp,
		},
		WeightUnit:        vector.NewVector3(0, 0, c.WeightUnit),
		TensionHorizontal: o.tension,
	}, nil
}

// loadCaseReloaded resolves the reloaded weather from a standard case or the flags.
// A standard case also supplies the temperature.
func (o *spanOptions) loadCaseReloaded() (weather.LoadCase, bool, error) {
	if o.loadCase != "" {
		lc, ok := weather.FindLoadCase(o.loadCase)
		if !ok {
			return weather.LoadCase{}, false, fmt.Errorf("unknown weather case %q", o.loadCase)
		}
		return lc, true, nil
	}

	lc := weather.LoadCase{
		Description:  "custom",
		PressureWind: o.wind,
		ThicknessIce: o.ice / 12,
	}
	if o.ice > 0 {
		lc.DensityIce = o.density
	}
	return lc, false, lc.Validate()
}

// weightUnit returns the reloaded unit weight, honouring explicit overrides
func (o *spanOptions) weightUnit(cmd *cobra.Command, c cable.Cable, lc weather.LoadCase) vector.Vector3 {
	w := weather.WeightUnit3D(unitLoadCalculator(c).UnitCableLoad(lc))
	if cmd.Flags().Changed("weight-y") {
		w.Y = o.weightY
	}
	if cmd.Flags().Changed("weight-z") {
		w.Z = o.weightZ
	}
	return w
}

func (o *spanOptions) config() sagtension.Config {
	cfg := sagtension.DefaultConfig()
	if o.tolerance > 0 {
		cfg.Tolerance = o.tolerance
	}
	if o.iterationsMax > 0 {
		cfg.IterationsMax = o.iterationsMax
	}
	cfg.Logger = logger
	return cfg
}

// reloader builds the reload from the known condition to the reloaded
// weather at the given temperature.
func (o *spanOptions) reloader(cmd *cobra.Command, temperature float64) (sagtension.Reloader, weather.LoadCase, error) {
	cc, err := o.catenaryCable()
	if err != nil {
		return sagtension.Reloader{}, weather.LoadCase{}, err
	}

	lc, standard, err := o.loadCaseReloaded()
	if err != nil {
		return sagtension.Reloader{}, weather.LoadCase{}, err
	}
	if standard && !cmd.Flags().Changed("temp-new") {
		temperature = lc.TemperatureCable
	}

	r := sagtension.Reloader{
		CatenaryCable: cc,
		StateReloaded: cable.State{
			Temperature:        temperature,
			LoadStretch:        o.stretchLoadNew,
			TemperatureStretch: o.stretchTempNew,
		},
		WeightUnitReloaded: o.weightUnit(cmd, cc.Cable, lc),
		Config:             o.config(),
	}

	if o.stretchCase != "" {
		state, err := o.stretchState(cc)
		if err != nil {
			return sagtension.Reloader{}, weather.LoadCase{}, err
		}
		r.StateReloaded.LoadStretch = state.LoadStretch
		r.StateReloaded.TemperatureStretch = state.TemperatureStretch
	}

	return r, lc, nil
}

// stretchState reloads the known condition to a standard case and locks in
// its average tension as permanent stretch.
func (o *spanOptions) stretchState(cc sagtension.CatenaryCable) (cable.State, error) {
	lc, ok := weather.FindLoadCase(o.stretchCase)
	if !ok {
		return cable.State{}, fmt.Errorf("unknown stretch case %q", o.stretchCase)
	}

	r := sagtension.Reloader{
		CatenaryCable:      cc,
		StateReloaded:      cable.State{Temperature: lc.TemperatureCable},
		WeightUnitReloaded: weather.WeightUnit3D(unitLoadCalculator(cc.Cable).UnitCableLoad(lc)),
		Config:             o.config(),
	}
	loaded, err := r.CatenaryCableReloaded()
	if err != nil {
		return cable.State{}, fmt.Errorf("stretch case %s: %w", lc.ID, err)
	}
	average, err := loaded.TensionAverage(loaded.PointsAverage)
	if err != nil {
		return cable.State{}, err
	}

	return cable.State{
		Temperature:        lc.TemperatureCable,
		LoadStretch:        average,
		TemperatureStretch: lc.TemperatureCable,
	}, nil
}
