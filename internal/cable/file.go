package cable

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// fileConfig mirrors the git-config style cable file:
//
//	[cable]
//	name = Drake
//	diameter = 1.108
//	area = 0.7264
//	weight-unit = 1.094
//	strength-rated = 31500
//	temperature-properties = 70
//
//	[component "shell"]
//	thermal-expansion = 0.0000128
//	coefficient = -1213
//	coefficient = 44308.1
//	limit = 0.5
//	modulus-tension = 64000
//	modulus-compression = 1500
//
// Coefficients are listed in ascending powers. Both the "shell" and the
// "core" components are required.
type fileConfig struct {
	Cable struct {
		Name                  string
		Diameter              float64
		Area                  float64
		WeightUnit            float64 `gcfg:"weight-unit"`
		StrengthRated         float64 `gcfg:"strength-rated"`
		TemperatureProperties float64 `gcfg:"temperature-properties"`
	}
	Component map[string]*componentConfig
}

type componentConfig struct {
	ThermalExpansion   float64 `gcfg:"thermal-expansion"`
	Coefficient        []float64
	Limit              float64
	ModulusTension     float64 `gcfg:"modulus-tension"`
	ModulusCompression float64 `gcfg:"modulus-compression"`
}

// LoadFile reads a cable definition from a git-config style file
func LoadFile(filename string) (Cable, error) {
	var cfg fileConfig
	if err := gcfg.ReadFileInto(&cfg, filename); err != nil {
		return Cable{}, fmt.Errorf("failed to read cable file: %w", err)
	}
	return cfg.cable()
}

// Parse reads a cable definition from a string in the cable file format
func Parse(text string) (Cable, error) {
	var cfg fileConfig
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return Cable{}, fmt.Errorf("failed to parse cable: %w", err)
	}
	return cfg.cable()
}

func (cfg *fileConfig) cable() (Cable, error) {
	shell, ok := cfg.Component["shell"]
	if !ok {
		return Cable{}, fmt.Errorf("%w: missing [component \"shell\"]", ErrInvalidCable)
	}
	core, ok := cfg.Component["core"]
	if !ok {
		return Cable{}, fmt.Errorf("%w: missing [component \"core\"]", ErrInvalidCable)
	}

	return Cable{
		Name:                  cfg.Cable.Name,
		Diameter:              cfg.Cable.Diameter,
		AreaPhysical:          cfg.Cable.Area,
		WeightUnit:            cfg.Cable.WeightUnit,
		StrengthRated:         cfg.Cable.StrengthRated,
		TemperatureProperties: cfg.Cable.TemperatureProperties,
		Shell:                 shell.component(),
		Core:                  core.component(),
	}, nil
}

func (c *componentConfig) component() Component {
	return Component{
		CoefficientExpansionThermal: c.ThermalExpansion,
		CoefficientsLoadStrain:      c.Coefficient,
		LimitPolynomial:             c.Limit,
		ModulusTension:              c.ModulusTension,
		ModulusCompression:          c.ModulusCompression,
	}
}
