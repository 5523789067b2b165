package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosag/internal/weather"
	"github.com/spf13/cobra"
)

var (
	unitLoadCableFile string
	unitLoadCase      string
	unitLoadIce       float64
	unitLoadWind      float64
	unitLoadDensity   float64
	unitLoadAll       bool
)

var unitLoadCmd = &cobra.Command{
	Use:   "unitload",
	Short: "Calculate the weather unit load on a cable",
	Long: `Calculate the transverse (wind) and vertical (weight plus ice) load per
unit length of a cable.

The cable is treated as a cylinder with uniform radial ice and a drag
coefficient of 1.0.

Examples:
  # Drake with 0.5 in ice and 8 psf wind
  gosag unitload --ice 0.5 --wind 8

  # NESC heavy loading
  gosag unitload --case heavy

  # All standard weather cases
  gosag unitload --all`,
	Run: runUnitLoad,
}

func init() {
	rootCmd.AddCommand(unitLoadCmd)

	unitLoadCmd.Flags().StringVarP(&unitLoadCableFile, "cable", "f", "", "Cable definition file, - for stdin (default: built-in Drake ACSR)")
	unitLoadCmd.Flags().StringVar(&unitLoadCase, "case", "", "Standard weather case (heavy, medium, light, ice-1in, bare-hot)")
	unitLoadCmd.Flags().Float64Var(&unitLoadIce, "ice", 0, "Radial ice thickness (in)")
	unitLoadCmd.Flags().Float64Var(&unitLoadWind, "wind", 0, "Wind pressure (psf)")
	unitLoadCmd.Flags().Float64Var(&unitLoadDensity, "ice-density", weather.DensityIceGlaze, "Ice density (lb/ft³)")
	unitLoadCmd.Flags().BoolVarP(&unitLoadAll, "all", "a", false, "Show all standard weather cases")
}

func runUnitLoad(cmd *cobra.Command, args []string) {
	c, err := loadCable(unitLoadCableFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	calc := unitLoadCalculator(c)
	if ok, messages := calc.Validate(true); !ok {
		fmt.Println("Error: invalid cable for unit loads")
		for _, m := range messages {
			fmt.Printf("  - %s\n", m)
		}
		return
	}

	var cases []weather.LoadCase
	switch {
	case unitLoadAll:
		cases = weather.StandardLoadCases
	case unitLoadCase != "":
		lc, ok := weather.FindLoadCase(unitLoadCase)
		if !ok {
			fmt.Printf("Error: unknown weather case %q\n", unitLoadCase)
			return
		}
		cases = []weather.LoadCase{lc}
	default:
		lc := weather.LoadCase{
			ID:           "custom",
			Description:  fmt.Sprintf("%.2f in ice, %.1f psf wind", unitLoadIce, unitLoadWind),
			PressureWind: unitLoadWind,
			ThicknessIce: unitLoadIce / 12,
		}
		if unitLoadIce > 0 {
			lc.DensityIce = unitLoadDensity
		}
		if err := lc.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		cases = []weather.LoadCase{lc}
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                  CABLE UNIT LOADS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", c.Name)
	fmt.Fprintf(w, "  Diameter:\t%.3f in\n", c.Diameter)
	fmt.Fprintf(w, "  Unit Weight:\t%.3f lb/ft\n", c.WeightUnit)
	w.Flush()
	fmt.Println()

	fmt.Println("UNIT LOADS (lb/ft):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tDescription\tTransverse\tVertical\tResultant\n")
	fmt.Fprintf(w, "  ────\t───────────\t──────────\t────────\t─────────\n")
	for _, lc := range cases {
		load := calc.UnitCableLoad(lc)
		fmt.Fprintf(w, "  %s\t%s\t%.3f\t%.3f\t%.3f\n", lc.ID, lc.Description, load.X, load.Y, load.Magnitude())
	}
	w.Flush()
	fmt.Println()
}
