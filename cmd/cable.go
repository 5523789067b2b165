package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosag/internal/cable"
	"github.com/spf13/cobra"
)

var (
	cableFile   string
	cableStrict bool

	strainTemperature float64
	strainStretchLoad float64
	strainStretchTemp float64
	strainLoadMax     float64
	strainSteps       int
)

var cableCmd = &cobra.Command{
	Use:   "cable",
	Short: "Check cable definitions and stress-strain curves",
	Long: `Check cable definitions and print their stress-strain behaviour.

Cables are defined in git-config style files. Without --cable the built-in
Drake ACSR definition is used.

Subcommands:
  validate  - Check a cable definition for modeling problems
  strain    - Tabulate strain and component loads against total load

Example cable file:
  [cable]
  name = Drake
  diameter = 1.108
  area = 0.7264
  weight-unit = 1.094
  strength-rated = 31500
  temperature-properties = 70

  [component "shell"]
  thermal-expansion = 0.0000128
  coefficient = -1213
  coefficient = 44308.1
  coefficient = -14004.4
  coefficient = -37618
  coefficient = 30676
  limit = 0.5
  modulus-tension = 64000
  modulus-compression = 1500

  [component "core"]
  ...`,
}

var cableValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a cable definition",
	Long: `Check that a cable definition can be modeled: positive geometry,
finite coefficients, a load-strain polynomial with a zero crossing and a
rising slope up to its limit.

Examples:
  gosag cable validate --cable drake.cfg
  gosag cable validate -f drake.cfg --strict
  cat drake.cfg | gosag cable validate -f -`,
	Run: runCableValidate,
}

var cableStrainCmd = &cobra.Command{
	Use:   "strain",
	Short: "Tabulate the load-strain curve of a cable",
	Long: `Tabulate the strain of a cable and the loads carried by its shell and
core from zero up to a maximum load.

Examples:
  # Virgin Drake at 70°F up to 50% of rated strength
  gosag cable strain --temp 70

  # After a 12000 lb stretch at 0°F
  gosag cable strain --temp 60 --stretch-load 12000 --stretch-temp 0`,
	Run: runCableStrain,
}

func init() {
	rootCmd.AddCommand(cableCmd)
	cableCmd.AddCommand(cableValidateCmd)
	cableCmd.AddCommand(cableStrainCmd)

	cableCmd.PersistentFlags().StringVarP(&cableFile, "cable", "f", "", "Cable definition file, - for stdin (default: built-in Drake ACSR)")

	cableValidateCmd.Flags().BoolVar(&cableStrict, "strict", false, "Use strict validation ranges")

	cableStrainCmd.Flags().Float64Var(&strainTemperature, "temp", 70, "Cable temperature (°F)")
	cableStrainCmd.Flags().Float64Var(&strainStretchLoad, "stretch-load", 0, "Stretch load locked into the cable (lb)")
	cableStrainCmd.Flags().Float64Var(&strainStretchTemp, "stretch-temp", 0, "Temperature of the stretch load (°F)")
	cableStrainCmd.Flags().Float64Var(&strainLoadMax, "load-max", 0, "Largest tabulated load (lb) (default: 50% of rated strength)")
	cableStrainCmd.Flags().IntVar(&strainSteps, "steps", 10, "Number of load steps")
}

func runCableValidate(cmd *cobra.Command, args []string) {
	c, err := loadCable(cableFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ok, messages := c.Validate(cableStrict)

	fmt.Println()
	fmt.Printf("  Cable: %s\n", c.Name)
	if ok {
		fmt.Println("  ✓ Valid")
		fmt.Println()
		return
	}

	fmt.Printf("  ⚠ %d problem(s):\n", len(messages))
	for _, m := range messages {
		fmt.Printf("    - %s\n", m)
	}
	fmt.Println()
}

func runCableStrain(cmd *cobra.Command, args []string) {
	c, err := loadCable(cableFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	state := cable.State{
		Temperature:        strainTemperature,
		LoadStretch:        strainStretchLoad,
		TemperatureStretch: strainStretchTemp,
	}
	model, err := cable.NewModel(c, state)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loadMax := strainLoadMax
	if loadMax <= 0 {
		loadMax = 0.5 * c.StrengthRated
	}
	if loadMax <= 0 {
		fmt.Println("Error: Please provide --load-max for a cable without a rated strength.")
		return
	}
	steps := strainSteps
	if steps < 1 {
		steps = 1
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                  CABLE LOAD-STRAIN CURVE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cable:\t%s\n", c.Name)
	fmt.Fprintf(w, "  Area:\t%.4f in²\n", c.AreaPhysical)
	fmt.Fprintf(w, "  Temperature:\t%.1f°F\n", state.Temperature)
	if model.IsStretched() {
		fmt.Fprintf(w, "  Stretch:\t%.0f lb at %.1f°F\n", state.LoadStretch, state.TemperatureStretch)
	} else {
		fmt.Fprintf(w, "  Stretch:\tnone\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Load (lb)\tStress (psi)\tStrain (%%)\tShell (lb)\tCore (lb)\t\n")
	fmt.Fprintf(w, "  ─────────\t────────────\t──────────\t──────────\t─────────\t\n")
	for i := 0; i <= steps; i++ {
		load := loadMax * float64(i) / float64(steps)
		strain, err := model.Strain(load, state.Temperature)
		if err != nil {
			fmt.Fprintf(w, "  %.0f\t-\t-\t-\t-\t\n", load)
			continue
		}
		shell, core := model.LoadComponents(strain, state.Temperature)
		fmt.Fprintf(w, "  %.0f\t%.0f\t%.4f\t%.0f\t%.0f\t\n", load, model.Stress(strain, state.Temperature), strain*100, shell, core)
	}
	w.Flush()
	fmt.Println()
}
