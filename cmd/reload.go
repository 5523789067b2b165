package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/spf13/cobra"
)

var (
	reloadOpts        spanOptions
	reloadTemperature float64

	reloadShowDiagram bool
	reloadExportFile  string
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload a catenary cable to a new temperature and weather",
	Long: `Find the horizontal tension of a cable after its temperature, weather
load or permanent stretch changes.

The known condition is a bare cable at --temp with horizontal tension
--tension. The unloaded, unstretched length of the cable is conserved
while the catenary is solved at the new condition.

Examples:
  # Drake, 1200 ft level span, 6000 lb at 60°F, reloaded to 0°F
  gosag reload --span 1200 --tension 6000 --temp 60 --temp-new 0

  # 1 in radial ice and 8 psf wind at 0°F
  gosag reload -s 1200 -t 6000 --temp-new 0 --ice 1 --wind 8

  # NESC heavy loading
  gosag reload -s 1200 -t 6000 --case heavy

  # Bare cable at 60°F after being stretched by the NESC heavy load
  gosag reload -s 1200 -t 6000 --temp-new 60 --stretch-case heavy

  # Custom cable file with ASCII profile and image export
  gosag reload -f drake.cfg -s 1200 -t 6000 --temp-new 212 --diagram -o profile.png`,
	Run: runReload,
}

func init() {
	rootCmd.AddCommand(reloadCmd)

	reloadOpts.addSpanFlags(reloadCmd)
	reloadOpts.addWeatherFlags(reloadCmd)
	reloadCmd.Flags().Float64Var(&reloadTemperature, "temp-new", 60, "Cable temperature of the reloaded condition (°F)")

	reloadCmd.Flags().BoolVar(&reloadShowDiagram, "diagram", false, "Show ASCII cable profiles")
	reloadCmd.Flags().StringVarP(&reloadExportFile, "output", "o", "", "Export profiles to file (png, svg, pdf)")
}

func runReload(cmd *cobra.Command, args []string) {
	r, lc, err := reloadOpts.reloader(cmd, reloadTemperature)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if ok, messages := r.Validate(false); !ok {
		fmt.Println("Error: invalid reload input")
		for _, m := range messages {
			fmt.Printf("  - %s\n", m)
		}
		return
	}

	l0, err := r.LengthUnloadedUnstretched()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := r.Reload()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		var ce *sagtension.ConvergenceError
		if errors.As(err, &ce) {
			fmt.Printf("  Iterations: %d, residual: %.3e ft, bracket: [%.2f, %.2f] lb\n",
				ce.Iterations, ce.Residual, ce.TensionLower, ce.TensionUpper)
		}
		return
	}

	original := r.CatenaryCable
	reloaded := result.CatenaryCable

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              CATENARY CABLE RELOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cable:\t%s\n", original.Cable.Name)
	fmt.Fprintf(w, "  Horizontal Span:\t%.1f ft\n", original.SpacingEndpoints.X)
	fmt.Fprintf(w, "  Rise:\t%.1f ft\n", original.SpacingEndpoints.Z)
	fmt.Fprintf(w, "  Weather:\t%s\n", lc.Description)
	fmt.Fprintf(w, "  Unloaded-Unstretched Length:\t%.3f ft\n", l0)
	w.Flush()
	fmt.Println()

	fmt.Println("CONDITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tKnown\tReloaded\n")
	fmt.Fprintf(w, "  \t─────\t────────\n")
	fmt.Fprintf(w, "  Temperature (°F):\t%.1f\t%.1f\n", original.State.Temperature, reloaded.State.Temperature)
	fmt.Fprintf(w, "  Stretch Load (lb):\t%.0f\t%.0f\n", original.State.LoadStretch, reloaded.State.LoadStretch)
	fmt.Fprintf(w, "  Stretch Temperature (°F):\t%.1f\t%.1f\n", original.State.TemperatureStretch, reloaded.State.TemperatureStretch)
	fmt.Fprintf(w, "  Unit Weight Y (lb/ft):\t%.3f\t%.3f\n", original.WeightUnit.Y, reloaded.WeightUnit.Y)
	fmt.Fprintf(w, "  Unit Weight Z (lb/ft):\t%.3f\t%.3f\n", original.WeightUnit.Z, reloaded.WeightUnit.Z)
	fmt.Fprintf(w, "  Unit Weight Resultant (lb/ft):\t%.3f\t%.3f\n", original.WeightUnit.Magnitude(), reloaded.WeightUnit.Magnitude())
	w.Flush()
	fmt.Println()

	before, err := summarize(original)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	after, err := summarize(reloaded)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("CATENARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tKnown\tReloaded\n")
	fmt.Fprintf(w, "  \t─────\t────────\n")
	fmt.Fprintf(w, "  Horizontal Tension (lb):\t%.1f\t%.1f\n", original.TensionHorizontal, reloaded.TensionHorizontal)
	fmt.Fprintf(w, "  Average Tension (lb):\t%.1f\t%.1f\n", before.tensionAverage, after.tensionAverage)
	fmt.Fprintf(w, "  Support Tension (lb):\t%.1f\t%.1f\n", before.tensionMax, after.tensionMax)
	fmt.Fprintf(w, "  Sag (ft):\t%.2f\t%.2f\n", before.sag, after.sag)
	fmt.Fprintf(w, "  Length (ft):\t%.3f\t%.3f\n", before.length, after.length)
	fmt.Fprintf(w, "  Strain (%%):\t%.4f\t%.4f\n", before.strain*100, after.strain*100)
	w.Flush()
	fmt.Println()

	fmt.Println("SOLVER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Iterations:\t%d\n", result.Iterations)
	fmt.Fprintf(w, "  Length Residual:\t%.3e ft\n", result.Residual)
	fmt.Fprintf(w, "  Tension Bracket:\t[%.4f, %.4f] lb\n", result.TensionLower, result.TensionUpper)
	w.Flush()
	fmt.Println()

	if strength := original.Cable.StrengthRated; strength > 0 {
		ratio := after.tensionMax / strength * 100
		status := "✓"
		if ratio > 60 {
			status = "⚠ (> 60% RTS)"
		}
		fmt.Printf("  Support tension = %.1f%% of rated strength %s\n\n", ratio, status)
	}

	fmt.Print(diagram.DrawSummaryBox("RELOADED HORIZONTAL TENSION", []string{
		fmt.Sprintf("H = %.0f lb at %.1f°F", reloaded.TensionHorizontal, reloaded.State.Temperature),
		fmt.Sprintf("Sag = %.2f ft", after.sag),
	}))
	fmt.Println()

	if !reloadShowDiagram && reloadExportFile == "" {
		return
	}

	curves, err := profileCurves(original, reloaded)
	if err != nil {
		fmt.Printf("Error drawing profile: %v\n", err)
		return
	}

	if reloadShowDiagram {
		fmt.Println(diagram.DrawASCIIProfile(curves[0], before.sag))
		fmt.Println(diagram.DrawASCIIProfile(curves[1], after.sag))
	}

	if reloadExportFile != "" {
		filename, err := diagram.ExportProfile(curves, reloadExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", filename)
		}
	}
}

// catenarySummary holds the derived values printed for a catenary cable
type catenarySummary struct {
	length         float64
	sag            float64
	tensionAverage float64
	tensionMax     float64
	strain         float64
}

func summarize(cc sagtension.CatenaryCable) (catenarySummary, error) {
	var s catenarySummary
	var err error

	if s.length, err = cc.Length(); err != nil {
		return s, err
	}
	if s.sag, err = cc.Sag(); err != nil {
		return s, err
	}
	if s.tensionAverage, err = cc.TensionAverage(sagtension.DefaultPointsAverage); err != nil {
		return s, err
	}
	if s.tensionMax, err = cc.TensionMax(); err != nil {
		return s, err
	}
	if s.strain, err = cc.Strain(); err != nil {
		return s, err
	}
	return s, nil
}

// profileCurves samples the span-plane curves of the given cables
func profileCurves(cables ...sagtension.CatenaryCable) ([]diagram.ProfileCurve, error) {
	curves := make([]diagram.ProfileCurve, 0, len(cables))
	for _, cc := range cables {
		plane, err := cc.Catenary().Plane()
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%.0f°F, H = %.0f lb", cc.State.Temperature, cc.TensionHorizontal)
		curves = append(curves, diagram.SampleProfile(label, plane, 60))
	}
	return curves, nil
}
