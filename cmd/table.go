package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/logging"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/spf13/cobra"
)

var (
	tableOpts         spanOptions
	tableTemperatures []float64
	tableTempMin      float64
	tableTempMax      float64
	tableTempStep     float64
	tableWorkers      int

	tableShowChart  bool
	tableExportFile string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build a sag-tension table over a temperature range",
	Long: `Reload a catenary cable to a series of temperatures and tabulate the
horizontal tension, support tension and sag at each one.

Temperatures are given as a list with --temps, or as a range with
--temp-min, --temp-max and --temp-step. Weather and stretch flags apply to
every row. Reloads run in parallel.

Examples:
  # Bare Drake stringing table
  gosag table --span 1200 --tension 6000 --temps 0,30,60,90,120,167,212

  # Range with ASCII charts
  gosag table -s 1200 -t 6000 --temp-min -20 --temp-max 212 --temp-step 20 --chart

  # Final (stretched) table after NESC heavy loading, exported
  gosag table -s 1200 -t 6000 --stretch-case heavy --temps 0,60,120,212 -o table.png`,
	Run: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableOpts.addSpanFlags(tableCmd)
	tableOpts.addWeatherFlags(tableCmd)

	tableCmd.Flags().Float64SliceVar(&tableTemperatures, "temps", []float64{0, 30, 60, 90, 120, 167, 212}, "Temperatures to tabulate (°F)")
	tableCmd.Flags().Float64Var(&tableTempMin, "temp-min", 0, "First temperature of a range (°F)")
	tableCmd.Flags().Float64Var(&tableTempMax, "temp-max", 0, "Last temperature of a range (°F)")
	tableCmd.Flags().Float64Var(&tableTempStep, "temp-step", 10, "Temperature step of a range (°F)")
	tableCmd.Flags().IntVar(&tableWorkers, "workers", 0, "Parallel reloads (default: one per CPU)")

	tableCmd.Flags().BoolVar(&tableShowChart, "chart", false, "Show ASCII tension and sag charts")
	tableCmd.Flags().StringVarP(&tableExportFile, "output", "o", "", "Export charts to file (png, svg, pdf)")
}

// temperatureRange returns first, first+step, ... up to and including last
func temperatureRange(first, last, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("temperature step must be positive: %g", step)
	}
	if last < first {
		return nil, fmt.Errorf("temperature range is empty: %g to %g", first, last)
	}

	var temperatures []float64
	for i := 0; ; i++ {
		t := first + float64(i)*step
		if t > last+step*1e-9 {
			break
		}
		temperatures = append(temperatures, t)
	}
	return temperatures, nil
}

func runTable(cmd *cobra.Command, args []string) {
	temperatures := tableTemperatures
	if cmd.Flags().Changed("temp-min") || cmd.Flags().Changed("temp-max") {
		var err error
		temperatures, err = temperatureRange(tableTempMin, tableTempMax, tableTempStep)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	base, lc, err := tableOpts.reloader(cmd, tableOpts.temperature)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if ok, messages := base.Validate(false); !ok {
		fmt.Println("Error: invalid reload input")
		for _, m := range messages {
			fmt.Printf("  - %s\n", m)
		}
		return
	}

	logger.Info(cmd.Context(), "building sag-tension table",
		logging.Int("rows", len(temperatures)), logging.Int("workers", tableWorkers))
	results := sagtension.ReloadAll(cmd.Context(), sagtension.TemperatureSweep(base, temperatures), tableWorkers)

	cc := base.CatenaryCable

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                  SAG-TENSION TABLE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cable:\t%s\n", cc.Cable.Name)
	fmt.Fprintf(w, "  Horizontal Span:\t%.1f ft\n", cc.SpacingEndpoints.X)
	fmt.Fprintf(w, "  Rise:\t%.1f ft\n", cc.SpacingEndpoints.Z)
	fmt.Fprintf(w, "  Known Condition:\t%.0f lb at %.1f°F\n", cc.TensionHorizontal, cc.State.Temperature)
	fmt.Fprintf(w, "  Weather:\t%s\n", lc.Description)
	fmt.Fprintf(w, "  Unit Weight:\t(%.3f, %.3f) lb/ft\n", base.WeightUnitReloaded.Y, base.WeightUnitReloaded.Z)
	if base.StateReloaded.LoadStretch > 0 {
		fmt.Fprintf(w, "  Stretch:\t%.0f lb at %.1f°F\n", base.StateReloaded.LoadStretch, base.StateReloaded.TemperatureStretch)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Temp (°F)\tH (lb)\tTmax (lb)\t%%RTS\tSag (ft)\tIter\t\n")
	fmt.Fprintf(w, "  ─────────\t──────\t─────────\t────\t────────\t────\t\n")

	var points []diagram.SagTensionPoint
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "  %.1f\t-\t-\t-\t-\t-\t\n", temperatures[i])
			logger.Warn(cmd.Context(), "reload failed",
				logging.Float("temperature", temperatures[i]), logging.Err(r.Err))
			failed++
			continue
		}

		s, err := summarize(r.Result.CatenaryCable)
		if err != nil {
			fmt.Fprintf(w, "  %.1f\t-\t-\t-\t-\t-\t\n", temperatures[i])
			failed++
			continue
		}

		rts := 0.0
		if strength := cc.Cable.StrengthRated; strength > 0 {
			rts = s.tensionMax / strength * 100
		}
		h := r.Result.CatenaryCable.TensionHorizontal
		fmt.Fprintf(w, "  %.1f\t%.0f\t%.0f\t%.1f\t%.2f\t%d\t\n", temperatures[i], h, s.tensionMax, rts, s.sag, r.Result.Iterations)
		points = append(points, diagram.SagTensionPoint{Temperature: temperatures[i], Tension: h, Sag: s.sag})
	}
	w.Flush()
	fmt.Println()

	if failed > 0 {
		fmt.Printf("  ⚠ %d of %d reloads failed (see log output for details)\n\n", failed, len(results))
	}

	if tableShowChart && len(points) > 1 {
		fmt.Println(diagram.TensionChartASCII(points, 10))
		fmt.Println()
		fmt.Println(diagram.SagChartASCII(points, 10))
		fmt.Println()
	}

	if tableExportFile != "" {
		filename, err := diagram.ExportTensionChart(points, tableExportFile)
		if err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", filename)
		}
	}
}
