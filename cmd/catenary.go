package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosag/internal/catenary"
	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/vector"
	"github.com/spf13/cobra"
)

var (
	catenarySpan    float64
	catenaryRise    float64
	catenaryTension float64
	catenaryWeightY float64
	catenaryWeightZ float64

	catenaryShowDiagram bool
	catenaryExportFile  string
)

var catenaryCmd = &cobra.Command{
	Use:   "catenary",
	Short: "Report the geometry of a catenary",
	Long: `Calculate the length, sag and tensions of a catenary from its end
support spacing, horizontal tension and unit weight. No cable elongation is
involved.

A transverse unit weight (wind) swings the catenary out of the vertical
plane; the report is given in the swung plane.

Examples:
  # 1200 ft level span, 6000 lb, bare Drake
  gosag catenary --span 1200 --tension 6000 --weight-z 1.094

  # Inclined span with ice and wind, ASCII profile
  gosag catenary -s 800 --rise 120 -t 7500 --weight-y 1.405 --weight-z 2.099 --diagram`,
	Run: runCatenary,
}

func init() {
	rootCmd.AddCommand(catenaryCmd)

	catenaryCmd.Flags().Float64VarP(&catenarySpan, "span", "s", 0, "Horizontal span length (ft) [required]")
	catenaryCmd.Flags().Float64Var(&catenaryRise, "rise", 0, "Elevation of the end support above the start (ft)")
	catenaryCmd.Flags().Float64VarP(&catenaryTension, "tension", "t", 0, "Horizontal tension (lb) [required]")
	catenaryCmd.Flags().Float64Var(&catenaryWeightY, "weight-y", 0, "Transverse unit weight (lb/ft)")
	catenaryCmd.Flags().Float64Var(&catenaryWeightZ, "weight-z", 1.094, "Vertical unit weight (lb/ft)")

	catenaryCmd.Flags().BoolVar(&catenaryShowDiagram, "diagram", false, "Show ASCII profile")
	catenaryCmd.Flags().StringVarP(&catenaryExportFile, "output", "o", "", "Export profile to file (png, svg, pdf)")

	catenaryCmd.MarkFlagRequired("span")
	catenaryCmd.MarkFlagRequired("tension")
}

func runCatenary(cmd *cobra.Command, args []string) {
	c := catenary.Catenary3D{
		SpacingEndpoints:  vector.NewVector3(catenarySpan, 0, catenaryRise),
		TensionHorizontal: catenaryTension,
		WeightUnit:        vector.NewVector3(0, catenaryWeightY, catenaryWeightZ),
	}

	plane, err := c.Plane()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                  CATENARY GEOMETRY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Support Spacing:\t(%.1f, %.1f, %.1f) ft\n", c.SpacingEndpoints.X, c.SpacingEndpoints.Y, c.SpacingEndpoints.Z)
	fmt.Fprintf(w, "  Horizontal Tension:\t%.1f lb\n", c.TensionHorizontal)
	fmt.Fprintf(w, "  Unit Weight:\t(%.3f, %.3f) lb/ft\n", c.WeightUnit.Y, c.WeightUnit.Z)
	w.Flush()
	fmt.Println()

	fmt.Println("SWUNG PLANE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal Span:\t%.3f ft\n", plane.SpanHorizontal)
	fmt.Fprintf(w, "  Vertical Span:\t%.3f ft\n", plane.SpanVertical)
	fmt.Fprintf(w, "  Resultant Unit Weight:\t%.3f lb/ft\n", plane.WeightUnit)
	fmt.Fprintf(w, "  Catenary Constant (H/w):\t%.2f ft\n", plane.Constant())
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Curve Length:\t%.3f ft\n", plane.Length())
	fmt.Fprintf(w, "  Sag:\t%.3f ft\n", plane.Sag())
	fmt.Fprintf(w, "  Average Tension:\t%.1f lb\n", plane.TensionAverage(100))
	fmt.Fprintf(w, "  Support Tension:\t%.1f lb\n", plane.TensionMax())
	w.Flush()
	fmt.Println()

	curve := diagram.SampleProfile(fmt.Sprintf("H = %.0f lb", c.TensionHorizontal), plane, 60)
	if catenaryShowDiagram {
		fmt.Println(diagram.DrawASCIIProfile(curve, plane.Sag()))
	}

	if catenaryExportFile != "" {
		filename, err := diagram.ExportProfile([]diagram.ProfileCurve{curve}, catenaryExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", filename)
		}
	}
}
