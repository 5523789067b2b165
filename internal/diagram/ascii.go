package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosag/internal/catenary"
	"github.com/alexiusacademia/gosag/internal/vector"
	"github.com/guptarohit/asciigraph"
)

// SagTensionPoint is one row of a sag-tension table
type SagTensionPoint struct {
	Temperature float64 // °F
	Tension     float64 // lb, horizontal
	Sag         float64 // ft
}

// ProfileCurve is a sampled cable curve in the span plane
type ProfileCurve struct {
	Label  string
	Points []vector.Vector2 // relative to the start support (ft)
}

// SampleProfile samples a catenary at evenly spaced arc length fractions,
// segments+1 points from support to support.
func SampleProfile(label string, c catenary.Catenary2D, segments int) ProfileCurve {
	if segments < 1 {
		segments = 1
	}

	points := make([]vector.Vector2, segments+1)
	for i := range points {
		points[i] = c.PositionFraction(float64(i) / float64(segments))
	}
	return ProfileCurve{Label: label, Points: points}
}

// DrawASCIIProfile creates an ASCII elevation of the cable between supports
func DrawASCIIProfile(curve ProfileCurve, sag float64) string {
	var sb strings.Builder

	if len(curve.Points) < 2 {
		return ""
	}

	widthChars := 60
	heightChars := 14

	minX, maxX, minY, maxY := bounds(curve.Points)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}

	cell := func(p vector.Vector2) (row, col int) {
		col = int(math.Round((p.X - minX) / spanX * float64(widthChars)))
		row = int(math.Round((maxY - p.Y) / spanY * float64(heightChars)))
		return row, col
	}

	for _, p := range curve.Points {
		row, col := cell(p)
		grid[row][col] = '·'
	}

	// supports
	first := curve.Points[0]
	last := curve.Points[len(curve.Points)-1]
	row, col := cell(first)
	grid[row][col] = '●'
	row, col = cell(last)
	grid[row][col] = '●'

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CABLE PROFILE  %s\n", curve.Label))
	sb.WriteString("  ─────────────\n\n")
	for _, line := range grid {
		sb.WriteString("  │")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s\n", strings.Repeat("─", widthChars+1)))
	sb.WriteString(fmt.Sprintf("   span = %.1f ft   rise = %.1f ft   sag = %.2f ft\n", last.X-first.X, last.Y-first.Y, sag))

	return sb.String()
}

// TensionChartASCII plots horizontal tension against the table rows
func TensionChartASCII(points []SagTensionPoint, height int) string {
	if len(points) == 0 {
		return ""
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Tension
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption("Horizontal tension (lb)", points)))
}

// SagChartASCII plots sag against the table rows
func SagChartASCII(points []SagTensionPoint, height int) string {
	if len(points) == 0 {
		return ""
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Sag
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption("Sag (ft)", points)))
}

func caption(title string, points []SagTensionPoint) string {
	return fmt.Sprintf("%s, %.0f°F to %.0f°F", title, points[0].Temperature, points[len(points)-1].Temperature)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads by rune count so box borders line up with °, ² etc.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func bounds(points []vector.Vector2) (minX, maxX, minY, maxY float64) {
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}
