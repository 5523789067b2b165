package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosag/internal/vector"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("diagram: no data to plot")

var curveColors = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 220, G: 20, B: 60, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// ExportTensionChart exports tension and sag against temperature to an
// image file. Supported extensions are .png, .svg and .pdf; anything else
// gets .png appended.
func ExportTensionChart(points []SagTensionPoint, filename string) (string, error) {
	if len(points) == 0 {
		return "", ErrNoData
	}

	tension := make(plotter.XYs, len(points))
	sag := make(plotter.XYs, len(points))
	for i, pt := range points {
		tension[i] = plotter.XY{X: pt.Temperature, Y: pt.Tension}
		sag[i] = plotter.XY{X: pt.Temperature, Y: pt.Sag}
	}

	pt := plot.New()
	pt.Title.Text = "Horizontal Tension"
	pt.X.Label.Text = "Temperature (°F)"
	pt.Y.Label.Text = "Tension (lb)"
	if err := addSeries(pt, "", tension, curveColors[0]); err != nil {
		return "", err
	}

	ps := plot.New()
	ps.Title.Text = "Sag"
	ps.X.Label.Text = "Temperature (°F)"
	ps.Y.Label.Text = "Sag (ft)"
	if err := addSeries(ps, "", sag, curveColors[1]); err != nil {
		return "", err
	}

	return saveStacked([]*plot.Plot{pt, ps}, 8*vg.Inch, 8*vg.Inch, filename)
}

// ExportProfile exports one or more cable profiles to an image file
func ExportProfile(curves []ProfileCurve, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Cable Profile"
	p.X.Label.Text = "Horizontal distance (ft)"
	p.Y.Label.Text = "Elevation (ft)"
	p.Legend.Top = true

	var first []vector.Vector2
	for i, curve := range curves {
		if len(curve.Points) < 2 {
			continue
		}

		xys := make(plotter.XYs, len(curve.Points))
		for j, pt := range curve.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		if i > 0 {
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(line)
		if curve.Label != "" {
			p.Legend.Add(curve.Label, line)
		}
		if first == nil {
			first = curve.Points
		}
	}
	if first == nil {
		return "", ErrNoData
	}

	// supports of the first curve
	supports, err := plotter.NewScatter(plotter.XYs{
		{X: first[0].X, Y: first[0].Y},
		{X: first[len(first)-1].X, Y: first[len(first)-1].Y},
	})
	if err != nil {
		return "", err
	}
	supports.GlyphStyle.Color = color.Black
	supports.GlyphStyle.Radius = vg.Points(5)
	supports.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(supports)

	return save(p, 10*vg.Inch, 5*vg.Inch, filename)
}

func addSeries(p *plot.Plot, label string, xys plotter.XYs, c color.Color) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	points.GlyphStyle.Color = c
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Add(plotter.NewGrid())
	if label != "" {
		p.Legend.Add(label, line, points)
	}
	return nil
}

// outputPath resolves the file name by extension and creates its directory
func outputPath(filename string) (string, error) {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	return filename, nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	filename, err := outputPath(filename)
	if err != nil {
		return "", err
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// saveStacked draws the plots one above the other on a single canvas
func saveStacked(plots []*plot.Plot, width, height vg.Length, filename string) (string, error) {
	filename, err := outputPath(filename)
	if err != nil {
		return "", err
	}

	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}

	canvas, err := draw.NewFormattedCanvas(width, height, strings.TrimPrefix(filepath.Ext(filename), "."))
	if err != nil {
		return "", err
	}

	dc := draw.New(canvas)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadY: vg.Points(10)}
	canvases := plot.Align(rows, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filename, nil
}
