package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// gonumBackend draws with gonum.org/v1/plot. It is the only backend producing vector PDF.
type gonumBackend struct{}

func (gonumBackend) Name() string { return "gonum" }

func (gonumBackend) Formats() []string {
	return []string{"pdf", "svg", "eps", "png", "jpg", "jpeg", "tif", "tiff"}
}

// newCanvas returns a sized canvas able to serialize itself in format.
func newCanvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch format {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.New(w, h)}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func (b gonumBackend) Encode(w io.Writer, series []Series, spec types.ChartSpec, format string) error {
	width, height := figureSize(spec, len(series))
	c, err := newCanvas(format, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch)
	if err != nil {
		return err
	}
	dc := draw.New(c)
	if spec.Panels && len(series) > 0 {
		cols, rows := panelGrid(spec, len(series))
		tiles := draw.Tiles{
			Rows: rows, Cols: cols,
			PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
			PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
			PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
		}
		for i, s := range series {
			p, err := b.plot([]Series{s}, spec, types.Expand(spec.PanelTitle, s.lookup))
			if err != nil {
				return err
			}
			p.Draw(tiles.At(dc, i%cols, i/cols))
		}
	} else {
		p, err := b.plot(series, spec, spec.Title)
		if err != nil {
			return err
		}
		p.Draw(dc)
	}
	_, err = c.WriteTo(w)
	return err
}

func (gonumBackend) plot(series []Series, spec types.ChartSpec, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = spec.X.Label
	p.Y.Label.Text = spec.Y.Label
	p.Legend.Top = true
	if spec.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = namedColors["gray"]
		grid.Horizontal.Color = namedColors["gray"]
		p.Add(grid)
	}
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		labels := make([]string, len(s.Points))
		annotated := false
		for i, pt := range s.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			labels[i] = pt.Label
			annotated = annotated || pt.Label != ""
		}
		col := mustColor(s.Style.Color)
		var thumbs []plot.Thumbnailer
		if spec.Mode == types.ModeLine || spec.Mode == types.ModeLinePoints {
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("line %s: %w", s.Name, err)
			}
			line.Color = col
			line.Width = vg.Points(1.5)
			p.Add(line)
			thumbs = append(thumbs, line)
		}
		if spec.Mode != types.ModeLine {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("scatter %s: %w", s.Name, err)
			}
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Radius = vg.Points(s.Style.Size)
			sc.GlyphStyle.Shape = glyphFor(s.Style.Marker)
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		if annotated {
			l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
			if err != nil {
				return nil, fmt.Errorf("labels %s: %w", s.Name, err)
			}
			l.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(6)}
			p.Add(l)
		}
		if spec.ShowLegend && s.Name != "" {
			p.Legend.Add(s.Name, thumbs...)
		}
	}
	applyScale(&p.X, spec.X.Scale)
	applyScale(&p.Y, spec.Y.Scale)
	return p, nil
}

// applyScale switches an axis to log scale and keeps its range strictly positive and non-degenerate.
func applyScale(a *plot.Axis, scale types.Scale) {
	if scale != types.ScaleLog {
		return
	}
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
	if math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) || a.Min <= 0 {
		a.Min, a.Max = 1, 10
		return
	}
	if a.Min == a.Max {
		a.Min, a.Max = a.Min/2, a.Max*2
	}
}

// glyphFor maps matplotlib marker codes onto gonum glyphs.
func glyphFor(marker string) draw.GlyphDrawer {
	switch marker {
	case "O":
		return draw.RingGlyph{}
	case "s":
		return draw.SquareGlyph{}
	case "D":
		return draw.BoxGlyph{}
	case "^":
		return draw.TriangleGlyph{}
	case "x":
		return draw.CrossGlyph{}
	case "+":
		return draw.PlusGlyph{}
	}
	return draw.CircleGlyph{}
}

// figureSize returns inches; panel figures grow with the number of rows.
func figureSize(spec types.ChartSpec, n int) (float64, float64) {
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = 10
	}
	if h <= 0 {
		h = 6
	}
	if spec.Panels && n > 0 {
		_, rows := panelGrid(spec, n)
		if spec.Height <= 0 {
			h = 5 * float64(rows)
		}
	}
	return w, h
}

// panelGrid returns columns and rows for n panels. Cells past n stay blank.
func panelGrid(spec types.ChartSpec, n int) (int, int) {
	cols := spec.Columns
	if cols <= 0 {
		cols = 2
	}
	return cols, max((n+cols-1)/cols, 1)
}
