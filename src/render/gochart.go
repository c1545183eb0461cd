package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// pixelsPerInch converts figure inches into go-chart pixels.
const pixelsPerInch = 100

// goChartBackend draws raster/SVG previews with go-chart. Log axes are drawn in log10 space
// with decade ticks labelled in data units.
type goChartBackend struct{}

func (goChartBackend) Name() string { return "gochart" }

func (goChartBackend) Formats() []string { return []string{"png", "svg"} }

func (b goChartBackend) Encode(w io.Writer, series []Series, spec types.ChartSpec, format string) error {
	provider := chart.PNG
	switch format {
	case "png":
	case "svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	width, height := figureSize(spec, len(series))
	wpx, hpx := int(width*pixelsPerInch), int(height*pixelsPerInch)
	if !spec.Panels || len(series) == 0 {
		ch := b.chart(series, spec, spec.Title, wpx, hpx)
		return ch.Render(provider, w)
	}
	if format != "png" {
		return fmt.Errorf("gochart panels are only available as png")
	}
	cols, rows := panelGrid(spec, len(series))
	cw, chh := wpx/cols, hpx/rows
	canvas := blank(cw*cols, chh*rows)
	for i, s := range series {
		ch := b.chart([]Series{s}, spec, types.Expand(spec.PanelTitle, s.lookup), cw, chh)
		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("panel %d decode: %w", i, err)
		}
		at := image.Pt((i%cols)*cw, (i/cols)*chh)
		draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(img.Bounds().Size())}, img, img.Bounds().Min, draw.Src)
	}
	return png.Encode(w, canvas)
}

func (goChartBackend) chart(series []Series, spec types.ChartSpec, title string, w, h int) chart.Chart {
	tx := axisTransform(spec.X.Scale)
	ty := axisTransform(spec.Y.Scale)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	var out []chart.Series
	var notes []chart.Value2
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = tx(p.X), ty(p.Y)
			minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
			minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
			if p.Label != "" {
				notes = append(notes, chart.Value2{XValue: xs[i], YValue: ys[i], Label: p.Label})
			}
		}
		// go-chart needs at least two values per continuous series.
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		out = append(out, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: seriesStyle(s.Style, spec.Mode)})
	}
	if len(out) == 0 {
		minX, maxX, minY, maxY = 0, 1, 0, 1
		// transparent placeholder keeps the renderer happy on an empty chart
		out = append(out, chart.ContinuousSeries{XValues: []float64{0, 1}, YValues: []float64{0, 1}, Style: chart.Style{StrokeColor: chart.ColorTransparent, StrokeWidth: chart.Disabled, DotWidth: chart.Disabled}})
	}
	if len(notes) > 0 {
		out = append(out, chart.AnnotationSeries{Annotations: notes})
	}
	xRange, xTicks := axisRangeAndTicks(minX, maxX, spec.X.Scale)
	yRange, yTicks := axisRangeAndTicks(minY, maxY, spec.Y.Scale)
	ch := chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.X.Label, Range: xRange, Ticks: xTicks, GridMajorStyle: gridStyle(spec.Grid), GridMinorStyle: gridStyle(spec.Grid)},
		YAxis:      chart.YAxis{Name: spec.Y.Label, Range: yRange, Ticks: yTicks, GridMajorStyle: gridStyle(spec.Grid), GridMinorStyle: gridStyle(spec.Grid)},
		Series:     out,
	}
	if spec.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color, size float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    size + 1,
		DotColor:    col,
	}
}

func seriesStyle(st types.SeriesStyle, mode types.Mode) chart.Style {
	c := mustColor(st.Color)
	col := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	switch mode {
	case types.ModeLine:
		return chart.Style{StrokeColor: col, StrokeWidth: 1.5}
	case types.ModeLinePoints:
		s := pointStyle(col, st.Size)
		s.StrokeColor = col
		s.StrokeWidth = 1.5
		return s
	}
	return pointStyle(col, st.Size)
}

func gridStyle(on bool) chart.Style {
	if !on {
		return chart.Style{Hidden: true}
	}
	return chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 0.5}
}

func axisTransform(scale types.Scale) func(float64) float64 {
	if scale == types.ScaleLog {
		return math.Log10
	}
	return func(v float64) float64 { return v }
}

// axisRangeAndTicks builds an explicit range (never zero width) and ticks. For log axes the
// bounds are log10 values and ticks sit on whole decades.
func axisRangeAndTicks(min, max float64, scale types.Scale) (*chart.ContinuousRange, []chart.Tick) {
	if scale == types.ScaleLog {
		lo, hi := math.Floor(min), math.Ceil(max)
		if hi <= lo {
			hi = lo + 1
		}
		ticks := make([]chart.Tick, 0, int(hi-lo)+1)
		for e := lo; e <= hi; e++ {
			ticks = append(ticks, chart.Tick{Value: e, Label: formatTick(math.Pow(10, e))})
		}
		return &chart.ContinuousRange{Min: lo, Max: hi}, ticks
	}
	lo, hi := niceAxisBounds(min, max)
	return &chart.ContinuousRange{Min: lo, Max: hi}, niceTicks(lo, hi, 6)
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	// round to nearest "nice" increments based on span order of magnitude
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(math.Ceil(span/step), 2)
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e6 || av < 1e-3:
		return fmt.Sprintf("%.0e", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// blank returns a white canvas used behind panel grids.
func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
