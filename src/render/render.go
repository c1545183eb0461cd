// Package render turns grouped estimation records and a chart specification into a chart file
// or an on-screen window.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"slices"
	"time"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/logging"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// Backend is a drawing library able to encode series into one or more formats.
type Backend interface {
	Name() string
	Formats() []string
	Encode(w io.Writer, series []Series, spec types.ChartSpec, format string) error
}

var backends = map[string]Backend{
	"gonum":   gonumBackend{},
	"gochart": goChartBackend{},
}

// BackendFor returns the named backend; "" selects gonum.
func BackendFor(name string) (Backend, error) {
	if name == "" {
		name = "gonum"
	}
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	return b, nil
}

// Displayer shows a rendered chart interactively. It blocks until the window is closed.
type Displayer interface {
	Display(title string, img image.Image) error
}

// Artifact describes what Render produced.
type Artifact struct {
	Path      string
	Format    string
	Backend   string
	Bytes     int
	Series    int
	Points    int
	Displayed bool
}

// Renderer renders charts. Displayer may be nil when only file output is needed.
type Renderer struct {
	Displayer Displayer
}

// New returns a Renderer using d for specs without an output path.
func New(d Displayer) *Renderer { return &Renderer{Displayer: d} }

// Render draws groups according to spec. With spec.Output set the file is created or
// overwritten; otherwise the chart is handed to the Displayer.
func Render(groups []types.Group, spec types.ChartSpec) (*Artifact, error) {
	return New(nil).Render(groups, spec)
}

// Render draws groups according to spec.
func (r *Renderer) Render(groups []types.Group, spec types.ChartSpec) (*Artifact, error) {
	defer logging.TimeTrack(time.Now(), "render")
	if err := spec.Validate(); err != nil {
		return nil, rerrors.NewInvalidSpec("%v", err)
	}
	if err := validateStyle(spec.Style); err != nil {
		return nil, rerrors.NewInvalidSpec("%v", err)
	}
	b, err := BackendFor(spec.Backend)
	if err != nil {
		return nil, rerrors.NewInvalidSpec("%v", err)
	}
	series, err := Points(groups, spec)
	if err != nil {
		return nil, err
	}
	art := &Artifact{Backend: b.Name(), Series: len(series), Points: countPoints(series)}

	if spec.Output == "" {
		if r.Displayer == nil {
			return nil, rerrors.NewRender("", nil, "no output path and no display available")
		}
		img, err := Image(b, series, spec)
		if err != nil {
			return nil, err
		}
		if err := r.Displayer.Display(spec.Title, img); err != nil {
			return nil, rerrors.NewRender("", err, "display")
		}
		art.Displayed = true
		return art, nil
	}

	if spec.FormatConflict() {
		return nil, rerrors.NewRender(spec.Output, nil, "format %q does not match the output extension", spec.Format)
	}
	art.Path, art.Format = spec.Output, spec.OutputFormat()
	if !slices.Contains(b.Formats(), art.Format) {
		return nil, rerrors.NewRender(spec.Output, nil, "format %q not supported by %s backend", art.Format, b.Name())
	}
	data, err := encode(b, series, spec, art.Format)
	if err != nil {
		return nil, rerrors.NewRender(spec.Output, err, "draw %s", art.Format)
	}
	if err := os.WriteFile(spec.Output, data, 0o644); err != nil {
		return nil, rerrors.NewRender(spec.Output, err, "write output")
	}
	art.Bytes = len(data)
	logging.With("backend", b.Name(), "series", art.Series, "points", art.Points).Infof("wrote %s", spec.Output)
	return art, nil
}

// Image renders the chart as an in-memory raster for display.
func Image(b Backend, series []Series, spec types.ChartSpec) (image.Image, error) {
	data, err := encode(b, series, spec, "png")
	if err != nil {
		return nil, rerrors.NewRender("", err, "draw preview")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, rerrors.NewRender("", err, "decode preview")
	}
	return img, nil
}

// encode draws into memory so a failed draw never leaves a partial file behind.
func encode(b Backend, series []Series, spec types.ChartSpec, format string) (data []byte, err error) {
	// gonum panics on some degenerate inputs; surface those as render errors.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s backend: %v", b.Name(), rec)
		}
	}()
	var buf bytes.Buffer
	if err := b.Encode(&buf, series, spec, format); err != nil {
		return nil, err
	}
	data = buf.Bytes()
	if format == "png" && spec.Caption != "" {
		return captionPNG(data, spec.Caption)
	}
	return data, nil
}
