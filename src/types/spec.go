package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LayoutKind selects the field-extraction adapter used to read a document.
type LayoutKind string

const (
	// LayoutRecords reads {"<key>": [record, ...]}.
	LayoutRecords LayoutKind = "records"
	// LayoutNested reads {"<key>": [{tags..., "<child>": [record, ...]}, ...]}.
	LayoutNested LayoutKind = "nested"
	// LayoutColumns reads {"physical_qubits": x|[x...], "runtime_seconds": y|[y...]}.
	LayoutColumns LayoutKind = "columns"
)

// Layout describes where records live inside a JSON document.
type Layout struct {
	Kind     LayoutKind `yaml:"kind"`
	Key      string     `yaml:"key,omitempty"`
	Child    string     `yaml:"child,omitempty"`
	Required []string   `yaml:"required,omitempty"`
}

// Validate checks the layout is complete for its kind.
func (l Layout) Validate() error {
	switch l.Kind {
	case LayoutRecords:
		if l.Key == "" {
			return fmt.Errorf("records layout needs a key")
		}
	case LayoutNested:
		if l.Key == "" || l.Child == "" {
			return fmt.Errorf("nested layout needs key and child")
		}
	case LayoutColumns:
	default:
		return fmt.Errorf("unknown layout kind %q", l.Kind)
	}
	return nil
}

// Scale is an axis scaling.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// Mode is how each group's points are drawn.
type Mode string

const (
	ModeScatter    Mode = "scatter"
	ModeLine       Mode = "line"
	ModeLinePoints Mode = "linepoints"
)

// Axis declares which field an axis plots and how.
type Axis struct {
	Field string `yaml:"field"`
	Label string `yaml:"label,omitempty"`
	Scale Scale  `yaml:"scale,omitempty"`
}

// Style maps group values to markers and colors. Values absent from a map use the defaults.
type Style struct {
	MarkerField   string            `yaml:"marker_field,omitempty"`
	Markers       map[string]string `yaml:"markers,omitempty"`
	ColorField    string            `yaml:"color_field,omitempty"`
	Colors        map[string]string `yaml:"colors,omitempty"`
	DefaultMarker string            `yaml:"default_marker,omitempty"`
	DefaultColor  string            `yaml:"default_color,omitempty"`
	Palette       []string          `yaml:"palette,omitempty"`
	PointSize     float64           `yaml:"point_size,omitempty"`
}

// SeriesStyle is the resolved style of one group.
type SeriesStyle struct {
	Marker string
	Color  string
	Size   float64
}

// Resolve returns the marker and color for the i-th group. A value missing from Colors takes
// Palette[i] when a palette is set, otherwise DefaultColor.
func (s Style) Resolve(g Group, i int) SeriesStyle {
	out := SeriesStyle{Marker: s.DefaultMarker, Color: s.DefaultColor, Size: s.PointSize}
	if out.Marker == "" {
		out.Marker = "o"
	}
	if out.Color == "" {
		out.Color = "black"
	}
	if out.Size <= 0 {
		out.Size = 3
	}
	if s.MarkerField != "" {
		if v, ok := g.Value(s.MarkerField); ok {
			if m, ok := s.Markers[string(v)]; ok {
				out.Marker = m
			}
		}
	}
	mapped := false
	if s.ColorField != "" {
		if v, ok := g.Value(s.ColorField); ok {
			if c, ok := s.Colors[string(v)]; ok {
				out.Color = c
				mapped = true
			}
		}
	}
	if !mapped && len(s.Palette) > 0 {
		out.Color = s.Palette[i%len(s.Palette)]
	}
	return out
}

// ChartSpec declares everything the renderer needs besides the data.
type ChartSpec struct {
	Title      string   `yaml:"title,omitempty"`
	X          Axis     `yaml:"x"`
	Y          Axis     `yaml:"y"`
	GroupBy    []string `yaml:"group_by,omitempty"`
	Mode       Mode     `yaml:"mode,omitempty"`
	Annotate   string   `yaml:"annotate,omitempty"`
	Legend     string   `yaml:"legend,omitempty"`
	ShowLegend bool     `yaml:"show_legend,omitempty"`
	Grid       bool     `yaml:"grid,omitempty"`
	Panels     bool     `yaml:"panels,omitempty"`
	Columns    int      `yaml:"columns,omitempty"`
	PanelTitle string   `yaml:"panel_title,omitempty"`
	Style      Style    `yaml:"style,omitempty"`
	Width      float64  `yaml:"width,omitempty"`
	Height     float64  `yaml:"height,omitempty"`
	Caption    string   `yaml:"caption,omitempty"`
	Backend    string   `yaml:"backend,omitempty"`
	Format     string   `yaml:"format,omitempty"`
	Output     string   `yaml:"output,omitempty"`
}

// DefaultChartSpec plots runtime against physical qubits as a scatter chart.
func DefaultChartSpec() ChartSpec {
	return ChartSpec{
		Title: "Runtime vs Physical Qubits",
		X:     Axis{Field: FieldPhysicalQubits, Label: "Physical Qubits", Scale: ScaleLinear},
		Y:     Axis{Field: FieldRuntimeSeconds, Label: "Runtime (s)", Scale: ScaleLinear},
		Mode:  ModeScatter,
		Width: 10, Height: 6,
	}
}

// Validate rejects specs the renderer cannot honour.
func (c ChartSpec) Validate() error {
	for _, a := range []Axis{c.X, c.Y} {
		if a.Field == "" {
			return fmt.Errorf("axis field is required")
		}
		switch a.Scale {
		case "", ScaleLinear, ScaleLog:
		default:
			return fmt.Errorf("unknown scale %q on axis %s", a.Scale, a.Field)
		}
	}
	switch c.Mode {
	case "", ModeScatter, ModeLine, ModeLinePoints:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Columns < 0 || c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("columns and figure size must not be negative")
	}
	return nil
}

// OutputFormat returns the format implied by the output extension, or Format when the output
// has no extension.
func (c ChartSpec) OutputFormat() string {
	if ext := outputExt(c.Output); ext != "" {
		return ext
	}
	return strings.ToLower(c.Format)
}

// FormatConflict reports an explicit Format that names a different format than the output extension.
func (c ChartSpec) FormatConflict() bool {
	ext := outputExt(c.Output)
	return ext != "" && c.Format != "" && canonicalFormat(ext) != canonicalFormat(c.Format)
}

func outputExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// canonicalFormat folds extension aliases (jpeg, tiff) onto one name.
func canonicalFormat(f string) string {
	switch f = strings.ToLower(f); f {
	case "jpeg":
		return "jpg"
	case "tiff":
		return "tif"
	}
	return f
}

// DeriveOutputPath replaces the input extension with the given format, e.g. a.json -> a.pdf.
func DeriveOutputPath(input, format string) string {
	if format == "" {
		format = "pdf"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "." + format
}
