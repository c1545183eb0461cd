package render

import (
	"fmt"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/logging"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// Point is one plotted value. Index is the record's position in the source document.
type Point struct {
	X, Y  float64
	Label string
	Index int
}

// Series is the drawable form of one group.
type Series struct {
	Name   string
	Key    []types.Tag
	Style  types.SeriesStyle
	Points []Point
}

func (s Series) lookup(name string) (string, bool) {
	for _, t := range s.Key {
		if t.Name == name {
			return string(t.Value), true
		}
	}
	return "", false
}

// Points extracts exactly what will be plotted for each group, in group and record order.
// Non-positive values on a log axis cannot be drawn and are dropped with a warning.
func Points(groups []types.Group, spec types.ChartSpec) ([]Series, error) {
	out := make([]Series, 0, len(groups))
	dropped := 0
	for i, g := range groups {
		s := Series{Key: g.Key, Style: spec.Style.Resolve(g, i)}
		if spec.Legend != "" {
			s.Name = types.Expand(spec.Legend, s.lookup)
		} else {
			s.Name = g.Label()
		}
		for _, r := range g.Records {
			x, ok := r.Field(spec.X.Field)
			if !ok {
				return nil, rerrors.NewMalformedInput("", "record %d has no numeric field %q", r.Index, spec.X.Field)
			}
			y, ok := r.Field(spec.Y.Field)
			if !ok {
				return nil, rerrors.NewMalformedInput("", "record %d has no numeric field %q", r.Index, spec.Y.Field)
			}
			if (spec.X.Scale == types.ScaleLog && x <= 0) || (spec.Y.Scale == types.ScaleLog && y <= 0) {
				dropped++
				continue
			}
			p := Point{X: x, Y: y, Index: r.Index}
			if spec.Annotate != "" {
				p.Label = types.Expand(spec.Annotate, r.Lookup)
			}
			s.Points = append(s.Points, p)
		}
		out = append(out, s)
	}
	if dropped > 0 {
		logging.Warnf("dropped %d non-positive point(s) on a log axis", dropped)
	}
	return out, nil
}

// validateStyle checks the marker and color names a style refers to.
func validateStyle(st types.Style) error {
	markers := []string{st.DefaultMarker}
	for _, m := range st.Markers {
		markers = append(markers, m)
	}
	for _, m := range markers {
		if m != "" && !knownMarkers[m] {
			return fmt.Errorf("unknown marker %q", m)
		}
	}
	colors := append([]string{st.DefaultColor}, st.Palette...)
	for _, c := range st.Colors {
		colors = append(colors, c)
	}
	for _, c := range colors {
		if c == "" {
			continue
		}
		if _, err := parseColor(c); err != nil {
			return err
		}
	}
	return nil
}

func countPoints(series []Series) int {
	n := 0
	for _, s := range series {
		n += len(s.Points)
	}
	return n
}
