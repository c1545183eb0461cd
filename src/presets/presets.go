// Package presets holds the built-in chart definitions, one per result document shape, and
// loads user definitions from YAML.
package presets

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// Preset pairs a field-extraction layout with a chart specification.
type Preset struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Layout      types.Layout    `yaml:"layout"`
	Chart       types.ChartSpec `yaml:"chart"`
}

// Validate checks both halves of the preset.
func (p Preset) Validate() error {
	if err := p.Layout.Validate(); err != nil {
		return rerrors.NewInvalidSpec("preset %s: %v", p.Name, err)
	}
	if err := p.Chart.Validate(); err != nil {
		return rerrors.NewInvalidSpec("preset %s: %v", p.Name, err)
	}
	return nil
}

// Clone returns a deep copy so callers may override fields freely.
func (p Preset) Clone() Preset {
	c := p
	c.Layout.Required = slices.Clone(p.Layout.Required)
	c.Chart.GroupBy = slices.Clone(p.Chart.GroupBy)
	c.Chart.Style.Markers = maps.Clone(p.Chart.Style.Markers)
	c.Chart.Style.Colors = maps.Clone(p.Chart.Style.Colors)
	c.Chart.Style.Palette = slices.Clone(p.Chart.Style.Palette)
	return c
}

const (
	labelQubits       = "Physical Qubits"
	labelQubitsNumber = "Number of Physical Qubits"
	labelRuntime      = "Runtime (s)"
	labelRuntimeSecs  = "Runtime (seconds)"
)

var builtin = map[string]Preset{
	"frontier": {
		Description: "Single frontier curve: {frontier_results: [...]}",
		Layout:      types.Layout{Kind: types.LayoutRecords, Key: "frontier_results"},
		Chart: types.ChartSpec{
			Title: "Runtime vs Physical Qubits",
			X:     types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubits},
			Y:     types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntimeSecs},
			Mode:  types.ModeLinePoints, Grid: true,
			Style: types.Style{DefaultColor: "blue"},
			Width: 10, Height: 6,
		},
	},
	"error-budget": {
		Description: "Estimates labelled by logical error budget: {estimation_results: [...]}",
		Layout:      types.Layout{Kind: types.LayoutRecords, Key: "estimation_results", Required: []string{"logical_error_budget"}},
		Chart: types.ChartSpec{
			Title:    "Runtime vs. Physical Qubits for Different Logical Error Budgets (ε)",
			X:        types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubitsNumber},
			Y:        types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntimeSecs},
			Mode:     types.ModeScatter,
			Annotate: "ε={logical_error_budget}",
			Style:    types.Style{DefaultColor: "black", PointSize: 4},
			Width:    10, Height: 8,
		},
	},
	"schwinger": {
		Description: "Schwinger model estimates labelled by link Hilbert space cutoff",
		Layout:      types.Layout{Kind: types.LayoutRecords, Key: "estimation_results", Required: []string{"hilbert_cutoff"}},
		Chart: types.ChartSpec{
			Title:    "Runtime vs. Physical Qubits for Different Link Hilbert Space Cutoffs (Λ)",
			X:        types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubitsNumber},
			Y:        types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntimeSecs},
			Mode:     types.ModeScatter,
			Annotate: "Λ={hilbert_cutoff}",
			Style:    types.Style{DefaultColor: "black", PointSize: 4},
			Width:    10, Height: 8,
		},
	},
	"schwinger-line": {
		Description: "Schwinger model estimates as a log-runtime curve",
		Layout:      types.Layout{Kind: types.LayoutRecords, Key: "estimation_results", Required: []string{"hilbert_cutoff"}},
		Chart: types.ChartSpec{
			Title:    "Runtime vs. Physical Qubits for Different Hilbert Cutoffs",
			X:        types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubitsNumber},
			Y:        types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntimeSecs, Scale: types.ScaleLog},
			Mode:     types.ModeLinePoints,
			Annotate: "Cutoff={hilbert_cutoff}",
			Style:    types.Style{DefaultColor: "blue"},
			Width:    8, Height: 6,
		},
	},
	"single-estimate": {
		Description: "Top-level physical_qubits/runtime_seconds values or arrays",
		Layout:      types.Layout{Kind: types.LayoutColumns},
		Chart: types.ChartSpec{
			Title: "Runtime vs. Physical Qubits (Log Scale)",
			X:     types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubitsNumber},
			Y:     types.Axis{Field: types.FieldRuntimeSeconds, Label: "Runtime (seconds, log scale)", Scale: types.ScaleLog},
			Mode:  types.ModeLinePoints,
			Style: types.Style{DefaultColor: "blue"},
			Width: 8, Height: 6,
		},
	},
	"rabi": {
		Description: "Rabi model Pareto frontiers, one panel per Hilbert cutoff",
		Layout:      types.Layout{Kind: types.LayoutNested, Key: "pareto_estimation_results", Child: "frontier_results", Required: []string{"hilbert_cutoff"}},
		Chart: types.ChartSpec{
			Title:      "Rabi Model Pareto Frontiers",
			X:          types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubits},
			Y:          types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntime},
			GroupBy:    []string{"hilbert_cutoff"},
			Mode:       types.ModeScatter,
			Legend:     "Hilbert Cutoff n_max={hilbert_cutoff}",
			ShowLegend: true, Grid: true,
			Panels: true, Columns: 2,
			PanelTitle: "n_max={hilbert_cutoff}",
			Style:      types.Style{DefaultColor: "blue", PointSize: 4},
			Width:      15,
		},
	},
	"displacement": {
		Description: "Displacement operator frontiers grouped by (method, K)",
		Layout:      types.Layout{Kind: types.LayoutNested, Key: "results", Child: "frontier_results", Required: []string{"method", "K"}},
		Chart: types.ChartSpec{
			Title:      "Runtime vs Physical Qubits by Method and Hilbert Cutoff",
			X:          types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubits},
			Y:          types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntime},
			GroupBy:    []string{"method", "K"},
			Mode:       types.ModeScatter,
			Legend:     "{method}, K={K}",
			ShowLegend: true, Grid: true,
			Style: types.Style{
				MarkerField: "K", Markers: map[string]string{"7": "o", "63": "s", "256": "^"},
				ColorField: "method", Colors: map[string]string{"pauli_decomp": "blue", "newton_iterations": "red"},
				DefaultMarker: "o", DefaultColor: "black", PointSize: 4,
			},
			Width: 10, Height: 6,
		},
	},
	"photon-loss": {
		Description: "Cat-qubit estimates grouped by photon loss rate (log-log)",
		Layout:      types.Layout{Kind: types.LayoutRecords, Key: "estimation_results", Required: []string{"photon_loss_rate"}},
		Chart: types.ChartSpec{
			Title:      "Runtime vs. Physical Qubits for Different Photon Loss Rates",
			X:          types.Axis{Field: types.FieldPhysicalQubits, Label: labelQubits, Scale: types.ScaleLog},
			Y:          types.Axis{Field: types.FieldRuntimeSeconds, Label: labelRuntime, Scale: types.ScaleLog},
			GroupBy:    []string{"photon_loss_rate"},
			Mode:       types.ModeLinePoints,
			Legend:     "κ₁/κ₂={photon_loss_rate}",
			ShowLegend: true, Grid: true,
			Style: types.Style{
				ColorField: "photon_loss_rate",
				Palette:    []string{"blue", "orange", "green", "red", "purple", "brown", "pink", "gray"},
			},
			Width: 10, Height: 6,
		},
	},
}

// Names lists the built-in presets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named built-in preset.
func Lookup(name string) (Preset, error) {
	p, ok := builtin[name]
	if !ok {
		return Preset{}, rerrors.NewInvalidSpec("unknown preset %q (known: %v)", name, Names())
	}
	p = p.Clone()
	p.Name = name
	return p, nil
}

// Builtin returns copies of every built-in preset in name order.
func Builtin() []Preset {
	out := make([]Preset, 0, len(builtin))
	for _, n := range Names() {
		p, _ := Lookup(n)
		out = append(out, p)
	}
	return out
}

// Describe is a one-line summary for listings.
func (p Preset) Describe() string {
	where := string(p.Layout.Kind)
	if p.Layout.Key != "" {
		where = fmt.Sprintf("%s:%s", p.Layout.Kind, p.Layout.Key)
	}
	return fmt.Sprintf("%-16s %-36s %s", p.Name, where, p.Description)
}
