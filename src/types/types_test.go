package types

import (
	"testing"
)

func TestExpandTemplate(t *testing.T) {
	r := Record{PhysicalQubits: 120, RuntimeSeconds: 4.5, Tags: []Tag{{Name: "logical_error_budget", Value: "0.01"}}}
	cases := []struct {
		tpl  string
		want string
	}{
		{"ε={logical_error_budget}", "ε=0.01"},
		{"({physical_qubits}, {runtime_seconds})", "(120, 4.5)"},
		{"no placeholders", "no placeholders"},
		{"missing={nope}!", "missing=!"},
		{"unterminated {brace", "unterminated {brace"},
	}
	for _, c := range cases {
		if got := Expand(c.tpl, r.Lookup); got != c.want {
			t.Fatalf("Expand(%q) = %q, want %q", c.tpl, got, c.want)
		}
	}
}

func TestRecordField(t *testing.T) {
	r := Record{PhysicalQubits: 340, RuntimeSeconds: 12.1, Tags: []Tag{{Name: "K", Value: "63"}, {Name: "method", Value: "pauli_decomp"}}}
	if v, ok := r.Field(FieldPhysicalQubits); !ok || v != 340 {
		t.Fatalf("physical qubits: %v %v", v, ok)
	}
	if v, ok := r.Field("K"); !ok || v != 63 {
		t.Fatalf("numeric tag: %v %v", v, ok)
	}
	if _, ok := r.Field("method"); ok {
		t.Fatalf("non-numeric tag must not be a field")
	}
}

func TestStyleResolveFallsBackToDefaults(t *testing.T) {
	s := Style{
		MarkerField: "K", Markers: map[string]string{"7": "o", "63": "s"},
		ColorField: "method", Colors: map[string]string{"pauli_decomp": "blue"},
	}
	g := Group{Key: []Tag{{Name: "method", Value: "newton_iterations"}, {Name: "K", Value: "63"}}}
	got := s.Resolve(g, 0)
	if got.Marker != "s" || got.Color != "black" {
		t.Fatalf("unexpected style %+v", got)
	}
	g = Group{Key: []Tag{{Name: "method", Value: "pauli_decomp"}, {Name: "K", Value: "1024"}}}
	got = s.Resolve(g, 1)
	if got.Marker != "o" || got.Color != "blue" {
		t.Fatalf("unexpected style %+v", got)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	if got := DeriveOutputPath("results/example3.json", ""); got != "results/example3.pdf" {
		t.Fatalf("got %s", got)
	}
	if got := DeriveOutputPath("Rabi_Model", "svg"); got != "Rabi_Model.svg" {
		t.Fatalf("got %s", got)
	}
}

func TestChartSpecValidate(t *testing.T) {
	spec := DefaultChartSpec()
	if err := spec.Validate(); err != nil {
		t.Fatalf("default spec invalid: %v", err)
	}
	spec.Y.Scale = "symlog"
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected unknown scale to fail")
	}
	spec = DefaultChartSpec()
	spec.Mode = "bars"
	if err := spec.Validate(); err == nil {
		t.Fatalf("expected unknown mode to fail")
	}
	spec = DefaultChartSpec()
	spec.Output = "out/chart.SVG"
	if spec.OutputFormat() != "svg" {
		t.Fatalf("format from extension: %s", spec.OutputFormat())
	}
}

func TestOutputFormatPrefersExtension(t *testing.T) {
	cases := []struct {
		output, format, want string
		conflict             bool
	}{
		{"chart.pdf", "", "pdf", false},
		{"chart.pdf", "svg", "pdf", true},
		{"chart.PDF", "pdf", "pdf", false},
		{"chart.jpeg", "jpg", "jpeg", false},
		{"chart.tif", "TIFF", "tif", false},
		{"chart", "png", "png", false},
		{"", "eps", "eps", false},
	}
	for _, tc := range cases {
		spec := ChartSpec{Output: tc.output, Format: tc.format}
		if got := spec.OutputFormat(); got != tc.want {
			t.Errorf("%s/%s: format %q, want %q", tc.output, tc.format, got, tc.want)
		}
		if got := spec.FormatConflict(); got != tc.conflict {
			t.Errorf("%s/%s: conflict %v, want %v", tc.output, tc.format, got, tc.conflict)
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := (Layout{Kind: LayoutNested, Key: "results"}).Validate(); err == nil {
		t.Fatalf("nested layout without child must fail")
	}
	if err := (Layout{Kind: LayoutColumns}).Validate(); err != nil {
		t.Fatalf("columns layout: %v", err)
	}
	if err := (Layout{Kind: "tree"}).Validate(); err == nil {
		t.Fatalf("unknown kind must fail")
	}
}

func TestStyleResolvePalette(t *testing.T) {
	s := Style{ColorField: "photon_loss_rate", Colors: map[string]string{"1e-3": "red"}, Palette: []string{"blue", "green"}}
	mk := func(v TagValue) Group { return Group{Key: []Tag{{Name: "photon_loss_rate", Value: v}}} }
	if got := s.Resolve(mk("1e-3"), 0).Color; got != "red" {
		t.Fatalf("explicit mapping must win over palette, got %s", got)
	}
	if got := s.Resolve(mk("1e-4"), 1).Color; got != "green" {
		t.Fatalf("palette index 1, got %s", got)
	}
	if got := s.Resolve(mk("1e-5"), 2).Color; got != "blue" {
		t.Fatalf("palette wraps, got %s", got)
	}
}
