package presets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/render"
	"github.com/iafilius/QuantumResourcePlots/src/results"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// fixtures maps each built-in preset to a document shaped the way the estimators write it.
var fixtures = map[string]string{
	"frontier":        "example3.json",
	"error-budget":    "example2.json",
	"schwinger":       "schwinger_model_estimates.json",
	"schwinger-line":  "schwinger_model_estimates.json",
	"single-estimate": "single_estimate.json",
	"rabi":            "Rabi_Model.json",
	"displacement":    "displacement_operator.json",
	"photon-loss":     "photon_loss.json",
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	require.Len(t, Builtin(), len(fixtures))
	for _, p := range Builtin() {
		assert.NoError(t, p.Validate(), p.Name)
		assert.Contains(t, fixtures, p.Name, "every preset needs a fixture")
		assert.True(t, strings.HasPrefix(p.Describe(), p.Name))
	}
}

func TestBuiltinPresetsRenderFixtures(t *testing.T) {
	out := t.TempDir()
	for name, fixture := range fixtures {
		p, err := Lookup(name)
		require.NoError(t, err)
		rs, err := results.Load(filepath.Join("testdata", fixture), p.Layout)
		require.NoError(t, err, name)
		groups := results.GroupBy(rs, p.Chart.GroupBy)

		spec := p.Chart
		spec.Output = filepath.Join(out, types.DeriveOutputPath(name+".json", "pdf"))
		art, err := render.Render(groups, spec)
		require.NoError(t, err, name)
		assert.Equal(t, len(rs.Records), art.Points, "%s: every record plotted", name)

		data, err := os.ReadFile(spec.Output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"), name)
	}
}

func TestRabiGroupsOnePanelPerCutoff(t *testing.T) {
	p, err := Lookup("rabi")
	require.NoError(t, err)
	rs, err := results.Load(filepath.Join("testdata", "Rabi_Model.json"), p.Layout)
	require.NoError(t, err)
	groups := results.GroupBy(rs, p.Chart.GroupBy)
	require.Len(t, groups, 3)
	series, err := render.Points(groups, p.Chart)
	require.NoError(t, err)
	assert.Equal(t, "Hilbert Cutoff n_max=8", series[1].Name)
}

func TestLookupReturnsIndependentCopies(t *testing.T) {
	a, err := Lookup("displacement")
	require.NoError(t, err)
	a.Chart.Style.Colors["pauli_decomp"] = "green"
	a.Chart.GroupBy[0] = "K"

	b, err := Lookup("displacement")
	require.NoError(t, err)
	assert.Equal(t, "blue", b.Chart.Style.Colors["pauli_decomp"])
	assert.Equal(t, []string{"method", "K"}, b.Chart.GroupBy)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("histogram")
	assert.True(t, rerrors.Is(err, rerrors.ErrInvalidSpec))
}

func TestLoadFileOverlaysPreset(t *testing.T) {
	p, err := LoadFile(filepath.Join("testdata", "displacement_log.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "displacement_log", p.Name)
	assert.Equal(t, "Displacement operator (log runtime)", p.Chart.Title)
	assert.Equal(t, types.ScaleLog, p.Chart.Y.Scale)
	assert.Equal(t, types.FieldRuntimeSeconds, p.Chart.Y.Field, "fields absent from the file keep the preset value")
	assert.Equal(t, "green", p.Chart.Style.Colors["pauli_decomp"])
	assert.Equal(t, "red", p.Chart.Style.Colors["newton_iterations"])
	assert.Equal(t, types.LayoutNested, p.Layout.Kind)

	fresh, err := Lookup("displacement")
	require.NoError(t, err)
	assert.Equal(t, "blue", fresh.Chart.Style.Colors["pauli_decomp"], "overlay must not leak into the built-in")
}

func TestParseStandalone(t *testing.T) {
	doc := `
name: loss-sweep
layout: {kind: records, key: estimation_results}
chart:
  group_by: [photon_loss_rate]
  mode: linepoints
  x: {field: physical_qubits, label: Qubits, scale: log}
  y: {field: runtime_seconds, label: Runtime}
`
	p, err := Parse("loss.yaml", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "loss-sweep", p.Name)
	assert.Equal(t, types.ModeLinePoints, p.Chart.Mode)
	assert.Equal(t, []string{"photon_loss_rate"}, p.Chart.GroupBy)
	assert.Equal(t, 10.0, p.Chart.Width, "defaults come from DefaultChartSpec")
}

func TestParseRejectsInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"bad yaml":       "chart: [",
		"unknown preset": "preset: pie",
		"bad layout":     "layout: {kind: records}",
		"bad scale":      "layout: {kind: columns}\nchart: {y: {field: runtime_seconds, scale: symlog}}",
	} {
		_, err := Parse(name, []byte(doc))
		assert.True(t, rerrors.Is(err, rerrors.ErrInvalidSpec), "%s: got %v", name, err)
	}
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, rerrors.Is(err, rerrors.ErrNotFound))
}
