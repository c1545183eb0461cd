package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/presets"
	"github.com/iafilius/QuantumResourcePlots/src/results"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// chartFlags select the chart definition for commands that read an input document.
type chartFlags struct {
	preset string
	spec   string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "frontier", "built-in preset (see 'qreplot presets')")
	cmd.Flags().StringVar(&f.spec, "spec", "", "YAML chart definition; overrides --preset")
	cmd.MarkFlagsMutuallyExclusive("preset", "spec")
}

// resolve returns the chart definition: a spec file when given, else the named preset.
func (f *chartFlags) resolve(a *app) (presets.Preset, error) {
	if f.spec != "" {
		return presets.LoadFile(a.cfg.ResolveSpec(f.spec))
	}
	return presets.Lookup(f.preset)
}

// load reads input with the preset's layout and groups it the way the chart does.
func load(input string, p presets.Preset) ([]types.Group, error) {
	rs, err := results.Load(input, p.Layout)
	if err != nil {
		return nil, err
	}
	return results.GroupBy(rs, p.Chart.GroupBy), nil
}

// applyConfig fills chart settings the definition leaves open from the config file.
func applyConfig(a *app, spec *types.ChartSpec) {
	if spec.Backend == "" {
		spec.Backend = a.cfg.Backend
	}
	if a.cfg.Width > 0 {
		spec.Width = a.cfg.Width
	}
	if a.cfg.Height > 0 {
		spec.Height = a.cfg.Height
	}
}

// outputPath derives the output next to the input, or inside the configured output dir.
func outputPath(a *app, input, format string) string {
	out := types.DeriveOutputPath(input, format)
	if a.cfg.OutputDir != "" {
		out = filepath.Join(a.cfg.OutputDir, filepath.Base(out))
	}
	return out
}
