package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/render"
)

func newShowCmd(a *app, d render.Displayer) *cobra.Command {
	var (
		cf      chartFlags
		backend string
		caption string
	)
	cmd := &cobra.Command{
		Use:   "show <input.json>",
		Short: "Open the chart in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cf.resolve(a)
			if err != nil {
				return err
			}
			groups, err := load(args[0], p)
			if err != nil {
				return err
			}
			spec := p.Chart
			if backend != "" {
				spec.Backend = backend
			}
			applyConfig(a, &spec)
			spec.Output, spec.Format = "", ""
			spec.Caption = filepath.Base(args[0])
			if cmd.Flags().Changed("caption") {
				spec.Caption = caption
			}
			_, err = render.New(d).Render(groups, spec)
			return err
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&backend, "backend", "", "drawing backend: gonum|gochart")
	cmd.Flags().StringVar(&caption, "caption", "", "text stamped below the chart (default: the input file name; empty to disable)")
	return cmd
}
