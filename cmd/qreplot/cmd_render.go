package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		cf      chartFlags
		output  string
		format  string
		backend string
	)
	cmd := &cobra.Command{
		Use:   "render <input.json>",
		Short: "Render a chart to a file (PDF next to the input by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			p, err := cf.resolve(a)
			if err != nil {
				return err
			}
			groups, err := load(input, p)
			if err != nil {
				return err
			}
			spec := p.Chart
			if backend != "" {
				spec.Backend = backend
			}
			applyConfig(a, &spec)
			if format != "" {
				spec.Format = format
			}
			if output != "" {
				spec.Output = output
			}
			if spec.Output == "" {
				f := spec.Format
				if f == "" {
					f = a.cfg.Format
				}
				spec.Output = outputPath(a, input, f)
			}
			art, err := render.Render(groups, spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d series, %d points -> %s (%s, %d bytes)\n",
				p.Name, art.Series, art.Points, art.Path, art.Backend, art.Bytes)
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with the format's extension)")
	cmd.Flags().StringVar(&format, "format", "", "output format: pdf|svg|eps|png|jpg|tif")
	cmd.Flags().StringVar(&backend, "backend", "", "drawing backend: gonum|gochart")
	return cmd
}
