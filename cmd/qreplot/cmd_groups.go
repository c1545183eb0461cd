package main

import (
	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/export"
	"github.com/iafilius/QuantumResourcePlots/src/results"
)

func newGroupsCmd(a *app) *cobra.Command {
	var (
		cf chartFlags
		by []string
	)
	cmd := &cobra.Command{
		Use:   "groups <input.json>",
		Short: "Summarize the series a chart would draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cf.resolve(a)
			if err != nil {
				return err
			}
			rs, err := results.Load(args[0], p.Layout)
			if err != nil {
				return err
			}
			keys := p.Chart.GroupBy
			if cmd.Flags().Changed("by") {
				keys = by
			}
			return export.WriteSummary(cmd.OutOrStdout(), args[0], results.GroupBy(rs, keys))
		},
	}
	cf.register(cmd)
	cmd.Flags().StringSliceVar(&by, "by", nil, "tag names to group by (default: the preset's grouping)")
	return cmd
}
