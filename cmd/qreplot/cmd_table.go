package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/export"
	"github.com/iafilius/QuantumResourcePlots/src/results"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		cf     chartFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "table <input.json>",
		Short: "Export the grouped records as an XLSX workbook",
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
			if output == "" {
				output = outputPath(a, args[0], "xlsx")
			}
			if err := export.WriteXLSX(output, groups); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d groups, %d records -> %s\n",
				p.Name, len(groups), len(results.Flatten(groups)), output)
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook (default: input with .xlsx)")
	return cmd
}
