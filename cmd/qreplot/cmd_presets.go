package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/presets"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range presets.Builtin() {
				fmt.Fprintln(cmd.OutOrStdout(), p.Describe())
			}
			return nil
		},
	}
}
