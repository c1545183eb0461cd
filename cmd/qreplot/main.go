// Command qreplot renders quantum resource-estimation results as charts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/QuantumResourcePlots/src/config"
	"github.com/iafilius/QuantumResourcePlots/src/logging"
	"github.com/iafilius/QuantumResourcePlots/src/render"
)

// app carries the state shared by every subcommand once the root command has run.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd(d render.Displayer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "qreplot",
		Short: "Plot runtime vs. physical qubits from resource-estimation results",
		Long: `qreplot reads resource-estimation result documents (JSON) and renders
runtime vs. physical qubit charts, one series per parameter group.

Built-in presets cover the known document shapes; see "qreplot presets".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = a.logLevel
			}
			if !logging.ValidLevel(cfg.LogLevel) {
				return fmt.Errorf("invalid log level %q", cfg.LogLevel)
			}
			logging.SetLogLevel(cfg.LogLevel)
			a.cfg = cfg
			logging.Debugf("config %s: backend=%s format=%s", a.configPath, cfg.Backend, cfg.Format)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFileName, "YAML file with default settings")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug|info|warn|error")

	root.AddCommand(
		newRenderCmd(a),
		newShowCmd(a, d),
		newGroupsCmd(a),
		newTableCmd(a),
		newPresetsCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd(fyneDisplay{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
