package main

import (
	"fmt"
	"os"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(stdprometheus.DefaultRegisterer).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the root flags down to the subcommands.
type cli struct {
	configPath string
	logLevel   string
	registry   stdprometheus.Registerer
}

// start loads configuration and wires a harbor that reports to the command's
// output and logs to its error stream.
func (rt *cli) start(cmd *cobra.Command) (*app, error) {
	cfg, err := LoadConfig(rt.configPath)
	if err != nil {
		return nil, err
	}
	if rt.logLevel != "" {
		cfg.Log.Level = rt.logLevel
	}

	logger := newLogger(cfg.Log, cmd.ErrOrStderr())
	return newApp(cfg, logger, rt.registry, cmd.OutOrStdout())
}

func newRootCmd(reg stdprometheus.Registerer) *cobra.Command {
	rt := &cli{registry: reg}

	cmd := &cobra.Command{
		Use:           "harbor",
		Short:         "Harbor container logistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "", "config file (YAML)")
	cmd.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "log level: debug, info, warn, error, none")

	cmd.AddCommand(demoCmd(rt), planCmd(rt))
	return cmd
}
