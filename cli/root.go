// Package cli provides the bsm command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcdannyboy/bsm/config"
	"github.com/bcdannyboy/bsm/logging"
)

// app carries the state resolved before any subcommand runs.
type app struct {
	cfgFile string
	verbose bool
	format  string

	cfg    config.Config
	logger *zap.Logger
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "bsm",
		Short: "Black-Scholes-Merton valuation of European options",
		Long: `bsm values European calls and puts under the Black-Scholes-Merton model.

The standard normal CDF is integrated numerically from a configurable lower
bound, or evaluated in closed form with cdf_method: erf.

Examples:
  bsm call --spot 100 --strike 100 --maturity 1 --rate 0.05 --sigma 0.2
  bsm quote --spot 150 --strike 100 --maturity 1 --rate 0.05 --sigma 0.2 --format json
  bsm cdf --d 1.96`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format (text, json); overrides config")

	root.AddCommand(
		newValueCmd(a, "call", "Value a European call"),
		newValueCmd(a, "put", "Value a European put"),
		newValueCmd(a, "quote", "Value the call and the put of one contract"),
		newCDFCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if a.format != "" {
		cfg.Output.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration resolved",
		zap.String("config_file", a.cfgFile),
		zap.String("cdf_method", cfg.CDFMethod),
		zap.Float64("lower_bound", cfg.Integration.LowerBound),
		zap.Int("subdivision_limit", cfg.Integration.SubdivisionLimit),
		zap.String("format", cfg.Output.Format),
	)
	return nil
}
