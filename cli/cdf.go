package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcdannyboy/bsm/probability"
)

func newCDFCmd(a *app) *cobra.Command {
	var d float64

	cmd := &cobra.Command{
		Use:   "cdf",
		Short: "Evaluate the standard normal density and CDF at d",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.cfg.CDF().CDF(d)
			if err != nil {
				return err
			}
			a.logger.Debug("cdf evaluated", zap.Float64("d", d), zap.Float64("n", n))
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, distribution{
				D:       d,
				Density: probability.NormPDF(d),
				CDF:     n,
				Method:  a.cfg.CDFMethod,
			})
		},
	}

	cmd.Flags().Float64Var(&d, "d", 0, "point at which to evaluate")
	_ = cmd.MarkFlagRequired("d")
	return cmd
}
