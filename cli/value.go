package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcdannyboy/bsm/bsm"
)

func newValueCmd(a *app, kind, short string) *cobra.Command {
	var p bsm.ValuationParameters

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := bsm.NewValuator(a.cfg.CDF())
			a.logger.Debug("valuing",
				zap.String("kind", kind),
				zap.Float64("spot", p.Spot),
				zap.Float64("strike", p.Strike),
				zap.Float64("t", p.ValuationTime),
				zap.Float64("maturity", p.Maturity),
				zap.Float64("rate", p.Rate),
				zap.Float64("sigma", p.Sigma),
			)

			out := newValuation(kind, p, a.cfg.Output.Precision)
			switch kind {
			case "call":
				call, err := v.CallValue(p)
				if err != nil {
					return err
				}
				out.setCall(call)
			case "put":
				put, err := v.PutValue(p)
				if err != nil {
					return err
				}
				out.setPut(put)
			default:
				q, err := v.Quote(p)
				if err != nil {
					return err
				}
				out.setQuote(q)
			}

			if err := out.checkFinite(); err != nil {
				return err
			}
			a.logger.Debug("valued", zap.String("kind", kind))
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, out)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.Spot, "spot", 0, "spot price of the underlying (St)")
	f.Float64Var(&p.Strike, "strike", 0, "strike price (K)")
	f.Float64Var(&p.ValuationTime, "t", 0, "valuation time in years")
	f.Float64Var(&p.Maturity, "maturity", 0, "maturity in years (T > t)")
	f.Float64Var(&p.Rate, "rate", 0, "continuously compounded risk-free rate")
	f.Float64Var(&p.Sigma, "sigma", 0, "annualized volatility")
	for _, name := range []string{"spot", "strike", "maturity", "sigma"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
