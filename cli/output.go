package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/bsm/bsm"
)

type params struct {
	Spot          float64 `json:"spot"`
	Strike        float64 `json:"strike"`
	ValuationTime float64 `json:"t"`
	Maturity      float64 `json:"maturity"`
	Rate          float64 `json:"rate"`
	Sigma         float64 `json:"sigma"`
}

type valuation struct {
	Kind             string           `json:"kind"`
	Params           params           `json:"params"`
	Call             *decimal.Decimal `json:"call,omitempty"`
	Put              *decimal.Decimal `json:"put,omitempty"`
	D1               *float64         `json:"d1,omitempty"`
	D2               *float64         `json:"d2,omitempty"`
	DiscountedStrike *decimal.Decimal `json:"discounted_strike,omitempty"`

	precision int32
	nonFinite error
}

type distribution struct {
	D       float64 `json:"d"`
	Density float64 `json:"density"`
	CDF     float64 `json:"cdf"`
	Method  string  `json:"method"`
}

func newValuation(kind string, p bsm.ValuationParameters, precision int) *valuation {
	return &valuation{
		Kind: kind,
		Params: params{
			Spot:          p.Spot,
			Strike:        p.Strike,
			ValuationTime: p.ValuationTime,
			Maturity:      p.Maturity,
			Rate:          p.Rate,
			Sigma:         p.Sigma,
		},
		precision: int32(precision),
	}
}

// money rounds f for display. Non-finite values have no decimal form; the
// first one is kept for checkFinite.
func (v *valuation) money(f float64) *decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if v.nonFinite == nil {
			v.nonFinite = fmt.Errorf("%s valuation produced a non-finite value %g", v.Kind, f)
		}
		return nil
	}
	d := decimal.NewFromFloat(f).Round(v.precision)
	return &d
}

func (v *valuation) checkFinite() error {
	return v.nonFinite
}

func (v *valuation) setCall(c float64) { v.Call = v.money(c) }
func (v *valuation) setPut(p float64)  { v.Put = v.money(p) }

func (v *valuation) setQuote(q bsm.Quote) {
	v.setCall(q.Call)
	v.setPut(q.Put)
	v.D1 = &q.D1D2.D1
	v.D2 = &q.D1D2.D2
	v.DiscountedStrike = v.money(q.DiscountedStrike)
}

func render(w io.Writer, format string, out any) error {
	if format == "json" {
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	switch o := out.(type) {
	case *valuation:
		return o.writeText(w)
	case distribution:
		_, err := fmt.Fprintf(w, "N(%g) = %.12f\ndN(%g) = %.12f\n", o.D, o.CDF, o.D, o.Density)
		return err
	}
	return fmt.Errorf("no text rendering for %T", out)
}

func (v *valuation) writeText(w io.Writer) error {
	places := v.precision
	lines := []struct {
		label string
		value *decimal.Decimal
	}{
		{"call", v.Call},
		{"put", v.Put},
		{"discounted strike", v.DiscountedStrike},
	}
	for _, l := range lines {
		if l.value == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.value.StringFixed(places)); err != nil {
			return err
		}
	}
	if v.D1 != nil && v.D2 != nil {
		if _, err := fmt.Fprintf(w, "d1: %.6f\nd2: %.6f\n", *v.D1, *v.D2); err != nil {
			return err
		}
	}
	return nil
}
