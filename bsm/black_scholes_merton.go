package bsm

import (
	"math"

	"github.com/bcdannyboy/bsm/probability"
)

// D1D2 computes the BSM d1 and d2 for validated parameters.
func D1D2(p ValuationParameters) (D1D2Pair, error) {
	if err := p.Validate(); err != nil {
		return D1D2Pair{}, err
	}
	return d1d2(p), nil
}

func d1d2(p ValuationParameters) D1D2Pair {
	tau := p.TimeToMaturity()
	volSqrtT := p.Sigma * math.Sqrt(tau)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Sigma*p.Sigma)*tau) / volSqrtT
	return D1D2Pair{D1: d1, D2: d1 - volSqrtT}
}

// Valuator prices European options with a pluggable normal CDF.
type Valuator struct {
	CDF probability.CDF
}

// NewValuator returns a Valuator using cdf, or the integral CDF when cdf is nil.
func NewValuator(cdf probability.CDF) Valuator {
	if cdf == nil {
		cdf = probability.DefaultNormalCDF()
	}
	return Valuator{CDF: cdf}
}

// CallValue returns St*N(d1) - K*exp(-r(T-t))*N(d2).
func (v Valuator) CallValue(p ValuationParameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return v.call(p, d1d2(p))
}

// PutValue returns the put implied by put-call parity: C - St + K*exp(-r(T-t)).
func (v Valuator) PutValue(p ValuationParameters) (float64, error) {
	call, err := v.CallValue(p)
	if err != nil {
		return 0, err
	}
	return call - p.Spot + p.DiscountedStrike(), nil
}

// Quote values the call and the put of one contract in a single pass.
func (v Valuator) Quote(p ValuationParameters) (Quote, error) {
	if err := p.Validate(); err != nil {
		return Quote{}, err
	}

	d := d1d2(p)
	call, err := v.call(p, d)
	if err != nil {
		return Quote{}, err
	}

	discounted := p.DiscountedStrike()
	return Quote{
		Params:           p,
		D1D2:             d,
		Call:             call,
		Put:              call - p.Spot + discounted,
		DiscountedStrike: discounted,
	}, nil
}

func (v Valuator) call(p ValuationParameters, d D1D2Pair) (float64, error) {
	cdf := v.CDF
	if cdf == nil {
		cdf = probability.DefaultNormalCDF()
	}

	n1, err := cdf.CDF(d.D1)
	if err != nil {
		return 0, err
	}
	n2, err := cdf.CDF(d.D2)
	if err != nil {
		return 0, err
	}
	return p.Spot*n1 - p.DiscountedStrike()*n2, nil
}

// CallValue values a European call with the default integral CDF.
func CallValue(St, K, t, T, r, sigma float64) (float64, error) {
	return Valuator{}.CallValue(params(St, K, t, T, r, sigma))
}

// PutValue values a European put with the default integral CDF.
func PutValue(St, K, t, T, r, sigma float64) (float64, error) {
	return Valuator{}.PutValue(params(St, K, t, T, r, sigma))
}

func params(St, K, t, T, r, sigma float64) ValuationParameters {
	return ValuationParameters{
		Spot:          St,
		Strike:        K,
		ValuationTime: t,
		Maturity:      T,
		Rate:          r,
		Sigma:         sigma,
	}
}
