package bsm

import "math"

// ValuationParameters holds the market and contract inputs of one valuation.
type ValuationParameters struct {
	Spot          float64 // St, level of the underlying at ValuationTime
	Strike        float64 // K
	ValuationTime float64 // t, in years
	Maturity      float64 // T, in years, T > t
	Rate          float64 // r, continuously compounded risk-free rate
	Sigma         float64 // annualized volatility
}

// TimeToMaturity returns T - t.
func (p ValuationParameters) TimeToMaturity() float64 {
	return p.Maturity - p.ValuationTime
}

// DiscountedStrike returns K * exp(-r(T-t)).
func (p ValuationParameters) DiscountedStrike() float64 {
	return p.Strike * math.Exp(-p.Rate*p.TimeToMaturity())
}

// IntrinsicCall returns max(St - K, 0).
func (p ValuationParameters) IntrinsicCall() float64 {
	return math.Max(p.Spot-p.Strike, 0)
}

// Validate checks the preconditions of every valuation, in a fixed order, and
// reports the first one violated. Infinite inputs fail under the kind of the
// field they were given for.
func (p ValuationParameters) Validate() error {
	switch {
	case !(p.Spot > 0) || math.IsInf(p.Spot, 1):
		return &ValidationError{Kind: NonPositivePrice, Field: "spot", Value: p.Spot}
	case !(p.Strike > 0) || math.IsInf(p.Strike, 1):
		return &ValidationError{Kind: NonPositiveStrike, Field: "strike", Value: p.Strike}
	case !(p.Sigma > 0) || math.IsInf(p.Sigma, 1):
		return &ValidationError{Kind: NonPositiveVolatility, Field: "sigma", Value: p.Sigma}
	case !(p.Maturity > p.ValuationTime) || math.IsInf(p.Maturity, 1):
		return &ValidationError{Kind: NonPositiveTimeToMaturity, Field: "maturity", Value: p.TimeToMaturity()}
	case p.ValuationTime < 0:
		return &ValidationError{Kind: NegativeValuationTime, Field: "t", Value: p.ValuationTime}
	case math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0):
		return &ValidationError{Kind: NonFiniteRate, Field: "rate", Value: p.Rate}
	}
	return nil
}

// D1D2Pair holds the standardized BSM arguments of the normal CDF.
type D1D2Pair struct {
	D1 float64
	D2 float64
}

// Quote is a full valuation of both sides of one contract.
type Quote struct {
	Params           ValuationParameters
	D1D2             D1D2Pair
	Call             float64
	Put              float64
	DiscountedStrike float64
}
