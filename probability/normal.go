package probability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultLowerBound stands in for -Inf; the density there is far below float64 resolution.
	DefaultLowerBound = -20.0
	// DefaultSubdivisionLimit is the integrator budget used for the normal CDF.
	DefaultSubdivisionLimit = 50

	sqrt2Pi = 2.5066282746310002
)

// CDF is a standard normal cumulative distribution function.
type CDF interface {
	CDF(d float64) (float64, error)
}

// NormPDF returns the standard normal probability density at x.
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// NormalCDF integrates NormPDF from Lower up to the query point.
type NormalCDF struct {
	Lower      float64
	Limit      int
	Integrator Integrator
}

// DefaultNormalCDF integrates from -20 with a budget of 50 subdivisions.
func DefaultNormalCDF() NormalCDF {
	return NormalCDF{
		Lower:      DefaultLowerBound,
		Limit:      DefaultSubdivisionLimit,
		Integrator: NewAdaptiveLegendre(),
	}
}

// NormCDF evaluates the standard normal CDF at d with the default settings.
func NormCDF(d float64) (float64, error) {
	return DefaultNormalCDF().CDF(d)
}

func (n NormalCDF) CDF(d float64) (float64, error) {
	switch {
	case math.IsNaN(d):
		return 0, fmt.Errorf("normal cdf: %w", ErrNaNArgument)
	case math.IsInf(d, 1):
		return 1, nil
	case d <= n.Lower:
		return 0, nil
	}

	integrator := n.Integrator
	if integrator == nil {
		integrator = NewAdaptiveLegendre()
	}

	// Mass above -Lower is as negligible as the mass below Lower.
	upper := d
	if n.Lower < 0 && d > -n.Lower {
		upper = -n.Lower
	}

	res, err := integrator.Integrate(NormPDF, n.Lower, upper, n.Limit)
	if err != nil {
		return 0, fmt.Errorf("normal cdf at %g: %w", d, err)
	}
	return res.Value, nil
}

// ErfCDF is the closed-form standard normal CDF. It fails only on NaN.
type ErfCDF struct{}

func (ErfCDF) CDF(d float64) (float64, error) {
	if math.IsNaN(d) {
		return 0, fmt.Errorf("normal cdf: %w", ErrNaNArgument)
	}
	return distuv.UnitNormal.CDF(d), nil
}
