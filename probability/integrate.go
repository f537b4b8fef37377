package probability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	defaultPoints = 10
	defaultAbsTol = 1e-12
	defaultRelTol = 1e-10
)

// Integral is the outcome of a definite integration.
type Integral struct {
	Value        float64
	AbsErr       float64
	Subdivisions int
}

// Integrator evaluates the definite integral of f over [lower, upper] using at
// most limit subdivisions. It must return an error rather than an estimate
// that missed its tolerance.
type Integrator interface {
	Integrate(f func(float64) float64, lower, upper float64, limit int) (Integral, error)
}

// AdaptiveLegendre is a globally adaptive Gauss-Legendre integrator. Each panel
// is estimated with Points and 2*Points+1 nodes; the difference is the panel
// error, and the worst panel is bisected until the total error is within
// tolerance.
type AdaptiveLegendre struct {
	Points int
	AbsTol float64
	RelTol float64
}

// NewAdaptiveLegendre returns an integrator with the default rule size and tolerances.
func NewAdaptiveLegendre() AdaptiveLegendre {
	return AdaptiveLegendre{
		Points: defaultPoints,
		AbsTol: defaultAbsTol,
		RelTol: defaultRelTol,
	}
}

type panel struct {
	lower, upper float64
	value        float64
	err          float64
}

func (a AdaptiveLegendre) Integrate(f func(float64) float64, lower, upper float64, limit int) (Integral, error) {
	if err := a.check(lower, upper, limit); err != nil {
		return Integral{}, err
	}
	if lower == upper {
		return Integral{}, nil
	}
	if lower > upper {
		res, err := a.Integrate(f, upper, lower, limit)
		res.Value = -res.Value
		return res, err
	}

	first, err := a.estimate(f, lower, upper)
	if err != nil {
		return Integral{}, err
	}
	panels := []panel{first}

	for subdivisions := 0; ; subdivisions++ {
		value, absErr, worst := 0.0, 0.0, 0
		for i, p := range panels {
			value += p.value
			absErr += p.err
			if p.err > panels[worst].err {
				worst = i
			}
		}

		if absErr <= math.Max(a.AbsTol, a.RelTol*math.Abs(value)) {
			return Integral{Value: value, AbsErr: absErr, Subdivisions: subdivisions}, nil
		}
		if subdivisions >= limit {
			return Integral{}, &IntegrationError{
				Lower:        lower,
				Upper:        upper,
				Subdivisions: subdivisions,
				Estimate:     value,
				AbsErr:       absErr,
				Reason:       "subdivision limit reached",
			}
		}

		p := panels[worst]
		mid := p.lower + (p.upper-p.lower)/2
		left, err := a.estimate(f, p.lower, mid)
		if err != nil {
			return Integral{}, err
		}
		right, err := a.estimate(f, mid, p.upper)
		if err != nil {
			return Integral{}, err
		}
		panels[worst] = left
		panels = append(panels, right)
	}
}

// check rejects requests the rule cannot run. The error is an
// *IntegrationError wrapping ErrInvalidIntegration.
func (a AdaptiveLegendre) check(lower, upper float64, limit int) error {
	var reason string
	switch {
	case a.Points < 1:
		reason = fmt.Sprintf("rule needs at least one point, got %d", a.Points)
	case !(a.AbsTol > 0) || !(a.RelTol > 0):
		reason = fmt.Sprintf("tolerances must be positive (abs=%g rel=%g)", a.AbsTol, a.RelTol)
	case limit < 0:
		reason = fmt.Sprintf("negative subdivision limit %d", limit)
	case math.IsNaN(lower) || math.IsInf(lower, 0) || math.IsNaN(upper) || math.IsInf(upper, 0):
		reason = "bounds must be finite"
	default:
		return nil
	}
	return &IntegrationError{
		Lower:  lower,
		Upper:  upper,
		Reason: fmt.Sprintf("%v: %s", ErrInvalidIntegration, reason),
		Err:    ErrInvalidIntegration,
	}
}

func (a AdaptiveLegendre) estimate(f func(float64) float64, lower, upper float64) (panel, error) {
	coarse := quad.Fixed(f, lower, upper, a.Points, quad.Legendre{}, 1)
	fine := quad.Fixed(f, lower, upper, 2*a.Points+1, quad.Legendre{}, 1)
	if math.IsNaN(fine) || math.IsInf(fine, 0) || math.IsNaN(coarse) || math.IsInf(coarse, 0) {
		return panel{}, &IntegrationError{
			Lower:  lower,
			Upper:  upper,
			Reason: "integrand is not finite on the panel",
		}
	}
	return panel{
		lower: lower,
		upper: upper,
		value: fine,
		err:   math.Abs(fine - coarse),
	}, nil
}
