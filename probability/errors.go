package probability

import (
	"errors"
	"fmt"
)

var (
	// ErrIntegrationFailure is matched by every *IntegrationError.
	ErrIntegrationFailure = errors.New("integration failed to converge")
	// ErrInvalidIntegration reports bounds, budget or tolerances the integrator cannot work with.
	ErrInvalidIntegration = errors.New("invalid integration request")
	// ErrNaNArgument reports a NaN evaluation point.
	ErrNaNArgument        = errors.New("argument is NaN")
)

// IntegrationError carries the state of an integration that did not produce a result.
type IntegrationError struct {
	Lower        float64
	Upper        float64
	Subdivisions int
	Estimate     float64
	AbsErr       float64
	Reason       string
	// Err is the underlying cause, if any.
	Err          error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration over [%g, %g] failed after %d subdivisions: %s (estimate=%g abserr=%g)",
		e.Lower, e.Upper, e.Subdivisions, e.Reason, e.Estimate, e.AbsErr)
}

func (e *IntegrationError) Is(target error) bool {
	return target == ErrIntegrationFailure
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}
