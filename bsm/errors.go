package bsm

import (
	"errors"
	"fmt"
)

// ValidationKind names the violated precondition.
type ValidationKind int

const (
	NonPositivePrice ValidationKind = iota + 1
	NonPositiveStrike
	NonPositiveVolatility
	NonPositiveTimeToMaturity
	NegativeValuationTime
	NonFiniteRate
)

var (
	ErrNonPositivePrice          = errors.New("spot price must be positive")
	ErrNonPositiveStrike         = errors.New("strike must be positive")
	ErrNonPositiveVolatility     = errors.New("volatility must be positive")
	ErrNonPositiveTimeToMaturity = errors.New("maturity must be after valuation time")
	ErrNegativeValuationTime     = errors.New("valuation time must not be negative")
	ErrNonFiniteRate             = errors.New("rate must be finite")
)

func (k ValidationKind) String() string {
	switch k {
	case NonPositivePrice:
		return "NonPositivePrice"
	case NonPositiveStrike:
		return "NonPositiveStrike"
	case NonPositiveVolatility:
		return "NonPositiveVolatility"
	case NonPositiveTimeToMaturity:
		return "NonPositiveTimeToMaturity"
	case NegativeValuationTime:
		return "NegativeValuationTime"
	case NonFiniteRate:
		return "NonFiniteRate"
	}
	return fmt.Sprintf("ValidationKind(%d)", int(k))
}

func (k ValidationKind) sentinel() error {
	switch k {
	case NonPositivePrice:
		return ErrNonPositivePrice
	case NonPositiveStrike:
		return ErrNonPositiveStrike
	case NonPositiveVolatility:
		return ErrNonPositiveVolatility
	case NonPositiveTimeToMaturity:
		return ErrNonPositiveTimeToMaturity
	case NegativeValuationTime:
		return ErrNegativeValuationTime
	case NonFiniteRate:
		return ErrNonFiniteRate
	}
	return nil
}

// ValidationError reports invalid ValuationParameters. errors.Is matches it
// against the sentinel of its Kind.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s=%g: %v", e.Field, e.Value, e.Kind.sentinel())
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}
