//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

package cevian

import (
	"context"
	"errors"
	"fmt"
	"math"

	apperrors "github.com/agbru/dangle/internal/errors"
)

var (
	// ErrInvalidN is returned for n ≤ 0.
	ErrInvalidN = errors.New("n must be a positive integer")

	// ErrOutOfDomain is returned by a calculator asked for an n or a shape it
	// has no formula for. Callers treat it as "not applicable", not as failure.
	ErrOutOfDomain = errors.New("input outside the calculator's domain")
)

// Options configures a single calculation.
type Options struct {
	// Shape is the triangle; the zero value means Equilateral.
	Shape Triangle
	// Tolerance bounds |ρ_A·ρ_B·ρ_C − 1| on the floating path.
	Tolerance float64
	// Screen is the loose pre-filter used by the exact path.
	Screen float64
	// CollectWitnesses requests the explicit triple list in the Result.
	CollectWitnesses bool
}

// normalize fills zero fields with their defaults.
func (o Options) normalize() Options {
	if o.Shape == (Triangle{}) {
		o.Shape = Equilateral
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Screen == 0 {
		o.Screen = DefaultScreen
	}
	return o
}

// Result is the outcome of one calculation for one n.
type Result struct {
	N int
	// Count is d_angle(n) for the configured shape.
	Count int
	// Candidates is the number of (i, j, k) triples the method examined.
	Candidates int
	// Witnesses is sorted lexicographically; nil unless requested.
	Witnesses []Triple
}

// Calculator computes the number of concurrent cevian triples for one n.
type Calculator interface {
	// Name returns the method identifier.
	Name() string
	// Calculate returns the count (and optionally the witnesses) for n.
	Calculate(ctx context.Context, n int, opts Options) (Result, error)
}

// validateInput rejects inputs no calculator can serve and returns the
// normalized options.
func validateInput(n int, opts Options) (Options, error) {
	if n <= 0 {
		return opts, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("%v, got %d", ErrInvalidN, n),
		}
	}
	opts = opts.normalize()
	if err := opts.Shape.Validate(); err != nil {
		return opts, err
	}
	if !finitePositive(opts.Tolerance) || !finitePositive(opts.Screen) {
		return opts, apperrors.ValidationError{
			Field:   "tol",
			Message: fmt.Sprintf("tolerance must be a positive finite number, got %g (screen %g)", opts.Tolerance, opts.Screen),
		}
	}
	opts.Shape = opts.Shape.Reduced()
	return opts, nil
}

// finitePositive rejects zero, negatives, NaN and ±Inf.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// IsInvalidN reports whether err was caused by a non-positive n.
func IsInvalidN(err error) bool {
	var ve apperrors.ValidationError
	return errors.As(err, &ve) && ve.Field == "n"
}
