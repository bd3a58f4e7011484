package cevian

import (
	"context"
	"fmt"
)

// ClosedForm evaluates the conjectured rule for odd n on the equilateral
// triangle:
//
//	a(n) = 3n − 2        if n mod 10 ≠ 9
//	a(n) = 3n + 10       if n mod 10 = 9
//
// It matches the enumeration for every odd n up to at least 200. Even n and
// other shapes are outside its domain and return ErrOutOfDomain. The rule
// yields no witnesses.
type ClosedForm struct{}

// Name returns the method identifier.
func (ClosedForm) Name() string { return MethodRule }

// Calculate returns the rule value for n.
func (ClosedForm) Calculate(_ context.Context, n int, opts Options) (Result, error) {
	opts, err := validateInput(n, opts)
	if err != nil {
		return Result{}, err
	}
	if !RuleApplies(n, opts.Shape) {
		return Result{}, fmt.Errorf("%w: closed form covers odd n on the equilateral triangle, got n=%d shape=%s",
			ErrOutOfDomain, n, opts.Shape)
	}
	return Result{N: n, Count: RuleValue(n)}, nil
}

// RuleApplies reports whether the closed form is defined for n and t.
func RuleApplies(n int, t Triangle) bool {
	if t == (Triangle{}) {
		t = Equilateral
	}
	return n > 0 && n%2 == 1 && t.IsEquilateral()
}

// RuleValue evaluates the odd-n rule. The caller must check RuleApplies.
func RuleValue(n int) int {
	v := 3*n - 2
	if n%10 == 9 {
		v += 12
	}
	return v
}
