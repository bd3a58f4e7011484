package cevian

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/dangle/internal/errors"
)

// Triangle describes a triangle by integer angle weights. The angle at
// vertex A is A·π/(A+B+C), and likewise for B and C. Integer weights keep
// every sub-angle a rational multiple of π, which the exact path relies on.
type Triangle struct {
	A, B, C int
}

// MaxWeightSum bounds A+B+C. The exact path works modulo 2·Sum·(n+1), so the
// sum sizes every per-n table.
const MaxWeightSum = 10_000

// Equilateral is the triangle the d_angle sequence is defined on.
var Equilateral = Triangle{A: 1, B: 1, C: 1}

// Weights returns the three weights in vertex order.
func (t Triangle) Weights() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// Sum returns A+B+C, the number of π/Sum units in π.
func (t Triangle) Sum() int {
	return t.A + t.B + t.C
}

// Angles returns the vertex angles in radians.
func (t Triangle) Angles() [3]float64 {
	s := float64(t.Sum())
	return [3]float64{
		float64(t.A) * math.Pi / s,
		float64(t.B) * math.Pi / s,
		float64(t.C) * math.Pi / s,
	}
}

// IsEquilateral reports whether all three weights are equal.
func (t Triangle) IsEquilateral() bool {
	return t.A == t.B && t.B == t.C
}

// Rotate returns the triangle relabelled B, C, A.
func (t Triangle) Rotate() Triangle {
	return Triangle{A: t.B, B: t.C, C: t.A}
}

// Mirror returns the triangle relabelled A, C, B, reversing orientation.
func (t Triangle) Mirror() Triangle {
	return Triangle{A: t.A, B: t.C, C: t.B}
}

// Validate checks that every weight is positive and that the weights sum to
// at most MaxWeightSum.
func (t Triangle) Validate() error {
	for i, w := range t.Weights() {
		if w <= 0 {
			return apperrors.ValidationError{
				Field:   "shape",
				Message: fmt.Sprintf("weight of vertex %c must be positive, got %d", 'A'+rune(i), w),
			}
		}
		if w > MaxWeightSum {
			return apperrors.ValidationError{
				Field:   "shape",
				Message: fmt.Sprintf("weight of vertex %c exceeds %d, got %d", 'A'+rune(i), MaxWeightSum, w),
			}
		}
	}
	if s := t.Sum(); s > MaxWeightSum {
		return apperrors.ValidationError{
			Field:   "shape",
			Message: fmt.Sprintf("weights must sum to at most %d, got %d", MaxWeightSum, s),
		}
	}
	return nil
}

// Reduced divides the weights by their greatest common divisor. Scaling all
// weights leaves the angles unchanged, so 2,2,2 and 1,1,1 count alike.
func (t Triangle) Reduced() Triangle {
	g := gcd(gcd(t.A, t.B), t.C)
	if g <= 1 {
		return t
	}
	return Triangle{A: t.A / g, B: t.B / g, C: t.C / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// String renders the weights as "A,B,C", the format accepted by ParseTriangle.
func (t Triangle) String() string {
	return fmt.Sprintf("%d,%d,%d", t.A, t.B, t.C)
}

// ParseTriangle parses three comma-separated positive integers.
func ParseTriangle(s string) (Triangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Triangle{}, apperrors.ValidationError{
			Field:   "shape",
			Message: fmt.Sprintf("expected three comma-separated weights, got %q", s),
		}
	}
	var w [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Triangle{}, apperrors.ValidationError{
				Field:   "shape",
				Message: fmt.Sprintf("weight %q is not an integer", p),
			}
		}
		w[i] = v
	}
	t := Triangle{A: w[0], B: w[1], C: w[2]}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}
	return t, nil
}
