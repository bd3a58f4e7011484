package cevian

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// countFor is a shorthand returning d(n) for shape with the trig calculator.
func countFor(t *testing.T, shape Triangle, n int) int {
	res, err := TrigCeva{}.Calculate(context.Background(), n, Options{Shape: shape})
	if err != nil {
		t.Logf("d(%d) for %s failed: %v", n, shape, err)
		return -1
	}
	return res.Count
}

// TestCountBounds_PropertyBased checks 0 ≤ d(n) ≤ n² for random n.
func TestCountBounds_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("0 <= d(n) <= n^2", prop.ForAll(
		func(n int) bool {
			c := countFor(t, Equilateral, n)
			return c >= 0 && c <= n*n
		},
		gen.IntRange(1, 150),
	))

	properties.TestingRun(t)
}

// TestOddRule_PropertyBased checks the closed form against the enumeration
// on random odd n.
func TestOddRule_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("rule(n) = d(n) for odd n", prop.ForAll(
		func(half int) bool {
			n := 2*half + 1
			return countFor(t, Equilateral, n) == RuleValue(n)
		},
		gen.IntRange(0, 99),
	))

	properties.Property("d(n) = 0 for even n", prop.ForAll(
		func(half int) bool {
			return countFor(t, Equilateral, 2*half) == 0
		},
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t)
}

// TestRelabelling_PropertyBased verifies the count does not depend on which
// vertex is called A: rotating or mirroring the weights maps witnesses
// bijectively onto witnesses.
func TestRelabelling_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("d(n) invariant under vertex relabelling", prop.ForAll(
		func(a, b, c, n int) bool {
			shape := Triangle{A: a, B: b, C: c}
			base := countFor(t, shape, n)
			return base >= 0 &&
				countFor(t, shape.Rotate(), n) == base &&
				countFor(t, shape.Rotate().Rotate(), n) == base &&
				countFor(t, shape.Mirror(), n) == base
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}

// TestWitnessCount_PropertyBased checks that listing and counting agree.
func TestWitnessCount_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("len(witnesses) = d(n)", prop.ForAll(
		func(n int) bool {
			res, err := ExactCeva{}.Calculate(context.Background(), n, Options{CollectWitnesses: true})
			if err != nil {
				return false
			}
			return len(res.Witnesses) == res.Count && res.Count == countFor(t, Equilateral, n)
		},
		gen.IntRange(1, 80),
	))

	properties.TestingRun(t)
}
