package cevian

// ─────────────────────────────────────────────────────────────────────────────
// Numerical Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTolerance is the acceptance bound on |ρ_A·ρ_B·ρ_C − 1| used by the
	// floating path.
	//
	// Each ratio is a quotient of two sines evaluated to within a few ulps, so
	// the product of three ratios carries a relative error of roughly 1e-15
	// times the conditioning of the smallest sine. For n ≤ 10³ the smallest
	// sub-angle is above 1e-4 rad and the accumulated error stays below
	// 1e-13, while the nearest non-concurrent products observed up to n = 200
	// sit many orders of magnitude farther from 1. 1e-12 keeps two decades of
	// margin on both sides.
	DefaultTolerance = 1e-12

	// DefaultScreen is the loose bound used by the exact path to pick the
	// candidates it decides with integer arithmetic. It only has to be larger
	// than the floating error; false positives are rejected exactly.
	DefaultScreen = 1e-6

	// DefaultMaxN is the upper bound of the default batch (n = 1..200).
	DefaultMaxN = 200
)

// Calculator names registered in the default factory.
const (
	MethodTrig  = "trig"
	MethodExact = "exact"
	MethodRule  = "rule"
)
