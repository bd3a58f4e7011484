package calibration

import "math"

// Sweep bounds, as decimal exponents.
const (
	LoosestExponent  = -6
	TightestExponent = -15
)

// GenerateTolerances returns one tolerance per decade from 10^from down to
// 10^to, loosest first.
func GenerateTolerances(from, to int) []float64 {
	if from < to {
		from, to = to, from
	}
	tolerances := make([]float64, 0, from-to+1)
	for e := from; e >= to; e-- {
		tolerances = append(tolerances, math.Pow10(e))
	}
	return tolerances
}

// DefaultTolerances is the full 1e-6 … 1e-15 sweep.
func DefaultTolerances() []float64 {
	return GenerateTolerances(LoosestExponent, TightestExponent)
}

// SafeBand returns the widest contiguous run of tolerances, starting at the
// loosest clean one, whose results had no mismatch. ok is false when every
// tolerance mismatched.
func SafeBand(results []Result) (loose, tight float64, ok bool) {
	start := -1
	for i, r := range results {
		if r.Clean() {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	end := start
	for end+1 < len(results) && results[end+1].Clean() {
		end++
	}
	return results[start].Tolerance, results[end].Tolerance, true
}
