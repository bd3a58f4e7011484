package cevian

import (
	"context"
	"math"
)

// TrigCeva counts concurrent triples with floating-point trigonometric Ceva.
//
// For each of the n² pairs (i, j) the required ratio at C is 1/(ρ_A(i)ρ_B(j));
// inverting the ratio analytically yields the single candidate k, which is
// accepted when the full product is within Options.Tolerance of 1. The ratio
// at C is strictly increasing in k, so no pair has more than one solution.
type TrigCeva struct{}

// Name returns the method identifier.
func (TrigCeva) Name() string { return MethodTrig }

// Calculate returns d_angle(n) for opts.Shape.
func (TrigCeva) Calculate(ctx context.Context, n int, opts Options) (Result, error) {
	opts, err := validateInput(n, opts)
	if err != nil {
		return Result{}, err
	}

	rt := newRatioTable(opts.Shape, n)
	res := Result{N: n}
	var ws *witnessSet
	if opts.CollectWitnesses {
		ws = newWitnessSet()
	}

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ri := rt.rho[0][i]
		for j := 1; j <= n; j++ {
			pij := ri * rt.rho[1][j]
			k := rt.invertC(1 / pij)
			if k < 1 || k > n {
				continue
			}
			res.Candidates++
			if math.Abs(pij*rt.rho[2][k]-1) <= opts.Tolerance {
				res.Count++
				if ws != nil {
					ws.Add(Triple{I: i, J: j, K: k})
				}
			}
		}
	}

	if ws != nil {
		res.Witnesses = ws.Triples()
	}
	return res, nil
}
