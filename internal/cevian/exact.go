package cevian

import (
	"context"
	"fmt"
	"math"
)

// ExactCeva decides concurrency without a floating tolerance.
//
// With S = A+B+C and N = S·(n+1), every sub-angle is an integer multiple of
// π/N. Writing ζ = e^{iπ/N}, sin(aπ/N) = (ζ^a − ζ^{−a})/2i, so the Ceva
// condition sin a₁ sin b₁ sin c₁ = sin a₂ sin b₂ sin c₂ becomes P(ζ) = 0 for
// an integer polynomial P with at most 16 terms. ζ is a primitive root of
// order 2N, hence P(ζ) = 0 exactly when Φ_{2N} divides P, which holds exactly
// when P·Q ≡ 0 mod x^{2N} − 1 for the cofactor Q = (x^{2N} − 1)/Φ_{2N}.
//
// The floating inversion of TrigCeva is kept as a screen: only candidates
// within Options.Screen of a unit product are decided exactly.
type ExactCeva struct{}

// Name returns the method identifier.
func (ExactCeva) Name() string { return MethodExact }

// Calculate returns d_angle(n) for opts.Shape.
func (ExactCeva) Calculate(ctx context.Context, n int, opts Options) (Result, error) {
	opts, err := validateInput(n, opts)
	if err != nil {
		return Result{}, err
	}

	dec, err := newCevaDecider(opts.Shape, n)
	if err != nil {
		return Result{}, fmt.Errorf("building exact decider for n=%d: %w", n, err)
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
		for j := 1; j <= n; j++ {
			pij := rt.rho[0][i] * rt.rho[1][j]
			k0 := rt.invertC(1 / pij)
			for k := k0 - 1; k <= k0+1; k++ {
				if k < 1 || k > n || math.Abs(pij*rt.rho[2][k]-1) > opts.Screen {
					continue
				}
				res.Candidates++
				if dec.concurrent(i, j, k) {
					res.Count++
					if ws != nil {
						ws.Add(Triple{I: i, J: j, K: k})
					}
					break
				}
			}
		}
	}

	if ws != nil {
		res.Witnesses = ws.Triples()
	}
	return res, nil
}

// monomial is c·x^exp with exp reduced modulo the root order.
type monomial struct {
	exp int
	c   int64
}

// cevaDecider tests the Ceva identity exactly for one (shape, n). It keeps
// scratch buffers and must not be shared between goroutines.
type cevaDecider struct {
	order int // 2N
	n1    int // n+1
	w     [3]int
	q     []int64
	acc   []int64
	terms []monomial
}

func newCevaDecider(t Triangle, n int) (*cevaDecider, error) {
	order := 2 * t.Sum() * (n + 1)
	q, err := CyclotomicCofactor(order)
	if err != nil {
		return nil, err
	}
	return &cevaDecider{
		order: order,
		n1:    n + 1,
		w:     t.Weights(),
		q:     q,
		acc:   make([]int64, order),
		terms: make([]monomial, 0, 16),
	}, nil
}

// expand appends the eight monomials of sign·Π_t (x^{a_t} − x^{−a_t}).
func (d *cevaDecider) expand(dst []monomial, a [3]int, sign int64) []monomial {
	for mask := 0; mask < 8; mask++ {
		e, c := 0, sign
		for t := 0; t < 3; t++ {
			if mask&(1<<t) != 0 {
				e -= a[t]
				c = -c
			} else {
				e += a[t]
			}
		}
		e %= d.order
		if e < 0 {
			e += d.order
		}
		dst = append(dst, monomial{exp: e, c: c})
	}
	return dst
}

// concurrent reports whether cevians i, j, k (one per vertex) meet in a point.
func (d *cevaDecider) concurrent(i, j, k int) bool {
	idx := [3]int{i, j, k}
	var near, far [3]int
	for v := 0; v < 3; v++ {
		near[v] = idx[v] * d.w[v]
		far[v] = (d.n1 - idx[v]) * d.w[v]
	}
	d.terms = d.expand(d.terms[:0], near, 1)
	d.terms = d.expand(d.terms, far, -1)

	clear(d.acc)
	for _, m := range d.terms {
		for t, qc := range d.q {
			if qc == 0 {
				continue
			}
			pos := m.exp + t
			if pos >= d.order {
				pos -= d.order
			}
			d.acc[pos] += m.c * qc
		}
	}
	for _, v := range d.acc {
		if v != 0 {
			return false
		}
	}
	return true
}
