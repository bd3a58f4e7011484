package cevian

import (
	"errors"
	"fmt"
)

// maxCoeffBits bounds the cofactor coefficients converted to int64. The
// convolution in cevaDecider adds at most 16 products of a cofactor
// coefficient with a ±1 term, so 58 bits leaves headroom against overflow.
const maxCoeffBits = 58

var errInexactDivision = errors.New("polynomial division by x^d - 1 is not exact")

// poly is a dense integer polynomial, lowest degree first.
type poly []*coeff

func polyOne() poly { return poly{newCoeff(1)} }

// mulBinomial returns p·(x^d − 1).
func (p poly) mulBinomial(d int) poly {
	r := make(poly, len(p)+d)
	for j := range r {
		r[j] = newCoeff(0)
		if j-d >= 0 && j-d < len(p) {
			r[j].Add(r[j], p[j-d])
		}
		if j < len(p) {
			r[j].Sub(r[j], p[j])
		}
	}
	return r
}

// divBinomial returns p/(x^d − 1), failing if the division leaves a remainder.
// From p_j = r_{j−d} − r_j the quotient follows bottom-up as r_j = r_{j−d} − p_j.
func (p poly) divBinomial(d int) (poly, error) {
	if len(p) <= d {
		return nil, errInexactDivision
	}
	r := make(poly, len(p)-d)
	for j := range r {
		r[j] = newCoeff(0)
		if j-d >= 0 {
			r[j].Set(r[j-d])
		}
		r[j].Sub(r[j], p[j])
	}
	for j := len(r); j < len(p); j++ {
		want := newCoeff(0)
		if j-d >= 0 {
			want = r[j-d]
		}
		if p[j].Cmp(want) != 0 {
			return nil, errInexactDivision
		}
	}
	return r, nil
}

// mobius returns μ(k).
func mobius(k int) int {
	mu := 1
	for p := 2; p*p <= k; p++ {
		if k%p != 0 {
			continue
		}
		k /= p
		if k%p == 0 {
			return 0
		}
		mu = -mu
	}
	if k > 1 {
		mu = -mu
	}
	return mu
}

func divisors(m int) []int {
	var ds []int
	for d := 1; d <= m; d++ {
		if m%d == 0 {
			ds = append(ds, d)
		}
	}
	return ds
}

// mobiusProduct evaluates Π (x^d − 1)^{sign·μ(m/d)} over the divisors d of m,
// skipping d = m unless includeSelf is set. Multiplications are applied
// before divisions so every division is exact.
func mobiusProduct(m, sign int, includeSelf bool) (poly, error) {
	var mul, div []int
	for _, d := range divisors(m) {
		if d == m && !includeSelf {
			continue
		}
		switch sign * mobius(m/d) {
		case 1:
			mul = append(mul, d)
		case -1:
			div = append(div, d)
		}
	}

	p := polyOne()
	for _, d := range mul {
		p = p.mulBinomial(d)
	}
	for _, d := range div {
		var err error
		if p, err = p.divBinomial(d); err != nil {
			return nil, fmt.Errorf("m=%d, d=%d: %w", m, d, err)
		}
	}
	return p, nil
}

// Cyclotomic returns the coefficients of Φ_m, lowest degree first.
func Cyclotomic(m int) ([]int64, error) {
	p, err := mobiusProduct(m, 1, true)
	if err != nil {
		return nil, err
	}
	return p.int64s()
}

// CyclotomicCofactor returns the coefficients of (x^m − 1)/Φ_m, the product
// of Φ_d over the proper divisors d of m.
func CyclotomicCofactor(m int) ([]int64, error) {
	p, err := mobiusProduct(m, -1, false)
	if err != nil {
		return nil, err
	}
	return p.int64s()
}

func (p poly) int64s() ([]int64, error) {
	out := make([]int64, len(p))
	for i, c := range p {
		if c.BitLen() > maxCoeffBits {
			return nil, fmt.Errorf("coefficient %d of degree %d exceeds %d bits", i, len(p)-1, maxCoeffBits)
		}
		out[i] = c.Int64()
	}
	return out, nil
}
