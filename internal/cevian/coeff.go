//go:build !gmp

package cevian

import "math/big"

// coeff is the arbitrary-precision integer used while building cyclotomic
// cofactors. Build with -tags gmp to switch to GMP.
type coeff = big.Int

func newCoeff(v int64) *coeff { return big.NewInt(v) }
