//go:build gmp

package cevian

import "github.com/ncw/gmp"

// coeff is backed by GMP when built with -tags gmp.
type coeff = gmp.Int

func newCoeff(v int64) *coeff { return gmp.NewInt(v) }
