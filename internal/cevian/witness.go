package cevian

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Triple identifies one cevian from each vertex: the I-th from A, the J-th
// from B and the K-th from C, each in 1..n.
type Triple struct {
	I, J, K int
}

// String renders the triple as "(i, j, k)".
func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.I, t.J, t.K)
}

// InRange reports whether every index is an interior cevian for n.
func (t Triple) InRange(n int) bool {
	return t.I >= 1 && t.I <= n && t.J >= 1 && t.J <= n && t.K >= 1 && t.K <= n
}

// compareTriples orders triples lexicographically.
func compareTriples(a, b interface{}) int {
	x, y := a.(Triple), b.(Triple)
	switch {
	case x.I != y.I:
		return x.I - y.I
	case x.J != y.J:
		return x.J - y.J
	default:
		return x.K - y.K
	}
}

// witnessSet accumulates distinct triples in lexicographic order.
type witnessSet struct {
	set *treeset.Set
}

func newWitnessSet() *witnessSet {
	return &witnessSet{set: treeset.NewWith(compareTriples)}
}

func (w *witnessSet) Add(t Triple) {
	w.set.Add(t)
}

func (w *witnessSet) Len() int {
	return w.set.Size()
}

// Triples returns the sorted witnesses; never nil.
func (w *witnessSet) Triples() []Triple {
	out := make([]Triple, 0, w.set.Size())
	for _, v := range w.set.Values() {
		out = append(out, v.(Triple))
	}
	return out
}
