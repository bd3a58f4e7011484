package cevian

import "math"

// ratioTable holds the Ceva ratios ρ_V(k) = sin(k·φ_V)/sin((n+1−k)·φ_V) for
// the three vertices, where φ_V is the vertex angle divided by n+1. Slices
// are 1-based; index 0 is unused.
type ratioTable struct {
	n     int
	angle [3]float64
	step  [3]float64
	rho   [3][]float64
}

func newRatioTable(t Triangle, n int) *ratioTable {
	rt := &ratioTable{n: n, angle: t.Angles()}
	for v := 0; v < 3; v++ {
		step := rt.angle[v] / float64(n+1)
		rho := make([]float64, n+1)
		for k := 1; k <= n; k++ {
			rho[k] = math.Sin(float64(k)*step) / math.Sin(float64(n+1-k)*step)
		}
		rt.step[v] = step
		rt.rho[v] = rho
	}
	return rt
}

// invertC returns the cevian index at C whose ratio is nearest to r.
// Solving sin x / sin(C−x) = r gives tan x = r·sin C / (1 + r·cos C), and
// atan2 keeps x inside (0, C) for any r > 0. The result may fall outside
// 1..n; callers must range-check it.
func (rt *ratioTable) invertC(r float64) int {
	c := rt.angle[2]
	x := math.Atan2(r*math.Sin(c), 1+r*math.Cos(c))
	return int(math.Round(x / rt.step[2]))
}

// product returns ρ_A(i)·ρ_B(j)·ρ_C(k).
func (rt *ratioTable) product(i, j, k int) float64 {
	return rt.rho[0][i] * rt.rho[1][j] * rt.rho[2][k]
}
