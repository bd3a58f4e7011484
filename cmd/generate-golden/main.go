// Command generate-golden regenerates the golden d_angle table used by the
// cevian tests. Values come from the exact method, so the file can check the
// floating method independently.
//
// Usage (from the module root):
//
//	go run ./cmd/generate-golden -max-n 200
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/agbru/dangle/internal/cevian"
)

// goldenFile is the on-disk format of internal/cevian/testdata/golden.json.
type goldenFile struct {
	Shape  string `json:"shape"`
	Method string `json:"method"`
	Values []int  `json:"values"`
}

func main() {
	out := flag.String("out", "internal/cevian/testdata/golden.json", "Output path.")
	maxN := flag.Int("max-n", cevian.DefaultMaxN, "Largest n to include.")
	flag.Parse()

	golden, err := buildGolden(context.Background(), *maxN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(golden, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d values to %s\n", len(golden.Values), *out)
}

// buildGolden computes d_angle(1..maxN) on the equilateral triangle with the
// exact method.
func buildGolden(ctx context.Context, maxN int) (goldenFile, error) {
	calc := cevian.ExactCeva{}
	g := goldenFile{
		Shape:  cevian.Equilateral.String(),
		Method: calc.Name(),
		Values: make([]int, 0, maxN),
	}
	for n := 1; n <= maxN; n++ {
		res, err := calc.Calculate(ctx, n, cevian.Options{Shape: cevian.Equilateral})
		if err != nil {
			return g, fmt.Errorf("n=%d: %w", n, err)
		}
		g.Values = append(g.Values, res.Count)
	}
	return g, nil
}
