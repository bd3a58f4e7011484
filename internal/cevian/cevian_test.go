package cevian

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/agbru/dangle/internal/errors"
)

// enumerators returns the two calculators that enumerate cevian triples.
func enumerators() []Calculator {
	return []Calculator{TrigCeva{}, ExactCeva{}}
}

func TestCalculate_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 0},
		{3, 7},
		{4, 0},
		{5, 13},
		{6, 0},
		{7, 19},
		{8, 0},
		{9, 37},
		{10, 0},
		{11, 31},
		{19, 67},
		{29, 97},
	}

	for _, calc := range enumerators() {
		for _, tt := range tests {
			res, err := calc.Calculate(context.Background(), tt.n, Options{})
			if err != nil {
				t.Fatalf("%s: d(%d) returned error: %v", calc.Name(), tt.n, err)
			}
			if res.Count != tt.want {
				t.Errorf("%s: d(%d) = %d, want %d", calc.Name(), tt.n, res.Count, tt.want)
			}
			if res.N != tt.n {
				t.Errorf("%s: Result.N = %d, want %d", calc.Name(), res.N, tt.n)
			}
		}
	}
}

// TestEnumerationMatchesRule is the acceptance check tying the enumeration
// to the closed form for every n up to the default bound.
func TestEnumerationMatchesRule(t *testing.T) {
	if testing.Short() {
		t.Skip("full range check skipped in short mode")
	}
	t.Parallel()
	ctx := context.Background()
	for n := 1; n <= DefaultMaxN; n++ {
		got, err := TrigCeva{}.Calculate(ctx, n, Options{})
		if err != nil {
			t.Fatalf("d(%d): %v", n, err)
		}
		want := 0
		if RuleApplies(n, Equilateral) {
			want = RuleValue(n)
		}
		if got.Count != want {
			t.Errorf("DIFF at n=%d: trig=%d, rule=%d", n, got.Count, want)
		}
	}
}

func TestExactMatchesTrig_FullRange(t *testing.T) {
	if testing.Short() {
		t.Skip("full range check skipped in short mode")
	}
	t.Parallel()
	ctx := context.Background()
	for n := 1; n <= DefaultMaxN; n += 7 {
		trig, err := TrigCeva{}.Calculate(ctx, n, Options{})
		if err != nil {
			t.Fatalf("trig d(%d): %v", n, err)
		}
		exact, err := ExactCeva{}.Calculate(ctx, n, Options{})
		if err != nil {
			t.Fatalf("exact d(%d): %v", n, err)
		}
		if trig.Count != exact.Count {
			t.Errorf("n=%d: trig=%d exact=%d", n, trig.Count, exact.Count)
		}
	}
}

func TestCalculate_Witnesses(t *testing.T) {
	t.Parallel()
	want := []Triple{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 2, 2}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}

	for _, calc := range enumerators() {
		t.Run(calc.Name(), func(t *testing.T) {
			t.Parallel()
			res, err := calc.Calculate(context.Background(), 3, Options{CollectWitnesses: true})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Witnesses) != len(want) {
				t.Fatalf("got %d witnesses %v, want %d", len(res.Witnesses), res.Witnesses, len(want))
			}
			for i := range want {
				if res.Witnesses[i] != want[i] {
					t.Errorf("witness %d = %v, want %v", i, res.Witnesses[i], want[i])
				}
			}
		})
	}
}

func TestCalculate_WitnessCountMatchesCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, calc := range enumerators() {
		for n := 1; n <= 40; n++ {
			counted, err := calc.Calculate(ctx, n, Options{})
			if err != nil {
				t.Fatal(err)
			}
			listed, err := calc.Calculate(ctx, n, Options{CollectWitnesses: true})
			if err != nil {
				t.Fatal(err)
			}
			if len(listed.Witnesses) != counted.Count {
				t.Errorf("%s n=%d: %d witnesses, count %d", calc.Name(), n, len(listed.Witnesses), counted.Count)
			}
			for _, w := range listed.Witnesses {
				if !w.InRange(n) {
					t.Errorf("%s n=%d: witness %v outside 1..n", calc.Name(), n, w)
				}
			}
		}
	}
}

func TestCalculate_EmptyWitnessList(t *testing.T) {
	t.Parallel()
	res, err := TrigCeva{}.Calculate(context.Background(), 2, Options{CollectWitnesses: true})
	if err != nil {
		t.Fatalf("n=2 should not fail: %v", err)
	}
	if res.Count != 0 {
		t.Errorf("d(2) = %d, want 0", res.Count)
	}
	if res.Witnesses == nil || len(res.Witnesses) != 0 {
		t.Errorf("expected empty non-nil witness list, got %#v", res.Witnesses)
	}
}

func TestCalculate_InvalidN(t *testing.T) {
	t.Parallel()
	for _, calc := range []Calculator{TrigCeva{}, ExactCeva{}, ClosedForm{}} {
		for _, n := range []int{0, -1, -200} {
			_, err := calc.Calculate(context.Background(), n, Options{})
			if err == nil {
				t.Errorf("%s: n=%d should fail", calc.Name(), n)
				continue
			}
			if !IsInvalidN(err) {
				t.Errorf("%s: n=%d error %v should be an invalid-n validation error", calc.Name(), n, err)
			}
		}
	}
}

func TestCalculate_InvalidShape(t *testing.T) {
	t.Parallel()
	_, err := TrigCeva{}.Calculate(context.Background(), 3, Options{Shape: Triangle{A: 1, B: 0, C: 2}})
	var ve apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "shape" {
		t.Errorf("expected shape validation error, got %v", err)
	}
}

func TestCalculate_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, calc := range enumerators() {
		_, err := calc.Calculate(ctx, 10, Options{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", calc.Name(), err)
		}
	}
}

func TestClosedForm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		n       int
		shape   Triangle
		want    int
		outside bool
	}{
		{"n=1", 1, Equilateral, 1, false},
		{"n=3", 3, Equilateral, 7, false},
		{"n=9 bonus", 9, Equilateral, 37, false},
		{"n=199 bonus", 199, Equilateral, 607, false},
		{"scaled equilateral", 5, Triangle{2, 2, 2}, 13, false},
		{"even n", 4, Equilateral, 0, true},
		{"scalene", 5, Triangle{2, 3, 4}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := ClosedForm{}.Calculate(ctx, tt.n, Options{Shape: tt.shape})
			if tt.outside {
				if !errors.Is(err, ErrOutOfDomain) {
					t.Errorf("expected ErrOutOfDomain, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Count != tt.want {
				t.Errorf("rule(%d) = %d, want %d", tt.n, res.Count, tt.want)
			}
		})
	}
}

func TestScalene_IncenterAlwaysPresent(t *testing.T) {
	t.Parallel()
	shape := Triangle{2, 3, 4}
	for _, calc := range enumerators() {
		res, err := calc.Calculate(context.Background(), 1, Options{Shape: shape})
		if err != nil {
			t.Fatal(err)
		}
		if res.Count != 1 {
			t.Errorf("%s: bisectors of %s should meet once, got %d", calc.Name(), shape, res.Count)
		}
		for n := 3; n <= 15; n += 2 {
			res, err := calc.Calculate(context.Background(), n, Options{Shape: shape, CollectWitnesses: true})
			if err != nil {
				t.Fatal(err)
			}
			m := (n + 1) / 2
			found := false
			for _, w := range res.Witnesses {
				if w == (Triple{m, m, m}) {
					found = true
				}
			}
			if !found {
				t.Errorf("%s n=%d: incenter triple (%d, %d, %d) missing from %v", calc.Name(), n, m, m, m, res.Witnesses)
			}
		}
	}
}

func TestScalene_TrigMatchesExact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, shape := range []Triangle{{2, 3, 4}, {1, 2, 3}, {3, 4, 5}, {1, 1, 4}} {
		for n := 1; n <= 24; n++ {
			trig, err := TrigCeva{}.Calculate(ctx, n, Options{Shape: shape})
			if err != nil {
				t.Fatal(err)
			}
			exact, err := ExactCeva{}.Calculate(ctx, n, Options{Shape: shape})
			if err != nil {
				t.Fatal(err)
			}
			if trig.Count != exact.Count {
				t.Errorf("shape %s n=%d: trig=%d exact=%d", shape, n, trig.Count, exact.Count)
			}
		}
	}
}

func TestTriple_String(t *testing.T) {
	t.Parallel()
	if got := (Triple{1, 2, 3}).String(); got != "(1, 2, 3)" {
		t.Errorf("String() = %q", got)
	}
}
