package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/dangle/internal/cevian"
)

func TestCollector_ObserveResult(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.ObserveResult("trig", cevian.Result{N: 3, Count: 7, Candidates: 9}, time.Millisecond)
	c.ObserveResult("trig", cevian.Result{N: 5, Count: 13, Candidates: 25}, time.Millisecond)
	c.ObserveResult("exact", cevian.Result{N: 3, Count: 7, Candidates: 7}, time.Millisecond)

	if got := testutil.ToFloat64(c.calculations.WithLabelValues("trig")); got != 2 {
		t.Errorf("trig calculations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.witnesses.WithLabelValues("trig")); got != 20 {
		t.Errorf("trig witnesses = %v, want 20", got)
	}
	if got := testutil.ToFloat64(c.candidates.WithLabelValues("exact")); got != 7 {
		t.Errorf("exact candidates = %v, want 7", got)
	}
}

func TestCollector_ObserveInconsistency(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.ObserveInconsistency()
	c.ObserveInconsistency()
	if got := testutil.ToFloat64(c.inconsistencies); got != 2 {
		t.Errorf("inconsistencies = %v, want 2", got)
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	t.Parallel()
	var c *Collector
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("nil collector panicked: %v", r)
		}
	}()
	c.ObserveResult("trig", cevian.Result{}, 0)
	c.ObserveInconsistency()
}

func TestCollector_WriteTextfile(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.ObserveResult("trig", cevian.Result{N: 1, Count: 1, Candidates: 1}, time.Microsecond)

	path := filepath.Join(t.TempDir(), "dangle.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(content)

	for _, want := range []string{
		`dangle_calculations_total{method="trig"} 1`,
		"dangle_calculation_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("textfile should contain %q", want)
		}
	}
}
