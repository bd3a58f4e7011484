package orchestration

import "testing"

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if NewProgressAggregator(0) != nil {
		t.Error("NewProgressAggregator(0) should be nil")
	}
	agg := NewProgressAggregator(4)
	if agg == nil || agg.Total() != 4 {
		t.Fatalf("NewProgressAggregator(4) = %+v", agg)
	}
	if agg.Fraction() != 0 {
		t.Errorf("initial fraction = %f, want 0", agg.Fraction())
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(4)

	got := agg.Update(ProgressUpdate{N: 3, Total: 4})
	if got.N != 3 || got.Done != 1 || got.Fraction != 0.25 {
		t.Errorf("Update = %+v, want N=3 Done=1 Fraction=0.25", got)
	}
	for n := range 3 {
		got = agg.Update(ProgressUpdate{N: n + 1, Total: 4})
	}
	if got.Done != 4 || got.Fraction != 1 || got.ETA != 0 {
		t.Errorf("final Update = %+v, want Done=4 Fraction=1 ETA=0", got)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	for i := range 3 {
		ch <- ProgressUpdate{N: i + 1, Total: 3}
	}
	close(ch)
	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("channel still holds %d updates", len(ch))
	}
}
