package metrics

import (
	"math"
	"testing"
)

func TestNewHistogram(t *testing.T) {
	h := NewHistogram([]float64{10, 5, 1}) // unsorted on purpose

	if h.Count() != 0 {
		t.Errorf("expected empty histogram, got %d observations", h.Count())
	}

	h.Observe(3)
	summary := h.Summary()
	// Buckets must be sorted ascending: 1, 5, 10, +Inf
	if summary.Buckets[0].UpperBound != 1 {
		t.Errorf("expected first bucket bound 1, got %g", summary.Buckets[0].UpperBound)
	}
	if summary.Buckets[1].Count != 1 {
		t.Errorf("expected observation in bucket le=5, got count %d", summary.Buckets[1].Count)
	}
}

func TestHistogramObserve(t *testing.T) {
	h := NewHistogram([]float64{1, 5, 10})

	h.Observe(0.5)
	h.Observe(3)
	h.Observe(7)
	h.Observe(100) // overflow

	if h.Count() != 4 {
		t.Errorf("expected 4 observations, got %d", h.Count())
	}
	if h.Mean() != (0.5+3+7+100)/4 {
		t.Errorf("unexpected mean %g", h.Mean())
	}

	summary := h.Summary()
	if summary.Min != 0.5 {
		t.Errorf("expected min 0.5, got %g", summary.Min)
	}
	if summary.Max != 100 {
		t.Errorf("expected max 100, got %g", summary.Max)
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := NewHistogram([]float64{1, 5, 10})

	h.Observe(0.5)
	h.Observe(3)
	h.Observe(7)
	h.Observe(100)

	summary := h.Summary()
	wantCounts := []uint64{1, 2, 3, 4}
	for i, want := range wantCounts {
		if summary.Buckets[i].Count != want {
			t.Errorf("bucket %d cumulative count = %d, want %d", i, summary.Buckets[i].Count, want)
		}
	}
	last := summary.Buckets[len(summary.Buckets)-1]
	if !math.IsInf(last.UpperBound, 1) {
		t.Errorf("expected +Inf overflow bucket, got %g", last.UpperBound)
	}
}

func TestHistogramEmptySummary(t *testing.T) {
	h := NewHistogram([]float64{1, 2})

	summary := h.Summary()
	if summary.Count != 0 {
		t.Errorf("expected count 0, got %d", summary.Count)
	}
	if len(summary.Buckets) != 0 {
		t.Errorf("expected no buckets for empty histogram, got %d", len(summary.Buckets))
	}
}

func TestHistogramBoundaryValues(t *testing.T) {
	h := NewHistogram([]float64{5, 10})

	// A value equal to a bound lands in that bound's bucket.
	h.Observe(5)

	summary := h.Summary()
	if summary.Buckets[0].Count != 1 {
		t.Errorf("expected value 5 in bucket le=5, got count %d", summary.Buckets[0].Count)
	}
}

func TestHistogramReset(t *testing.T) {
	h := NewHistogram([]float64{1, 5})

	h.Observe(3)
	h.Observe(7)
	if h.Count() != 2 {
		t.Fatal("observations not recorded")
	}

	h.Reset()

	if h.Count() != 0 {
		t.Errorf("expected 0 observations after reset, got %d", h.Count())
	}
	if h.Mean() != 0 {
		t.Errorf("expected mean 0 after reset, got %g", h.Mean())
	}
}

func TestHistogramConcurrency(t *testing.T) {
	h := NewHistogram([]float64{1, 10, 100})

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				h.Observe(float64(j))
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if h.Count() != 800 {
		t.Errorf("expected 800 observations, got %d", h.Count())
	}
}
