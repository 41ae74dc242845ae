package util

import (
	"math"
	"testing"
)

func TestDegreeStats(t *testing.T) {
	t.Run("Uniform", func(t *testing.T) {
		stats := NewDegreeStats([]int{3, 3, 3, 3})
		if stats.Median != 3 || stats.Mean != 3 || stats.Concentration != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("Skewed", func(t *testing.T) {
		degrees := []int{10, 0, 0, 0}
		stats := NewDegreeStats(degrees)
		if stats.Median != 0 || stats.Max != 10 || stats.Min != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if stats.Concentration != 1 {
			t.Errorf("expected concentration to be capped at 1, got %f", stats.Concentration)
		}
		if degrees[0] != 10 {
			t.Error("input must not be modified")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if stats := NewDegreeStats(nil); stats != (DegreeStats{}) {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})
}

func TestLengthHistogram(t *testing.T) {
	h := NewLengthHistogram()
	if s := h.Summary(); s != (LengthSummary{}) {
		t.Errorf("expected empty summary, got %+v", s)
	}

	for _, length := range []int{5, 100, 5000} {
		h.AddSample(length)
	}

	if h.Count() != 3 {
		t.Errorf("expected 3 samples, got %d", h.Count())
	}
	if h.Average() != 1701 {
		t.Errorf("expected average 1701, got %d", h.Average())
	}
	if p := h.PercentileEstimate(50); p != 140 {
		t.Errorf("expected p50 140, got %d", p)
	}
	if p := h.PercentileEstimate(99); p != 8192 {
		t.Errorf("expected p99 8192, got %d", p)
	}
	if p := h.PercentileEstimate(101); p != 0 {
		t.Errorf("expected 0 for an invalid percentile, got %d", p)
	}

	boundaries, percentages := h.Distribution()
	if len(percentages) != len(boundaries)+1 {
		t.Fatalf("expected %d buckets, got %d", len(boundaries)+1, len(percentages))
	}
	var total float64
	for _, p := range percentages {
		total += p
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("expected percentages to add up to 100, got %f", total)
	}
}
