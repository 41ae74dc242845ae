package util

import (
	"math"
	"sync"
)

// ----------------------------------------------------------------------------
// Helper functions
// ----------------------------------------------------------------------------

type Stats struct {
	StdDeviation float64 `json:"std_deviation"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	MinMaxRatio  float64 `json:"min_max_ratio"`
}

// NewStats computes the standard deviation, minimum, and maximum values
// from an array of float64 values.
func NewStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	minV, maxV := values[0], values[0]

	var sum float64
	for _, v := range values {
		sum += v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	mean := sum / float64(len(values))

	// population standard deviation
	var sumSquaredDiffs float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiffs += diff * diff
	}
	stdDev := math.Sqrt(sumSquaredDiffs / float64(len(values)))

	minMaxRatio := 1.0
	if maxV > 0 {
		minMaxRatio = minV / maxV
	}

	return Stats{
		StdDeviation: stdDev,
		Min:          minV,
		Max:          maxV,
		Mean:         mean,
		MinMaxRatio:  minMaxRatio,
	}
}

// NewIntStats is a shorthand for NewStats on integer samples like degrees
func NewIntStats(values []int) Stats {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return NewStats(floats)
}

// DegreeStats describes how follow relationships are spread over users
type DegreeStats struct {
	Stats
	Median int `json:"median"`
	// Concentration is 0 if every user has the same degree and approaches 1
	// if few users hold most relationships.
	Concentration float64 `json:"concentration"`
}

// NewDegreeStats computes degree statistics. The input is not modified.
func NewDegreeStats(degrees []int) DegreeStats {
	stats := NewIntStats(degrees)
	if len(degrees) == 0 {
		return DegreeStats{Stats: stats}
	}

	sorted := append([]int(nil), degrees...)
	insertionSort(sorted)

	// coefficient of variation, capped at 1
	var cv float64
	if stats.Mean > 0 {
		cv = math.Min(1.0, stats.StdDeviation/stats.Mean)
	}

	return DegreeStats{
		Stats:         stats,
		Median:        sorted[len(sorted)/2],
		Concentration: cv,
	}
}

func insertionSort(values []int) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}

// ----------------------------------------------------------------------------
// LengthHistogram
// ----------------------------------------------------------------------------

// LengthHistogram tracks the distribution of text lengths (e.g. message
// bodies) in exponentially growing buckets.
type LengthHistogram struct {
	mutex      sync.RWMutex
	boundaries []int   // upper bucket boundaries (inclusive)
	buckets    []int64 // count of samples per bucket
	count      int64
	sum        int64
}

// NewLengthHistogram creates a histogram covering lengths from a few
// characters up to a few kilobytes
func NewLengthHistogram() *LengthHistogram {
	boundaries := []int{8, 16, 32, 64, 140, 280, 512, 1024, 4096}
	return &LengthHistogram{
		boundaries: boundaries,
		buckets:    make([]int64, len(boundaries)+1), // +1 for larger values
	}
}

// AddSample adds a length sample to the histogram
//
// Thread-safe: This method is safe for concurrent use
func (h *LengthHistogram) AddSample(length int) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	bucket := len(h.boundaries)
	for i, boundary := range h.boundaries {
		if length <= boundary {
			bucket = i
			break
		}
	}

	h.buckets[bucket]++
	h.count++
	h.sum += int64(length)
}

// Count returns the total number of samples
//
// Thread-safe: This method is safe for concurrent use
func (h *LengthHistogram) Count() int64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.count
}

// Average returns the average length across all samples
//
// Thread-safe: This method is safe for concurrent use
func (h *LengthHistogram) Average() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.count == 0 {
		return 0
	}
	return int(h.sum / h.count)
}

// PercentileEstimate returns the upper boundary of the bucket containing the
// given percentile (0-100). Samples larger than the last boundary are
// estimated as twice the last boundary.
//
// Thread-safe: This method is safe for concurrent use
func (h *LengthHistogram) PercentileEstimate(percentile int) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.count == 0 || percentile < 0 || percentile > 100 {
		return 0
	}

	target := int64(math.Ceil(float64(h.count) * float64(percentile) / 100.0))
	cumulative := int64(0)
	for i, count := range h.buckets {
		cumulative += count
		if cumulative >= target {
			if i < len(h.boundaries) {
				return h.boundaries[i]
			}
			return h.boundaries[len(h.boundaries)-1] * 2
		}
	}

	return int(h.sum / h.count)
}

// Distribution returns the bucket boundaries and the percentage of samples
// in each bucket. The percentage slice has one more element than the
// boundaries, holding all samples above the last boundary.
//
// Thread-safe: This method is safe for concurrent use
func (h *LengthHistogram) Distribution() ([]int, []float64) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	percentages := make([]float64, len(h.buckets))
	if h.count == 0 {
		return h.boundaries, percentages
	}
	for i, count := range h.buckets {
		percentages[i] = float64(count) * 100.0 / float64(h.count)
	}
	return h.boundaries, percentages
}

// LengthSummary is a serializable snapshot of a LengthHistogram
type LengthSummary struct {
	Count   int64 `json:"count"`
	Average int   `json:"average"`
	P50     int   `json:"p50"`
	P90     int   `json:"p90"`
	P99     int   `json:"p99"`
}

// Summary returns a snapshot of the histogram
func (h *LengthHistogram) Summary() LengthSummary {
	return LengthSummary{
		Count:   h.Count(),
		Average: h.Average(),
		P50:     h.PercentileEstimate(50),
		P90:     h.PercentileEstimate(90),
		P99:     h.PercentileEstimate(99),
	}
}
