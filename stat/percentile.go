package stat

import (
	"fmt"
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0 <= p <= 100) of data. The value
// is interpolated linearly between the two closest order statistics, with
// the k-th smallest value (k = 0..n-1) sitting at percentile 100*k/(n-1).
// Data is not modified.
func Percentile(data []float64, p float64) (float64, error) {
	qs, err := Percentiles(data, p)
	if err != nil {
		return math.NaN(), err
	}
	return qs[0], nil
}

// Percentiles is like Percentile for several p but sorts data only once.
func Percentiles(data []float64, ps ...float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	qs := make([]float64, len(ps))
	for i, p := range ps {
		if p < 0 || p > 100 || math.IsNaN(p) {
			return nil, fmt.Errorf("stat: percentile %g out of range [0,100]", p)
		}
		qs[i] = sortedPercentile(sorted, p)
	}
	return qs, nil
}

// sortedPercentile expects sorted to be sorted ascending and non-empty.
func sortedPercentile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p / 100
	lo := math.Floor(h)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
