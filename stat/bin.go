// Package stat provides the small set of descriptive statistics probeplot
// needs: equal-width binning, linear-interpolation percentiles and the
// components of a box and whisker plot.
package stat

import (
	"errors"
	"math"
)

var (
	// ErrEmpty is returned when a statistic is requested on no data.
	ErrEmpty = errors.New("stat: empty input")

	// ErrNoBins is returned for a bin count below one.
	ErrNoBins = errors.New("stat: bin count must be positive")
)

// Bin is one histogram bin covering [Lo,Hi). The last bin of a histogram
// also contains its upper edge.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Width of the bin.
func (b Bin) Width() float64 { return b.Hi - b.Lo }

// Edges returns n+1 equally spaced bin edges spanning the full range of all
// values in samples. Several samples share one set of edges, which is what
// a stacked histogram needs. A degenerate range is widened by 0.5 on both
// sides.
func Edges(n int, samples ...[]float64) ([]float64, error) {
	if n < 1 {
		return nil, ErrNoBins
	}

	min, max := math.Inf(+1), math.Inf(-1)
	seen := 0
	for _, sample := range samples {
		for _, x := range sample {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
			seen++
		}
	}
	if seen == 0 {
		return nil, ErrEmpty
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}

	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[n] = max // no rounding drift on the last edge
	return edges, nil
}

// Histogram counts the values of data into the bins delimited by edges.
// Values outside [edges[0], edges[len(edges)-1]] are not counted.
func Histogram(edges []float64, data []float64) []Bin {
	if len(edges) < 2 {
		return nil
	}
	n := len(edges) - 1
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo, bins[i].Hi = edges[i], edges[i+1]
	}

	lo, hi := edges[0], edges[n]
	width := (hi - lo) / float64(n)
	for _, x := range data {
		if x < lo || x > hi {
			continue
		}
		b := int((x - lo) / width)
		if b >= n {
			b = n - 1
		}
		// Guard against the division landing one bin off an edge.
		for b > 0 && x < bins[b].Lo {
			b--
		}
		for b < n-1 && x >= bins[b].Hi {
			b++
		}
		bins[b].Count++
	}
	return bins
}
