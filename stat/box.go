package stat

import (
	"math"
	"sort"
)

// DefaultWhisker is the usual whisker reach in units of the IQR.
const DefaultWhisker = 1.5

// Box holds the components of a box and whisker plot.
//
// Q1, Median and Q3 use the same interpolation as Percentile. Low and High
// are the most extreme data points within Whisker*IQR of the box; everything
// beyond is an outlier.
type Box struct {
	N                        int
	Min, Low, Q1, Median, Q3 float64
	High, Max                float64
	Outliers                 []float64
}

// IQR is the interquartile range Q3-Q1.
func (b Box) IQR() float64 { return b.Q3 - b.Q1 }

// NewBox computes the box and whisker components of data. A whisker <= 0
// selects DefaultWhisker. Data is not modified.
func NewBox(data []float64, whisker float64) (Box, error) {
	n := len(data)
	if n == 0 {
		return Box{}, ErrEmpty
	}
	if whisker <= 0 {
		whisker = DefaultWhisker
	}

	d := make([]float64, n)
	copy(d, data)
	sort.Float64s(d)

	var b Box
	b.N = n
	b.Min, b.Max = d[0], d[n-1]
	b.Q1 = sortedPercentile(d, 25)
	b.Median = sortedPercentile(d, 50)
	b.Q3 = sortedPercentile(d, 75)

	iqr := b.IQR()
	lo, hi := b.Q1-whisker*iqr, b.Q3+whisker*iqr
	b.Low, b.High = math.Inf(+1), math.Inf(-1)
	for _, y := range d {
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
			continue
		}
		if y < b.Low {
			b.Low = y
		}
		if y > b.High {
			b.High = y
		}
	}
	return b, nil
}
