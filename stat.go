package probeplot

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/vdobler/probeplot/stat"
)

// Summary holds the descriptive statistics of one condition. Sizes are in
// µm, durations in ms.
type Summary struct {
	Total int // number of events
	Valid int // number of events with the validity flag set

	// Rate is the percentage of valid events, truncated.
	Rate int

	// Statistics of the valid size sample. StdSize is the population
	// standard deviation.
	SizeSamples int
	MeanSize    float64
	StdSize     float64
	Q1, Q3      float64

	// Mean chord durations. NaN if the subset is empty.
	MeanDurationAll     float64
	MeanDurationValid   float64
	MeanDurationInvalid float64
}

// ValidationRate formats Rate like "87%".
func (s Summary) ValidationRate() string {
	return fmt.Sprintf("%d%%", s.Rate)
}

// Summarize computes the Summary of events and their partition. It fails
// with ErrNoValidEvents if no event is valid or the size sample is empty.
func Summarize(events []Event, part Partition) (Summary, error) {
	s := Summary{
		Total: len(events),
		Valid: ValidMask(events).Count(),
	}
	if s.Valid == 0 {
		return Summary{}, ErrNoValidEvents
	}
	if len(part.ValidSizes) == 0 {
		return Summary{}, fmt.Errorf("%w in size sample", ErrNoValidEvents)
	}
	s.Rate = s.Valid * 100 / s.Total

	var err error
	sizes := stats.Float64Data(part.ValidSizes)
	s.SizeSamples = sizes.Len()
	if s.MeanSize, err = stats.Mean(sizes); err != nil {
		return Summary{}, err
	}
	if s.StdSize, err = stats.StandardDeviationPopulation(sizes); err != nil {
		return Summary{}, err
	}
	qs, err := stat.Percentiles(part.ValidSizes, 25, 75)
	if err != nil {
		return Summary{}, err
	}
	s.Q1, s.Q3 = qs[0], qs[1]

	s.MeanDurationAll = meanMillis(Durations(events))
	s.MeanDurationValid = meanMillis(part.ValidDurations)
	s.MeanDurationInvalid = meanMillis(part.InvalidDurations)
	return s, nil
}

// meanMillis returns the mean of the durations d, given in seconds, in
// milliseconds, or NaN for no durations.
func meanMillis(d []float64) float64 {
	m, err := stats.Mean(d)
	if err != nil {
		return math.NaN()
	}
	return m * 1000
}

// Millis converts durations from seconds to milliseconds.
func Millis(d []float64) []float64 {
	ms := make([]float64, len(d))
	for i, x := range d {
		ms[i] = x * 1000
	}
	return ms
}
