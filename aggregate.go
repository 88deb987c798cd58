package probeplot

import (
	"errors"
	"fmt"
)

// Sample is the size sample of one condition on both boxplot scales.
type Sample struct {
	Ordinal  int
	Label    string
	Title    string
	Sizes    []float64
	LogSizes []float64
}

// NewSample copies sizes and transforms them to log10. A non-positive size
// yields a *DomainError naming the condition.
func NewSample(cond *Condition, sizes []float64) (Sample, error) {
	logs, err := Log10Scale.Apply(sizes)
	if err != nil {
		var de *DomainError
		if errors.As(err, &de) {
			de.Condition = cond.Label
		}
		return Sample{}, err
	}
	linear := make([]float64, len(sizes))
	copy(linear, sizes)
	return Sample{
		Ordinal:  cond.Ordinal,
		Label:    cond.Label,
		Title:    cond.Title,
		Sizes:    linear,
		LogSizes: logs,
	}, nil
}

// Corpus collects the valid size samples of all processed conditions, in
// processing order, for the cross-condition boxplots. Sizes[i] and
// LogSizes[i] always belong to Labels[i]. Labels need not be unique.
type Corpus struct {
	Ordinals []int
	Labels   []string
	Titles   []string
	Sizes    [][]float64
	LogSizes [][]float64

	sealed bool
}

// Add validates the size sample of cond and appends it. A failing Add
// leaves c unchanged.
func (c *Corpus) Add(cond *Condition, sizes []float64) error {
	if c.sealed {
		return ErrCorpusSealed
	}
	s, err := NewSample(cond, sizes)
	if err != nil {
		return err
	}
	return c.Append(s)
}

// Append adds a sample built by NewSample.
func (c *Corpus) Append(s Sample) error {
	if c.sealed {
		return ErrCorpusSealed
	}
	c.Ordinals = append(c.Ordinals, s.Ordinal)
	c.Labels = append(c.Labels, s.Label)
	c.Titles = append(c.Titles, s.Title)
	c.Sizes = append(c.Sizes, s.Sizes)
	c.LogSizes = append(c.LogSizes, s.LogSizes)
	return nil
}

// Len is the number of conditions in c.
func (c *Corpus) Len() int { return len(c.Labels) }

// Seal makes c immutable; later calls to Add and Append fail.
func (c *Corpus) Seal() { c.sealed = true }

// Samples returns the samples of c on the given scale.
func (c *Corpus) Samples(scale *ScaleTransform) ([][]float64, error) {
	switch scale.Name {
	case IdentityScale.Name:
		return c.Sizes, nil
	case Log10Scale.Name:
		return c.LogSizes, nil
	}
	return nil, fmt.Errorf("corpus has no samples on scale %q", scale.Name)
}
