package probeplot

import "math"

// ScaleTransform maps sample values onto the scale of a plot axis.
type ScaleTransform struct {
	Name string

	// Trans transforms a single value.
	Trans func(x float64) float64

	// Inside reports whether x is in the domain of Trans. A nil Inside
	// accepts every value.
	Inside func(x float64) bool

	// Err is wrapped by a DomainError for values outside the domain.
	Err error

	// Label is the axis label of a size axis on this scale.
	Label string
}

var IdentityScale = ScaleTransform{
	Name:  "identity",
	Trans: func(x float64) float64 { return x },
	Label: "Size (µm)",
}

var Log10Scale = ScaleTransform{
	Name:   "log10",
	Trans:  math.Log10,
	Inside: func(x float64) bool { return x > 0 },
	Err:    ErrNonPositive,
	Label:  "log10 Size (µm)",
}

// Apply transforms all of xs into a new slice. The first value outside the
// domain aborts with a *DomainError; Condition is left for the caller.
func (t *ScaleTransform) Apply(xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		if t.Inside != nil && !t.Inside(x) {
			return nil, &DomainError{Scale: t.Name, Index: i, Value: x, Err: t.Err}
		}
		ys[i] = t.Trans(x)
	}
	return ys, nil
}
