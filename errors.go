package probeplot

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these so callers can use errors.Is.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
	ErrInvalidFlag   = errors.New("validity flag must be 0 or 1")
	ErrEventOrder    = errors.New("event numbers must be increasing")
	ErrNoValidEvents = errors.New("no valid events")
	ErrNonPositive   = errors.New("non-positive value")
	ErrOutputExists  = errors.New("output file exists")
	ErrCorpusSealed  = errors.New("corpus is sealed")
	ErrEmptyCorpus   = errors.New("corpus is empty")
	ErrInvalidConfig = errors.New("invalid config")
)

// ColumnError reports a required column absent from an event file header.
type ColumnError struct {
	Path   string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.Path, e.Column)
}

func (e *ColumnError) Unwrap() error { return ErrMissingColumn }

// RowError reports a data row which cannot be parsed. Line is the line
// number in the file, the header being line 1.
type RowError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s: bad value %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error { return []error{ErrMalformedRow, e.Err} }

// DomainError reports a sample value outside the domain of a scale
// transform, e.g. a zero size fed to log10.
type DomainError struct {
	Condition string
	Scale     string
	Index     int
	Value     float64
	Err       error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("condition %q: %s scale: sample %d = %g: %v",
		e.Condition, e.Scale, e.Index, e.Value, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// ConditionError wraps any failure while processing one condition.
type ConditionError struct {
	Ordinal int
	Label   string
	Err     error
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("condition %d (%s): %v", e.Ordinal, e.Label, e.Err)
}

func (e *ConditionError) Unwrap() error { return e.Err }

// Reason classifies err into a short, stable token suitable for log fields
// and metric labels.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrMalformedRow):
		return "malformed_row"
	case errors.Is(err, ErrNoValidEvents):
		return "no_valid_events"
	case errors.Is(err, ErrNonPositive):
		return "non_positive"
	case errors.Is(err, ErrOutputExists):
		return "output_exists"
	}
	return "other"
}
