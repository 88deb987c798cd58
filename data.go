package probeplot

import "fmt"

// Event is one bubble detected by the fiber probe.
type Event struct {
	Number   int64
	Valid    bool
	Velocity float64 // as stored by the analyzer
	Size     float64 // µm
	Duration float64 // s
}

// Column names in the header of an event file.
const (
	ColNumber   = "Number"
	ColValid    = "Valid"
	ColVelocity = "Veloc"
	ColSize     = "Size"
	ColDuration = "Duration"
)

// RequiredColumns lists the columns every event file must provide, in the
// order they are checked.
var RequiredColumns = []string{ColNumber, ColValid, ColVelocity, ColSize, ColDuration}

// Condition is one experimental run: a single event file together with the
// names used to present it.
type Condition struct {
	// Ordinal is the position of the condition in the run, starting at 0.
	Ordinal int

	// Label is the short identifier used as boxplot tick label.
	Label string

	// Title is the descriptive name used in figure headers.
	Title string

	// Path of the event file.
	Path string

	// Events in file order.
	Events []Event
}

// Column extracts the named numeric column from events. The validity flag
// is returned as 0 or 1.
func Column(events []Event, name string) ([]float64, error) {
	var value func(e Event) float64
	switch name {
	case ColNumber:
		value = func(e Event) float64 { return float64(e.Number) }
	case ColValid:
		value = func(e Event) float64 {
			if e.Valid {
				return 1
			}
			return 0
		}
	case ColVelocity:
		value = func(e Event) float64 { return e.Velocity }
	case ColSize:
		value = func(e Event) float64 { return e.Size }
	case ColDuration:
		value = func(e Event) float64 { return e.Duration }
	default:
		return nil, fmt.Errorf("no such column %q", name)
	}

	col := make([]float64, len(events))
	for i, e := range events {
		col[i] = value(e)
	}
	return col, nil
}

// Sizes returns the size column of events.
func Sizes(events []Event) []float64 {
	col, _ := Column(events, ColSize)
	return col
}

// Durations returns the duration column of events in seconds.
func Durations(events []Event) []float64 {
	col, _ := Column(events, ColDuration)
	return col
}
