package probeplot

// Mask selects events: mask[i] reports whether events[i] is selected.
type Mask []bool

// Where evaluates pred on every event.
func Where(events []Event, pred func(Event) bool) Mask {
	m := make(Mask, len(events))
	for i, e := range events {
		m[i] = pred(e)
	}
	return m
}

// And combines m and o element-wise. Both masks must have been built on the
// same events.
func (m Mask) And(o Mask) Mask {
	if len(m) != len(o) {
		panic("probeplot: And of masks with different lengths")
	}
	r := make(Mask, len(m))
	for i := range m {
		r[i] = m[i] && o[i]
	}
	return r
}

// Not inverts m element-wise.
func (m Mask) Not() Mask {
	r := make(Mask, len(m))
	for i, b := range m {
		r[i] = !b
	}
	return r
}

// Count of selected events.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// Filter returns the selected events.
func (m Mask) Filter(events []Event) []Event {
	if len(m) != len(events) {
		panic("probeplot: mask and events differ in length")
	}
	sel := make([]Event, 0, m.Count())
	for i, e := range events {
		if m[i] {
			sel = append(sel, e)
		}
	}
	return sel
}

// ValidMask selects events with the validity flag set.
func ValidMask(events []Event) Mask {
	return Where(events, func(e Event) bool { return e.Valid })
}

// LargerThan selects events with a size strictly above threshold.
func LargerThan(events []Event, threshold float64) Mask {
	return Where(events, func(e Event) bool { return e.Size > threshold })
}

// Partition holds the samples of one condition split by the validity flag.
type Partition struct {
	ValidSizes       []float64 // µm, possibly restricted by a size threshold
	ValidDurations   []float64 // s
	InvalidDurations []float64 // s
}

// Classify splits events by their validity flag. A positive minSize
// restricts the size sample to valid events larger than minSize; the
// duration samples are always split by the flag alone.
func Classify(events []Event, minSize float64) Partition {
	valid := ValidMask(events)
	sized := valid
	if minSize > 0 {
		sized = valid.And(LargerThan(events, minSize))
	}
	return Partition{
		ValidSizes:       Sizes(sized.Filter(events)),
		ValidDurations:   Durations(valid.Filter(events)),
		InvalidDurations: Durations(valid.Not().Filter(events)),
	}
}
