package probeplot

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	a.Add("Size")
	a.Add("Valid")
	a.Add("Number")
	a.Add("Valid")
	if len(a) != 3 {
		t.Errorf("Got a = %v", a)
	}
	if !a.Contains("Size") {
		t.Errorf("a dosn't contain Size")
	}
	if a.Contains("Duration") {
		t.Errorf("a contains Duration")
	}

	b := NewStringSetFrom([]string{"Size", "Size", "Valid"})
	if len(b) != 2 || !b.Contains("Size") || !b.Contains("Valid") {
		t.Errorf("Got b = %v", b)
	}
}

func TestStringSetMissing(t *testing.T) {
	header := NewStringSetFrom([]string{"Number", "Valid", "Size", "Chord"})
	missing := header.Missing(RequiredColumns)
	if len(missing) != 2 || missing[0] != ColVelocity || missing[1] != ColDuration {
		t.Errorf("Got missing = %v", missing)
	}

	full := NewStringSetFrom(RequiredColumns)
	if m := full.Missing(RequiredColumns); len(m) != 0 {
		t.Errorf("Got missing = %v", m)
	}
}
