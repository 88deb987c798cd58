package probeplot

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values, e.g. the column names of a header.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Missing returns the elements of want not in s, in the order of want.
func (s StringSet) Missing(want []string) []string {
	var missing []string
	for _, w := range want {
		if !s.Contains(w) {
			missing = append(missing, w)
		}
	}
	return missing
}
