package probeplot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NamePool hands out artifact file names which are unique within one run.
// A name claimed a second time gets a "-2", "-3", ... suffix before its
// extension, so the outcome only depends on the order of claims.
type NamePool struct {
	pool []string
}

func NewNamePool() *NamePool {
	return &NamePool{pool: make([]string, 0, 16)}
}

// Claim returns name, or the first free suffixed variant of it, and marks
// the result as taken.
func (np *NamePool) Claim(name string) string {
	if np.find(name) == -1 {
		np.pool = append(np.pool, name)
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if np.find(candidate) == -1 {
			np.pool = append(np.pool, candidate)
			return candidate
		}
	}
}

// find returns the index of s or -1.
func (np *NamePool) find(s string) int {
	for i, t := range np.pool {
		if t == s {
			return i
		}
	}
	return -1
}

var titleReplacer = strings.NewReplacer(" + ", "_", " (", "_(", " ", "-")

// SanitizeTitle turns a figure title into a file name component: " + "
// becomes "_", " (" becomes "_(", blanks become "-" and characters which are
// unsafe in file names become "_".
func SanitizeTitle(title string) string {
	s := titleReplacer.Replace(strings.TrimSpace(title))
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '\t', '\n', '\r':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, s)
	if s == "" {
		return "untitled"
	}
	return s
}
