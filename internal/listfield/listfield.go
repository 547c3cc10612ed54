// Package listfield implements the parsing grammar for delimiter-packed
// compound cells: bus lists and conversion-factor lists encoded as a single
// delimited string. The grammar has two rules: split-and-trim, then
// broadcast-if-singleton against an expected count.
package listfield

import (
	"strconv"
	"strings"
)

// Splitter splits compound cells on a configurable set of separators.
// Component sheets commonly pack multiple buses into one cell using either a
// semicolon or a pipe.
type Splitter struct {
	separators []rune
}

// NewSplitter creates a splitter over the given separators. With no arguments
// it behaves like Default.
func NewSplitter(separators ...rune) Splitter {
	if len(separators) == 0 {
		return Default()
	}
	return Splitter{separators: separators}
}

// Default returns the standard grammar accepting ';' and '|'.
func Default() Splitter {
	return Splitter{separators: []rune{';', '|'}}
}

// Split breaks a compound cell into trimmed, non-empty elements. A cell
// without any separator yields a single element; a blank cell yields none.
func (s Splitter) Split(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		for _, sep := range s.separators {
			if r == sep {
				return true
			}
		}
		return false
	})
	elements := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			elements = append(elements, trimmed)
		}
	}
	return elements
}

// Factors parses a compound cell of numeric conversion factors. Tokens that
// do not parse as numbers are replaced by 1.0 and reported back so the caller
// can record a diagnostic; a blank cell yields no factors.
func (s Splitter) Factors(raw string) (factors []float64, invalid []string) {
	for _, token := range s.Split(raw) {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			invalid = append(invalid, token)
			f = 1.0
		}
		factors = append(factors, f)
	}
	return factors, invalid
}

// Broadcast reconciles a factor list against the expected bus count: an exact
// match passes through, a single scalar is repeated for every bus, and any
// other combination is not reconcilable.
func Broadcast(factors []float64, count int) ([]float64, bool) {
	switch {
	case len(factors) == count:
		return factors, true
	case len(factors) == 1 && count > 1:
		broadcast := make([]float64, count)
		for i := range broadcast {
			broadcast[i] = factors[0]
		}
		return broadcast, true
	default:
		return nil, false
	}
}

// Ones returns a factor list of the given length filled with 1.0, the default
// when a factor cell is absent.
func Ones(count int) []float64 {
	ones := make([]float64, count)
	for i := range ones {
		ones[i] = 1.0
	}
	return ones
}
