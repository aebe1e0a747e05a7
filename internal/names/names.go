// Package names implements the fresh-variable-name supply used when
// capture-avoiding substitution needs a binder that cannot collide with a
// given set of names.
package names

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is a collection of variable names, compared after NFC normalization
// so that visually identical identifiers spelled with different Unicode
// combining sequences are never treated as distinct.
type Set map[string]bool

// NewSet builds a Set from the given names.
func NewSet(ns ...string) Set {
	s := make(Set, len(ns))
	for _, n := range ns {
		s.Add(n)
	}
	return s
}

// Add inserts a name into the set (in place) and returns the set.
func (s Set) Add(n string) Set {
	s[Normalize(n)] = true
	return s
}

// Contains reports whether n (after normalization) is in the set.
func (s Set) Contains(n string) bool {
	return s[Normalize(n)]
}

// Union returns a new set containing every name in a or b.
func Union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for n := range a {
		out[n] = true
	}
	for n := range b {
		out[n] = true
	}
	return out
}

// Without returns a copy of s with n removed.
func Without(s Set, n string) Set {
	out := make(Set, len(s))
	norm := Normalize(n)
	for k := range s {
		if k != norm {
			out[k] = true
		}
	}
	return out
}

// Normalize applies Unicode NFC normalization, the form used throughout
// this module wherever variable names are compared or inserted into a set.
func Normalize(n string) string {
	return norm.NFC.String(n)
}

// baseAlphabet is the ordered sequence u, v, w, x, y, z, a, b, ..., t — a
// rotation of the Latin alphabet starting at 'u', length 26.
var baseAlphabet = rotatedAlphabet()

func rotatedAlphabet() []string {
	const az = "abcdefghijklmnopqrstuvwxyz"
	rotated := az[20:] + az[:20] // "uvwxyz" + "abcdefghijklmnopqrst"
	out := make([]string, 0, len(rotated))
	for _, r := range rotated {
		out = append(out, string(r))
	}
	return out
}

// Fresh returns the first name in the base-alphabet-plus-primes enumeration
// (round 0: u, v, ..., t; round 1: u', v', ..., t'; round 2: u'', ...) that
// is not a member of used.
func Fresh(used Set) string {
	normUsed := make(map[string]bool, len(used))
	for n := range used {
		normUsed[Normalize(n)] = true
	}
	for round := 0; ; round++ {
		suffix := strings.Repeat("'", round)
		for _, base := range baseAlphabet {
			candidate := base + suffix
			if !normUsed[candidate] {
				return candidate
			}
		}
	}
}
