// Package util contains small generic helpers shared across the recognizer
// compiler and its front ends: an ordered string set and the sorted-keys
// helper used whenever map iteration order needs to be made deterministic
// for diagnostics, emitted header text, or test fixtures.
package util

import (
	"sort"
	"strings"
)

// StringSet is a map[string]bool with convenience methods for the small,
// frequently-copied sets of state/symbol names the recognizer compiler
// passes around (Q, Σ, Γ, F and their working-set variants).
type StringSet map[string]bool

// NewStringSet returns a new StringSet optionally seeded from existing
// membership maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf returns a StringSet containing every element of sl.
func StringSetOf(sl []string) StringSet {
	s := NewStringSet()
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	for k := range s {
		newS[k] = true
	}
	return newS
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

func (s StringSet) Remove(value string) {
	delete(s, value)
}

func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Empty() bool {
	return s.Len() == 0
}

// Difference returns the elements of s that are not in o.
func (s StringSet) Difference(o StringSet) StringSet {
	newSet := NewStringSet()
	for k := range s {
		if !o.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

// Elements returns the members of s in unspecified order.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}

// Ordered returns the members of s sorted alphabetically.
func (s StringSet) Ordered() []string {
	els := s.Elements()
	sort.Strings(els)
	return els
}

// String shows the contents of the set in alphabetical order, so output is
// stable across runs (diagnostics and tests both rely on this).
func (s StringSet) String() string {
	var sb strings.Builder
	ordered := s.Ordered()

	sb.WriteRune('{')
	for i, v := range ordered {
		sb.WriteString(v)
		if i+1 < len(ordered) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted alphabetically. Used anywhere a
// map needs to be walked in an order that doesn't vary between runs of the
// same process, such as when generating header files.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
