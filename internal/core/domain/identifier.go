// Package domain contains the core domain types for endotarter.
package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// identifierSeparator replaces spaces in canonical identifiers.
const identifierSeparator = "_"

// Identifier is the canonical key of a nation or region.
// Two identifiers are equal iff their canonical forms are equal.
type Identifier string

// Canonical converts a raw name into its canonical Identifier.
// It lower-cases the name and replaces every space with an underscore, so "My Nation",
// "my nation" and "my_nation" all map to the same key. Surrounding whitespace is not
// trimmed: " a" becomes "_a".
func Canonical(raw string) Identifier {
	lower := cases.Lower(language.Und).String(raw)
	return Identifier(strings.ReplaceAll(lower, " ", identifierSeparator))
}

// String returns the identifier as a plain string.
func (id Identifier) String() string {
	return string(id)
}

// IdentifierSet is an unordered set of canonical identifiers.
type IdentifierSet map[Identifier]struct{}

// NewIdentifierSet creates a set holding the given identifiers.
func NewIdentifierSet(ids ...Identifier) IdentifierSet {
	s := make(IdentifierSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// CanonicalSet canonicalizes every raw name and collects the result into a set.
// Empty names are skipped.
func CanonicalSet(raw []string) IdentifierSet {
	s := make(IdentifierSet, len(raw))
	for _, name := range raw {
		if id := Canonical(name); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Add inserts id into the set.
func (s IdentifierSet) Add(id Identifier) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IdentifierSet) Has(id Identifier) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s IdentifierSet) Len() int {
	return len(s)
}

// Intersect returns the identifiers present in both s and other.
func (s IdentifierSet) Intersect(other IdentifierSet) IdentifierSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(IdentifierSet, len(small))
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Difference returns the identifiers in s that are not in other.
func (s IdentifierSet) Difference(other IdentifierSet) IdentifierSet {
	out := make(IdentifierSet, len(s))
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s IdentifierSet) Clone() IdentifierSet {
	out := make(IdentifierSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the identifiers in ascending order.
func (s IdentifierSet) Sorted() []Identifier {
	out := make([]Identifier, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Strings returns the identifiers as sorted plain strings.
func (s IdentifierSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, id := range sorted {
		out[i] = string(id)
	}
	return out
}
