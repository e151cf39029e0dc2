// Package slices contains generic helpers for working with slices.
package slices

// Index returns the index of the first occurrence of v in s, or -1 if v is
// not present.
func Index[E comparable](s []E, v E) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present in s.
func Contains[E comparable](s []E, v E) bool {
	return Index(s, v) >= 0
}

// Equal reports whether a and b have the same elements in the same order.
// A nil slice and an empty slice are equal.
func Equal[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Uniq returns a new slice with duplicate elements removed, keeping the
// first occurrence of each element.
func Uniq[E comparable](s []E) []E {
	seen := make(map[E]bool, len(s))

	var out []E
	for _, e := range s {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
