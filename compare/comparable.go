// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
//
// The sorted containers in this module use Equals to confirm lookups: a binary
// search narrows a probe down to a single candidate position, and Equals decides
// whether the element found there is actually the probe value.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// PairwiseEqual reports whether two slices have the same length and equal
// elements at every position. It short-circuits on the first mismatch.
func PairwiseEqual[T Comparable[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i, elem := range a {
		if !elem.Equals(b[i]) {
			return false
		}
	}

	return true
}
