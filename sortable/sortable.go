// Package sortable provides the ordering constraint used by the sorted
// containers, together with wrapper types that make primitive and common key
// types sortable.
package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is the element constraint of the sorted containers. It combines
// equality (via compare.Comparable) with a strict-weak ordering (LessThan).
//
// Implementations must keep the two methods consistent: for any a and b,
// a.Equals(b) implies that neither a.LessThan(b) nor b.LessThan(a) holds.
// The containers rely on this to resolve binary-search candidates.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison built from LessThan. It returns a
// negative number when a orders before b, a positive number when a orders
// after b, and zero otherwise. It adapts Sortable types to the comparison
// functions expected by the slices package (slices.SortFunc,
// slices.SortStableFunc, slices.IsSortedFunc).
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
