package sorted

import (
	"iter"

	"github.com/amp-labs/amp-sorted/sortable"
)

// Container is the read-only surface shared by Collection and Slice: sorted
// random access plus forward iteration. Equal accepts any two Containers, so
// a Collection can be compared against a Slice directly.
type Container[T sortable.Sortable[T]] interface {
	Len() int
	At(index int) T
	Seq() iter.Seq[T]
}

var (
	_ Container[sortable.Int] = (*Collection[sortable.Int])(nil)
	_ Container[sortable.Int] = (*Slice[sortable.Int])(nil)
)

// Equal reports whether two sorted containers hold equal elements in the
// same order: false when the lengths differ, otherwise a positional pairwise
// comparison that short-circuits on the first mismatch. O(n). Equal is
// reflexive and symmetric.
func Equal[T sortable.Sortable[T]](a, b Container[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !a.At(i).Equals(b.At(i)) {
			return false
		}
	}

	return true
}
