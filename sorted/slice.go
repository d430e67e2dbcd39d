package sorted

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
)

// Slice is a sorted container over a contiguous sub-range of elements. It
// supports the identical operation set as Collection and maintains the same
// sort invariant, but it usually originates from slicing a Collection, and
// merging it always promotes the result back to a Collection.
//
// A Slice owns its storage. When produced by Collection.Slice it starts as a
// snapshot copy of the sub-range; it is independently mutable from then on
// and never observes mutations of the container it came from.
type Slice[T sortable.Sortable[T]] struct {
	elems []T
}

// NewSlice creates a standalone Slice holding the given values, copied and
// sorted once, O(n log n).
func NewSlice[T sortable.Sortable[T]](values ...T) *Slice[T] {
	return &Slice[T]{elems: sortNew(values)}
}

// newSliceFromSorted is the trusted-sorted fast path: elems is a sub-range of
// a container's already-sorted storage, so construction only copies,
// O(len(elems)), with no re-sort.
func newSliceFromSorted[T sortable.Sortable[T]](elems []T) *Slice[T] {
	return &Slice[T]{elems: slices.Clone(elems)}
}

// Len returns the number of elements in the slice.
func (s *Slice[T]) Len() int {
	return len(s.elems)
}

// IsEmpty returns true if the slice holds no elements.
func (s *Slice[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// First returns the smallest element, or None when the slice is empty.
func (s *Slice[T]) First() optional.Value[T] {
	if len(s.elems) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.elems[0])
}

// Last returns the largest element, or None when the slice is empty.
func (s *Slice[T]) Last() optional.Value[T] {
	if len(s.elems) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.elems[len(s.elems)-1])
}

// Contains reports whether value is stored in the slice, O(log n).
func (s *Slice[T]) Contains(value T) bool {
	return indexOf(s.elems, value).NonEmpty()
}

// IndexOf returns the index of the first occurrence of value within the
// slice, or None when the slice does not contain it, O(log n). Indexes are
// relative to the slice, not to any container it was cut from.
func (s *Slice[T]) IndexOf(value T) optional.Value[int] {
	return indexOf(s.elems, value)
}

// Insert adds each value in argument order at its insertion index, O(n) per
// value after the O(log n) search. Large batches should prefer InsertSeq.
func (s *Slice[T]) Insert(values ...T) {
	for _, value := range values {
		s.elems = insertOne(s.elems, value)
	}
}

// InsertSeq adds every element of seq by appending the batch and re-sorting
// once, O(n log n). This is the bulk path.
func (s *Slice[T]) InsertSeq(seq iter.Seq[T]) {
	s.elems = insertAll(s.elems, seq)
}

// Remove deletes the first occurrence of value and returns the stored
// element, or None when the slice does not contain it. O(n).
func (s *Slice[T]) Remove(value T) optional.Value[T] {
	elems, removed := removeValue(s.elems, value)
	s.elems = elems

	return removed
}

// RemoveAt deletes and returns the element at index. The slice must be
// non-empty and index must be in [0, Len()); violating either is a fatal
// precondition violation that panics.
func (s *Slice[T]) RemoveAt(index int) T {
	assert.NotEmpty(len(s.elems), "RemoveAt on empty slice")
	assert.ValidIndex(index, len(s.elems))

	removed := s.elems[index]
	s.elems = slices.Delete(s.elems, index, index+1)

	return removed
}

// Clear removes all elements. With keepCapacity the backing storage is
// retained for subsequent insertions.
func (s *Slice[T]) Clear(keepCapacity bool) {
	if keepCapacity {
		clear(s.elems)
		s.elems = s.elems[:0]

		return
	}

	s.elems = nil
}

// Merge returns a new Collection holding every element of the slice plus the
// given values, without mutating the slice. Merging always promotes to the
// owning container type.
func (s *Slice[T]) Merge(values ...T) *Collection[T] {
	return s.MergeSeq(slices.Values(values))
}

// MergeSeq returns a new Collection holding the multiset union of the slice
// and seq, without mutating the slice. O((n+m) log(n+m)).
func (s *Slice[T]) MergeSeq(seq iter.Seq[T]) *Collection[T] {
	return &Collection[T]{elems: insertAll(slices.Clone(s.elems), seq)}
}

// At returns the element at index. Index must be in [0, Len()); an
// out-of-range index is a fatal precondition violation that panics.
func (s *Slice[T]) At(index int) T {
	assert.ValidIndex(index, len(s.elems))

	return s.elems[index]
}

// Slice returns a Slice over the half-open sub-range [start, end) of the
// receiver, with the same snapshot semantics as Collection.Slice.
func (s *Slice[T]) Slice(start, end int) *Slice[T] {
	assert.ValidRange(start, end, len(s.elems))

	return newSliceFromSorted(s.elems[start:end])
}

// Seq returns a forward, restartable iterator over the elements in ascending
// order. Iterating does not mutate the slice.
func (s *Slice[T]) Seq() iter.Seq[T] {
	return slices.Values(s.elems)
}

// Values returns a copy of the elements in ascending order.
func (s *Slice[T]) Values() []T {
	return slices.Clone(s.elems)
}

// Clone returns an independent copy of the slice.
func (s *Slice[T]) Clone() *Slice[T] {
	return &Slice[T]{elems: slices.Clone(s.elems)}
}

// Equals reports whether the receiver and other hold equal elements in the
// same order. O(n), short-circuits on the first mismatch.
func (s *Slice[T]) Equals(other *Slice[T]) bool {
	return compare.PairwiseEqual(s.elems, other.elems)
}

// String renders the slice the way fmt renders the underlying ordered slice.
func (s *Slice[T]) String() string {
	return fmt.Sprint(s.elems)
}
