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

// Collection is a generic container whose elements are always kept in
// non-decreasing order. The backing storage is exclusively owned by the
// collection; mutation goes through Insert and Remove so the sort invariant
// can never be broken from outside. Duplicates are permitted and preserved.
//
// The zero value is an empty collection ready for use; New and Collect are
// the usual constructors.
type Collection[T sortable.Sortable[T]] struct {
	elems []T
}

// New creates a Collection holding the given values. With no arguments it
// creates an empty collection; otherwise the values are copied and sorted
// once, O(n log n).
func New[T sortable.Sortable[T]](values ...T) *Collection[T] {
	return &Collection[T]{elems: sortNew(values)}
}

// Collect creates a Collection from any finite sequence, sorting the drained
// elements once, O(n log n). The sequence may itself come from another sorted
// container's Seq.
func Collect[T sortable.Sortable[T]](seq iter.Seq[T]) *Collection[T] {
	elems := slices.Collect(seq)
	slices.SortStableFunc(elems, sortable.Compare[T])

	return &Collection[T]{elems: elems}
}

// Len returns the number of elements in the collection.
func (c *Collection[T]) Len() int {
	return len(c.elems)
}

// IsEmpty returns true if the collection holds no elements.
func (c *Collection[T]) IsEmpty() bool {
	return len(c.elems) == 0
}

// First returns the smallest element, or None when the collection is empty.
func (c *Collection[T]) First() optional.Value[T] {
	if len(c.elems) == 0 {
		return optional.None[T]()
	}

	return optional.Some(c.elems[0])
}

// Last returns the largest element, or None when the collection is empty.
func (c *Collection[T]) Last() optional.Value[T] {
	if len(c.elems) == 0 {
		return optional.None[T]()
	}

	return optional.Some(c.elems[len(c.elems)-1])
}

// Contains reports whether value is stored in the collection, O(log n).
func (c *Collection[T]) Contains(value T) bool {
	return indexOf(c.elems, value).NonEmpty()
}

// IndexOf returns the index of the first occurrence of value, or None when
// the collection does not contain it, O(log n).
func (c *Collection[T]) IndexOf(value T) optional.Value[int] {
	return indexOf(c.elems, value)
}

// Insert adds each value in argument order at its insertion index. Each
// single insertion costs O(n) after the O(log n) search, so inserting k
// values costs O(k·n); large batches should prefer InsertSeq.
func (c *Collection[T]) Insert(values ...T) {
	for _, value := range values {
		c.elems = insertOne(c.elems, value)
	}
}

// InsertSeq adds every element of seq by appending the batch and re-sorting
// the whole collection as one O(n log n) pass. This is the bulk path; it is
// cheaper than many single Insert calls for large batches.
func (c *Collection[T]) InsertSeq(seq iter.Seq[T]) {
	c.elems = insertAll(c.elems, seq)
}

// Remove deletes the first occurrence of value and returns the stored
// element, or None when the collection does not contain it. O(n) for the
// shift after removal.
func (c *Collection[T]) Remove(value T) optional.Value[T] {
	elems, removed := removeValue(c.elems, value)
	c.elems = elems

	return removed
}

// RemoveAt deletes and returns the element at index. The collection must be
// non-empty and index must be in [0, Len()); violating either is a fatal
// precondition violation that panics.
func (c *Collection[T]) RemoveAt(index int) T {
	assert.NotEmpty(len(c.elems), "RemoveAt on empty collection")
	assert.ValidIndex(index, len(c.elems))

	removed := c.elems[index]
	c.elems = slices.Delete(c.elems, index, index+1)

	return removed
}

// Clear removes all elements. With keepCapacity the backing storage is
// retained for subsequent insertions; the flag has no other observable
// effect.
func (c *Collection[T]) Clear(keepCapacity bool) {
	if keepCapacity {
		clear(c.elems)
		c.elems = c.elems[:0]

		return
	}

	c.elems = nil
}

// Merge returns a new Collection holding every element of the receiver plus
// the given values, duplicates preserved, without mutating the receiver.
func (c *Collection[T]) Merge(values ...T) *Collection[T] {
	return c.MergeSeq(slices.Values(values))
}

// MergeSeq returns a new Collection holding the multiset union of the
// receiver and seq, without mutating the receiver. O((n+m) log(n+m)).
func (c *Collection[T]) MergeSeq(seq iter.Seq[T]) *Collection[T] {
	return &Collection[T]{elems: insertAll(slices.Clone(c.elems), seq)}
}

// At returns the element at index. Index must be in [0, Len()); an
// out-of-range index is a fatal precondition violation that panics. There is
// no corresponding write access: mutation must go through Insert and Remove
// so the sort invariant holds.
func (c *Collection[T]) At(index int) T {
	assert.ValidIndex(index, len(c.elems))

	return c.elems[index]
}

// Slice returns a Slice over the half-open sub-range [start, end). The range
// must satisfy 0 <= start <= end <= Len() or the call panics. The slice is a
// snapshot: it owns a copy of the sub-range and does not observe later
// mutations of the collection.
func (c *Collection[T]) Slice(start, end int) *Slice[T] {
	assert.ValidRange(start, end, len(c.elems))

	return newSliceFromSorted(c.elems[start:end])
}

// Seq returns a forward, restartable iterator over the elements in ascending
// order. Iterating does not mutate the collection. The collection must not be
// mutated while a single pass is in progress.
func (c *Collection[T]) Seq() iter.Seq[T] {
	return slices.Values(c.elems)
}

// Values returns a copy of the elements in ascending order.
func (c *Collection[T]) Values() []T {
	return slices.Clone(c.elems)
}

// Clone returns an independent copy of the collection. Mutating the clone
// never affects the receiver, and vice versa.
func (c *Collection[T]) Clone() *Collection[T] {
	return &Collection[T]{elems: slices.Clone(c.elems)}
}

// Equals reports whether the receiver and other hold equal elements in the
// same order. O(n), short-circuits on the first mismatch.
func (c *Collection[T]) Equals(other *Collection[T]) bool {
	return compare.PairwiseEqual(c.elems, other.elems)
}

// String renders the collection the way fmt renders the underlying ordered
// slice, e.g. "[1 2 3]".
func (c *Collection[T]) String() string {
	return fmt.Sprint(c.elems)
}
