package sorted

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
)

// insertionIndex returns the lower-bound position for value in elems, which
// must already be sorted in non-decreasing order. The result is in
// [0, len(elems)]: the first position where value can be placed without
// breaking order, or len(elems) when value belongs after the last element.
// If value already occurs, the result is the index of its first occurrence.
//
// O(log n) time, no allocation. Both container types guarantee the sorted
// precondition before calling; an unsorted input yields a meaningless index.
func insertionIndex[T sortable.Sortable[T]](elems []T, value T) int {
	if len(elems) == 0 {
		return 0
	}

	low, high := 0, len(elems)-1

	for low < high {
		mid := low + (high-low)/2
		if elems[mid].LessThan(value) {
			low = mid + 1
		} else {
			high = mid
		}
	}

	if !elems[low].LessThan(value) {
		return low
	}

	return len(elems)
}

// indexOf resolves value to the index of its first occurrence in elems, or
// None when elems does not contain it. The insertion index alone is not
// enough: it may point past the end, or at a different element that merely
// sorts at the same position, so the candidate is confirmed with Equals.
func indexOf[T sortable.Sortable[T]](elems []T, value T) optional.Value[int] {
	idx := insertionIndex(elems, value)
	if idx < len(elems) && elems[idx].Equals(value) {
		return optional.Some(idx)
	}

	return optional.None[int]()
}

// insertOne splices value into elems at its insertion index and returns the
// grown slice. O(n) for the element shift after the O(log n) search.
func insertOne[T sortable.Sortable[T]](elems []T, value T) []T {
	return slices.Insert(elems, insertionIndex(elems, value), value)
}

// insertAll appends every element of seq and re-sorts the whole slice as one
// pass. For large batches this is cheaper than repeated insertOne calls. The
// sort is stable so a batch of equal elements keeps its argument order.
func insertAll[T sortable.Sortable[T]](elems []T, seq iter.Seq[T]) []T {
	elems = slices.AppendSeq(elems, seq)
	slices.SortStableFunc(elems, sortable.Compare[T])

	return elems
}

// removeValue deletes the first occurrence of value from elems. It returns
// the shrunk slice and the removed element, or None when value is absent.
func removeValue[T sortable.Sortable[T]](elems []T, value T) ([]T, optional.Value[T]) {
	idx, found := indexOf(elems, value).Get()
	if !found {
		return elems, optional.None[T]()
	}

	removed := elems[idx]

	return slices.Delete(elems, idx, idx+1), optional.Some(removed)
}

// sortNew clones values into freshly sorted storage for a new container.
func sortNew[T sortable.Sortable[T]](values []T) []T {
	elems := slices.Clone(values)
	slices.SortStableFunc(elems, sortable.Compare[T])

	return elems
}
