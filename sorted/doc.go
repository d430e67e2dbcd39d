// Package sorted provides an always-sorted generic collection and a slice
// type over a contiguous sub-range of one, both backed by flat storage with
// array-like random access.
//
// # Overview
//
// [Collection] owns an ordered sequence of elements kept in non-decreasing
// order at all times. Every mutation funnels through a single binary search
// that locates the lower-bound insertion position for a value, so lookups are
// O(log n), single insertions and removals are O(n) for the element shift,
// and bulk insertion re-sorts once in O(n log n). Duplicate elements are
// permitted and preserved; lookups always resolve to the first occurrence.
//
// [Slice] covers the identical operation set over its own contiguous sorted
// storage. Slicing a Collection takes a snapshot: the slice does not observe
// later mutations of the container it came from. Merging a Slice always
// promotes the result to a Collection.
//
// Element types implement [github.com/amp-labs/amp-sorted/sortable.Sortable];
// ready-made wrappers for common types live in the sortable package.
//
// # Usage
//
//	coll := sorted.New[sortable.Int](12)
//	coll.Insert(0, 5, 10)
//	coll.InsertSeq(slices.Values([]sortable.Int{15, 20, 25}))
//
//	if idx, ok := coll.IndexOf(10).Get(); ok {
//	    fmt.Println("10 lives at", idx)
//	}
//
// Lookups that can come up empty return an
// [github.com/amp-labs/amp-sorted/optional.Value]. Indexed access with an
// out-of-range index is a programming error and panics; see the assert
// package.
//
// # Thread Safety
//
// Neither container type is safe for concurrent use. Callers sharing a
// container across goroutines must serialize access externally.
package sorted
