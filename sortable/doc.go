// Package sortable provides wrapper types for primitive and common key types
// that implement the Sortable interface, enabling their use as elements of
// the sorted containers in this module.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common element types: [Int], [Int64],
// [Float64], [Byte], [String], [Natural], and [UUID]. These types are
// designed to work with the sorted containers in
// [github.com/amp-labs/amp-sorted/sorted].
//
// The Sortable interface extends [github.com/amp-labs/amp-sorted/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need sorted containers:
//
//	coll := sorted.New[sortable.Int](42, 10, 25)
//
//	// Elements are kept in sorted order: 10, 25, 42
//	for val := range coll.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering consistent with Equals: two values
// that are Equals must not order before one another. The containers rely on
// this to make binary-search lookups land on the right element.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. The containers using these types are not
// thread-safe and require external synchronization for concurrent access.
package sortable
