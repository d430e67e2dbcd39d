// Package assert provides precondition assertions that panic on violation.
//
// The sorted containers use these assertions for fatal caller errors:
// indexed access outside [0, Len()), removing from an empty container, and
// slicing with an invalid range. These are programming errors, not runtime
// conditions to recover from, so they abort instead of returning a sentinel.
//
// Building with the assertions_disabled tag compiles the checks out. The Go
// runtime's own bounds checks still abort invalid slice accesses, so the
// containers never silently clamp or no-op.
package assert
