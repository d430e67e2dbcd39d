package sortable

import (
	"facette.io/natsort"
)

// Natural is a sortable string type ordered using natural sort order: digit
// runs embedded in the string compare numerically rather than byte-lexically,
// so "file2" orders before "file10". Equality is plain string equality.
// Distinct strings that tie under natural order ("a01" and "a1") are kept
// apart byte-lexically, so the order stays strict and container lookups can
// rely on it.
//
// Example:
//
//	coll := sorted.New[sortable.Natural]("file10", "file2", "file1")
//	// Iterating yields: "file1", "file2", "file10"
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if this Natural has the same underlying string as the other.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if this Natural orders before the other under natural
// sort order, with byte-lexical order breaking natural-order ties between
// distinct strings.
//
// natsort.Compare is not a strict order: it reports true in both directions
// for equal strings and for natural-order ties, which would send the
// containers' binary search past elements that are actually present. The two
// directions are consulted and only an asymmetric answer is trusted;
// everything else falls back to the raw string comparison.
func (n Natural) LessThan(other Natural) bool {
	if n == other {
		return false
	}

	forward := natsort.Compare(string(n), string(other))
	if backward := natsort.Compare(string(other), string(n)); forward != backward {
		return forward
	}

	return string(n) < string(other)
}
