package sortable

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a sortable wrapper type for github.com/google/uuid.UUID, ordered
// byte-lexically over the 16-byte canonical representation. For UUIDv7 values
// this order coincides with creation-time order, which makes sorted
// containers of UUID keys useful as insertion-time indexes.
type UUID uuid.UUID

// Compile-time check that UUID implements Sortable[UUID].
var _ Sortable[UUID] = (*UUID)(nil)

// ParseUUID parses a UUID from its string form into a sortable UUID.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}

	return UUID(id), nil
}

// Equals returns true if this UUID has the same bytes as the other UUID.
func (u UUID) Equals(other UUID) bool {
	return uuid.UUID(u) == uuid.UUID(other)
}

// LessThan returns true if this UUID orders before the other UUID byte-lexically.
func (u UUID) LessThan(other UUID) bool {
	a, b := uuid.UUID(u), uuid.UUID(other)

	return bytes.Compare(a[:], b[:]) < 0
}

// String returns the canonical hyphenated form of the UUID.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}
