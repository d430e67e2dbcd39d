package sorted

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-sorted/sortable"
)

// Both container types marshal as the plain ordered list of their elements,
// so the encoded form is interchangeable with a flat JSON array or YAML
// sequence. Decoding re-sorts the incoming elements, which restores the sort
// invariant even when the encoded list was edited by hand.

// MarshalJSON implements json.Marshaler. The collection is marshaled as a
// JSON array in ascending order.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c.elems == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(c.elems)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded elements are sorted,
// replacing the collection's contents.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("sorted: decode collection: %w", err)
	}

	slices.SortStableFunc(elems, sortable.Compare[T])
	c.elems = elems

	return nil
}

// MarshalYAML implements yaml.Marshaler. The collection is marshaled as a
// YAML sequence in ascending order.
func (c *Collection[T]) MarshalYAML() (any, error) {
	if c.elems == nil {
		return []T{}, nil
	}

	return c.elems, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded elements are sorted,
// replacing the collection's contents.
func (c *Collection[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("sorted: decode collection: %w", err)
	}

	slices.SortStableFunc(elems, sortable.Compare[T])
	c.elems = elems

	return nil
}

// MarshalJSON implements json.Marshaler. The slice is marshaled as a JSON
// array in ascending order.
func (s *Slice[T]) MarshalJSON() ([]byte, error) {
	if s.elems == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.elems)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded elements are sorted,
// replacing the slice's contents.
func (s *Slice[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("sorted: decode slice: %w", err)
	}

	slices.SortStableFunc(elems, sortable.Compare[T])
	s.elems = elems

	return nil
}

// MarshalYAML implements yaml.Marshaler. The slice is marshaled as a YAML
// sequence in ascending order.
func (s *Slice[T]) MarshalYAML() (any, error) {
	if s.elems == nil {
		return []T{}, nil
	}

	return s.elems, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded elements are sorted,
// replacing the slice's contents.
func (s *Slice[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("sorted: decode slice: %w", err)
	}

	slices.SortStableFunc(elems, sortable.Compare[T])
	s.elems = elems

	return nil
}
