package sorted_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/amp-labs/amp-sorted/sorted"
)

func TestCollection_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as a plain array in ascending order", func(t *testing.T) {
		t.Parallel()

		coll := sorted.New(ints(3, 1, 2)...)

		data, err := json.Marshal(coll)
		require.NoError(t, err)
		assert.JSONEq(t, "[1,2,3]", string(data))
	})

	t.Run("empty collection marshals as an empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(sorted.New[sortable.Int]())
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("unmarshal restores the sort invariant", func(t *testing.T) {
		t.Parallel()

		var coll sorted.Collection[sortable.Int]

		require.NoError(t, json.Unmarshal([]byte("[5,1,4,1]"), &coll))
		assert.Equal(t, ints(1, 1, 4, 5), coll.Values())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := sorted.New(strs("b", "a", "c")...)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded sorted.Collection[sortable.String]
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.True(t, original.Equals(&decoded))
	})

	t.Run("malformed input is an error", func(t *testing.T) {
		t.Parallel()

		var coll sorted.Collection[sortable.Int]

		assert.Error(t, json.Unmarshal([]byte(`{"not":"a list"}`), &coll))
	})
}

func TestCollection_YAML(t *testing.T) {
	t.Parallel()

	t.Run("marshals as a sequence in ascending order", func(t *testing.T) {
		t.Parallel()

		coll := sorted.New(ints(2, 1)...)

		data, err := yaml.Marshal(coll)
		require.NoError(t, err)
		assert.YAMLEq(t, "[1, 2]", string(data))
	})

	t.Run("unmarshal restores the sort invariant", func(t *testing.T) {
		t.Parallel()

		var coll sorted.Collection[sortable.Int]

		require.NoError(t, yaml.Unmarshal([]byte("[3, 1, 2]"), &coll))
		assert.Equal(t, ints(1, 2, 3), coll.Values())
	})

	t.Run("malformed input is an error", func(t *testing.T) {
		t.Parallel()

		var coll sorted.Collection[sortable.Int]

		assert.Error(t, yaml.Unmarshal([]byte("key: value"), &coll))
	})
}

func TestSlice_JSONAndYAML(t *testing.T) {
	t.Parallel()

	t.Run("json round trip", func(t *testing.T) {
		t.Parallel()

		part := sorted.NewSlice(ints(9, 7, 8)...)

		data, err := json.Marshal(part)
		require.NoError(t, err)
		assert.JSONEq(t, "[7,8,9]", string(data))

		var decoded sorted.Slice[sortable.Int]
		require.NoError(t, json.Unmarshal([]byte("[2,1]"), &decoded))
		assert.Equal(t, ints(1, 2), decoded.Values())
	})

	t.Run("yaml round trip", func(t *testing.T) {
		t.Parallel()

		part := sorted.NewSlice(ints(2, 1)...)

		data, err := yaml.Marshal(part)
		require.NoError(t, err)

		var decoded sorted.Slice[sortable.Int]
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.True(t, part.Equals(&decoded))
	})

	t.Run("empty slice marshals as an empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(sorted.NewSlice[sortable.Int]())
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}
