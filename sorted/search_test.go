package sorted

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sorted/sortable"
)

func ints(values ...int) []sortable.Int {
	elems := make([]sortable.Int, len(values))
	for i, v := range values {
		elems[i] = sortable.Int(v)
	}

	return elems
}

func TestInsertionIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elems    []sortable.Int
		value    int
		expected int
	}{
		{
			name:     "empty sequence",
			elems:    nil,
			value:    7,
			expected: 0,
		},
		{
			name:     "before single element",
			elems:    ints(5),
			value:    3,
			expected: 0,
		},
		{
			name:     "after single element",
			elems:    ints(5),
			value:    9,
			expected: 1,
		},
		{
			name:     "equal to single element",
			elems:    ints(5),
			value:    5,
			expected: 0,
		},
		{
			name:     "between elements",
			elems:    ints(1, 3, 5, 7),
			value:    4,
			expected: 2,
		},
		{
			name:     "before all elements",
			elems:    ints(10, 20, 30),
			value:    -5,
			expected: 0,
		},
		{
			name:     "past the last element",
			elems:    ints(10, 20, 30),
			value:    500,
			expected: 3,
		},
		{
			name:     "first occurrence among duplicates",
			elems:    ints(1, 9, 9, 9, 12),
			value:    9,
			expected: 1,
		},
		{
			name:     "all elements equal to value",
			elems:    ints(4, 4, 4, 4),
			value:    4,
			expected: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			idx := insertionIndex(testCase.elems, sortable.Int(testCase.value))
			assert.Equal(t, testCase.expected, idx)
		})
	}
}

func TestInsertionIndex_KeepsOrder(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(7, 13))

	var elems []sortable.Int

	for range 1000 {
		value := sortable.Int(rnd.IntN(100))
		idx := insertionIndex(elems, value)

		require.GreaterOrEqual(t, idx, 0)
		require.LessOrEqual(t, idx, len(elems))

		elems = slices.Insert(elems, idx, value)
		require.True(t, slices.IsSortedFunc(elems, sortable.Compare[sortable.Int]))
	}
}

func TestInsertionIndex_FirstOccurrence(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(3, 5))

	elems := make([]sortable.Int, 500)
	for i := range elems {
		elems[i] = sortable.Int(rnd.IntN(50))
	}

	slices.SortFunc(elems, sortable.Compare[sortable.Int])

	for probe := range sortable.Int(50) {
		idx := insertionIndex(elems, probe)
		expected, found := slices.BinarySearchFunc(elems, probe, sortable.Compare[sortable.Int])

		assert.Equal(t, expected, idx)

		if found {
			assert.Equal(t, probe, elems[idx])

			if idx > 0 {
				assert.True(t, elems[idx-1].LessThan(probe), "index must point at the first occurrence")
			}
		}
	}
}

func TestIndexOf_Helper(t *testing.T) {
	t.Parallel()

	elems := ints(2, 4, 4, 8)

	t.Run("finds first occurrence", func(t *testing.T) {
		t.Parallel()

		idx, found := indexOf(elems, sortable.Int(4)).Get()
		require.True(t, found)
		assert.Equal(t, 1, idx)
	})

	t.Run("absent value between elements", func(t *testing.T) {
		t.Parallel()

		assert.True(t, indexOf(elems, sortable.Int(5)).Empty())
	})

	t.Run("absent value past the end", func(t *testing.T) {
		t.Parallel()

		assert.True(t, indexOf(elems, sortable.Int(100)).Empty())
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.True(t, indexOf(nil, sortable.Int(1)).Empty())
	})
}
