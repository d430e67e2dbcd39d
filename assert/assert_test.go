package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sorted/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("passes on true", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.True(true)
		})
	})

	t.Run("panics on false with default message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.True(false)
		})
	})

	t.Run("panics with formatted message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "bad index 7", func() {
			assert.True(false, "bad index %d", 7)
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.False(false)
	})
	require.Panics(t, func() {
		assert.False(true)
	})
}

func TestValidIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		index  int
		length int
		panics bool
	}{
		{
			name:   "first index",
			index:  0,
			length: 3,
			panics: false,
		},
		{
			name:   "last index",
			index:  2,
			length: 3,
			panics: false,
		},
		{
			name:   "negative index",
			index:  -1,
			length: 3,
			panics: true,
		},
		{
			name:   "index equal to length",
			index:  3,
			length: 3,
			panics: true,
		},
		{
			name:   "any index on empty",
			index:  0,
			length: 0,
			panics: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			check := func() {
				assert.ValidIndex(testCase.index, testCase.length)
			}

			if testCase.panics {
				require.Panics(t, check)
			} else {
				require.NotPanics(t, check)
			}
		})
	}
}

func TestValidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		length     int
		panics     bool
	}{
		{
			name:   "full range",
			start:  0,
			end:    3,
			length: 3,
			panics: false,
		},
		{
			name:   "empty range in the middle",
			start:  2,
			end:    2,
			length: 3,
			panics: false,
		},
		{
			name:   "empty range on empty container",
			start:  0,
			end:    0,
			length: 0,
			panics: false,
		},
		{
			name:   "reversed bounds",
			start:  2,
			end:    1,
			length: 3,
			panics: true,
		},
		{
			name:   "end past length",
			start:  0,
			end:    4,
			length: 3,
			panics: true,
		},
		{
			name:   "negative start",
			start:  -1,
			end:    2,
			length: 3,
			panics: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			check := func() {
				assert.ValidRange(testCase.start, testCase.end, testCase.length)
			}

			if testCase.panics {
				require.Panics(t, check)
			} else {
				require.NotPanics(t, check)
			}
		})
	}
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.NotEmpty(1)
	})
	require.PanicsWithValue(t, "nothing to remove", func() {
		assert.NotEmpty(0, "nothing to remove")
	})
}
