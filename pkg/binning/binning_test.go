package binning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []float64 {
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		out[i] = float64(i)
	}

	return out
}

func TestSturges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{name: "single_value", n: 1, expected: 1},
		{name: "eight_values", n: 8, expected: 4},
		{name: "hundred_values", n: 100, expected: 8},
		{name: "thousand_values", n: 1000, expected: 11},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Count(sequence(tt.n), Sturges, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFreedmanDiaconis(t *testing.T) {
	t.Parallel()

	t.Run("uniform_sequence", func(t *testing.T) {
		t.Parallel()

		// n=1000, range 999, IQR 499.5: width = 2*499.5/10 = 99.9,
		// bins = ceil(999/99.9) = 10.
		got, err := Count(sequence(1000), FreedmanDiaconis, 0)
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("zero_iqr_falls_back_to_sturges", func(t *testing.T) {
		t.Parallel()

		constant := []float64{5, 5, 5, 5, 5, 5, 5, 5}
		got, err := Count(constant, FreedmanDiaconis, 0)
		require.NoError(t, err)

		sturgesCount, err := Count(constant, Sturges, 0)
		require.NoError(t, err)
		assert.Equal(t, sturgesCount, got)
	})
}

func TestScott(t *testing.T) {
	t.Parallel()

	t.Run("positive_count_for_spread_sample", func(t *testing.T) {
		t.Parallel()

		got, err := Count(sequence(1000), Scott, 0)
		require.NoError(t, err)
		assert.Positive(t, got)
	})

	t.Run("zero_stddev_falls_back_to_sturges", func(t *testing.T) {
		t.Parallel()

		constant := []float64{2, 2, 2, 2}
		got, err := Count(constant, Scott, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, got) // ceil(log2(4)+1) = 3.
	})
}

func TestManual(t *testing.T) {
	t.Parallel()

	t.Run("uses_caller_count", func(t *testing.T) {
		t.Parallel()

		got, err := Count(sequence(50), Manual, 17)
		require.NoError(t, err)
		assert.Equal(t, 17, got)
	})

	t.Run("missing_count_fails", func(t *testing.T) {
		t.Parallel()

		_, err := Count(sequence(50), Manual, 0)
		require.ErrorIs(t, err, ErrMissingBinCount)
	})

	t.Run("negative_count_fails", func(t *testing.T) {
		t.Parallel()

		_, err := Count(sequence(50), Manual, -2)
		require.ErrorIs(t, err, ErrMissingBinCount)
	})
}

func TestInvalidMethod(t *testing.T) {
	t.Parallel()

	_, err := Count(sequence(10), Method("doane"), 0)
	require.ErrorIs(t, err, ErrInvalidMethod)
	assert.Contains(t, err.Error(), "doane")
	assert.Contains(t, err.Error(), "sturges")
}

func TestEmptySampleYieldsOneBin(t *testing.T) {
	t.Parallel()

	for _, m := range []Method{Sturges, FreedmanDiaconis, Scott} {
		got, err := Count(nil, m, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, got, "method %s", m)
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	for _, m := range []Method{Sturges, FreedmanDiaconis, Scott} {
		first, err := Count(values, m, 0)
		require.NoError(t, err)

		second, err := Count(values, m, 0)
		require.NoError(t, err)
		assert.Equal(t, first, second, "method %s", m)
	}
}
