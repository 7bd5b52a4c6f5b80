package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindContinuous(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		expected bool
	}{
		{kind: Float, expected: true},
		{kind: Int, expected: true},
		{kind: String, expected: false},
		{kind: Bool, expected: false},
		{kind: Time, expected: false},
		{kind: Factor, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.kind.Continuous())
		})
	}
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	t.Parallel()

	_, err := New("bad",
		Floats("x", []float64{1, 2, 3}),
		Strings("y", []string{"a", "b"}),
	)
	require.ErrorIs(t, err, ErrRaggedColumns)
	assert.Contains(t, err.Error(), `"y"`)
}

func TestColumnLookup(t *testing.T) {
	t.Parallel()

	ds := MustNew("iris",
		Floats("sepal_length", []float64{5.1, 4.9}),
		Factors("species", []string{"setosa", "setosa"}),
	)

	col, ok := ds.Column("species")
	require.True(t, ok)
	assert.Equal(t, Factor, col.Kind())
	assert.False(t, col.Kind().Continuous())

	_, ok = ds.Column("petal_width")
	assert.False(t, ok)

	assert.Equal(t, []string{"sepal_length", "species"}, ds.Names())
	assert.Equal(t, 2, ds.Len())
}

func TestColumnConversions(t *testing.T) {
	t.Parallel()

	t.Run("ints_as_floats", func(t *testing.T) {
		t.Parallel()

		col := Ints("n", []int{1, 2, 3})
		assert.Equal(t, []float64{1, 2, 3}, col.Floats())
		assert.Equal(t, []string{"1", "2", "3"}, col.Labels())
	})

	t.Run("floats_have_no_levels_duplication", func(t *testing.T) {
		t.Parallel()

		col := Floats("v", []float64{1.5, 1.5, 2})
		assert.Equal(t, []string{"1.5", "2"}, col.Levels())
	})

	t.Run("strings_not_continuous", func(t *testing.T) {
		t.Parallel()

		col := Strings("s", []string{"a", "b", "a"})
		assert.Nil(t, col.Floats())
		assert.Equal(t, []string{"a", "b"}, col.Levels())
	})

	t.Run("bools_format_as_labels", func(t *testing.T) {
		t.Parallel()

		col := Bools("flag", []bool{true, false})
		assert.Equal(t, []string{"true", "false"}, col.Labels())
	})

	t.Run("times_format_as_dates", func(t *testing.T) {
		t.Parallel()

		day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		col := Times("when", []time.Time{day})
		assert.Equal(t, []string{"2024-03-15"}, col.Labels())
		assert.Equal(t, []time.Time{day}, col.Times())
	})
}

func TestFloatsReturnsCopy(t *testing.T) {
	t.Parallel()

	col := Floats("x", []float64{1, 2})
	got := col.Floats()
	got[0] = 99

	assert.Equal(t, []float64{1, 2}, col.Floats())
}

func TestPreview(t *testing.T) {
	t.Parallel()

	ds := MustNew("demo",
		Floats("value", []float64{1, 2, 3}),
		Strings("group", []string{"a", "b", "c"}),
	)

	out := ds.Preview(2)
	assert.Contains(t, out, "value <float>")
	assert.Contains(t, out, "group <string>")
	assert.Contains(t, out, "2 of 3 rows")
}
