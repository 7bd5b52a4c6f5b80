package brand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("known_palette", func(t *testing.T) {
		t.Parallel()

		p, err := Lookup("reds")
		require.NoError(t, err)
		assert.Equal(t, "reds", p.Name)
		assert.Equal(t, Sequential, p.Kind)
		assert.Equal(t, 5, p.Size())
	})

	t.Run("unknown_palette_lists_valid_names", func(t *testing.T) {
		t.Parallel()

		_, err := Lookup("nonexistent_palette")
		require.ErrorIs(t, err, ErrPaletteNotFound)
		assert.Contains(t, err.Error(), "nonexistent_palette")
		assert.Contains(t, err.Error(), "categorical")
		assert.Contains(t, err.Error(), "reds")
	})
}

func TestPaletteColors(t *testing.T) {
	t.Parallel()

	p, err := Lookup("reds")
	require.NoError(t, err)

	t.Run("natural_count_when_n_not_positive", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, p.Colors(0), p.Size())
		assert.Len(t, p.Colors(-3), p.Size())
	})

	t.Run("exact_count", func(t *testing.T) {
		t.Parallel()

		got := p.Colors(3)
		assert.Len(t, got, 3)
	})

	t.Run("recycles_beyond_natural_count", func(t *testing.T) {
		t.Parallel()

		got := p.Colors(p.Size() + 2)
		require.Len(t, got, p.Size()+2)
		assert.Equal(t, got[0], got[p.Size()])
		assert.Equal(t, got[1], got[p.Size()+1])
	})

	t.Run("returns_a_copy", func(t *testing.T) {
		t.Parallel()

		got := p.Colors(0)
		got[0] = "#000000"

		again := p.Colors(0)
		assert.NotEqual(t, "#000000", again[0])
	})
}

func TestPaletteKinds(t *testing.T) {
	t.Parallel()

	for _, p := range All() {
		assert.True(t, p.Kind.Valid(), "palette %s has invalid kind %q", p.Name, p.Kind)
		assert.GreaterOrEqual(t, p.Size(), 3, "palette %s too small", p.Name)
		assert.LessOrEqual(t, p.Size(), 11, "palette %s too large", p.Name)

		for _, hex := range p.Colors(0) {
			assert.True(t, strings.HasPrefix(hex, "#"), "palette %s color %s", p.Name, hex)
			assert.Len(t, hex, 7, "palette %s color %s", p.Name, hex)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "main")
	assert.Contains(t, names, "heat")
}

func TestColorTable(t *testing.T) {
	t.Parallel()

	hex, ok := Color("reds1")
	require.True(t, ok)
	assert.Equal(t, "#E4002B", hex)

	_, ok = Color("nope")
	assert.False(t, ok)

	assert.IsIncreasing(t, ColorNames())
}
