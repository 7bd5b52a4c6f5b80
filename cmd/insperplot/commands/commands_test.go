package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPalettes_ListsAllPalettes(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	require.NoError(t, runPalettes(&buf, ""))

	out := buf.String()

	for _, name := range []string{"main", "categorical", "diverging", "heat"} {
		assert.Contains(t, out, name)
	}

	assert.Contains(t, out, "#E4002B")
}

func TestRunPalettes_KindFilter(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	require.NoError(t, runPalettes(&buf, "qualitative"))

	out := buf.String()
	assert.Contains(t, out, "categorical")
	assert.NotContains(t, out, "heat")
}

func TestRunColors_ListsBrandColors(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	require.NoError(t, runColors(&buf))

	out := buf.String()
	assert.Contains(t, out, "reds1")
	assert.Contains(t, out, "#E4002B")
	assert.Contains(t, out, "offwhite")
}

func TestSplitHex(t *testing.T) {
	t.Parallel()

	r, g, b, err := splitHex("#E4002B")
	require.NoError(t, err)
	assert.Equal(t, 228, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 43, b)

	_, _, _, err = splitHex("E4002B")
	require.Error(t, err)

	_, _, _, err = splitHex("#E400")
	require.Error(t, err)
}

func TestRunGallery_RendersAllPages(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runGallery(dir, ""))

	wantPages := []string{
		"index.html", "report.html",
		"bar.html", "scatter.html", "timeseries.html", "area.html",
		"histogram.html", "density.html", "box.html", "violin.html",
		"heatmap.html",
	}

	for _, name := range wantPages {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Bar Chart")
	assert.Contains(t, string(index), "Heatmap")
}

func TestRunGallery_ReportCarriesSummarySection(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runGallery(dir, ""))

	report, err := os.ReadFile(filepath.Join(dir, "report.html"))
	require.NoError(t, err)

	out := string(report)
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "Total Sales")
	assert.Contains(t, out, "R$")
	assert.Contains(t, out, "Brand Palettes")
	assert.Contains(t, out, "categorical")
	assert.Contains(t, out, "Brazilian reais")
}

func TestSampleDatasets_Deterministic(t *testing.T) {
	t.Parallel()

	first := measureSample()
	second := measureSample()

	c1, _ := first.Column("height")
	c2, _ := second.Column("height")
	assert.Equal(t, c1.Floats(), c2.Floats())

	sales := salesSample()
	assert.Equal(t, 48, sales.Len()) // 6 months x 4 regions x 2 segments
}
