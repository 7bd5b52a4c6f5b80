package plot_test

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/plot"
)

func heatmapData(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New("grid",
		dataset.Strings("row", []string{"a", "a", "b", "b", "a"}),
		dataset.Strings("col", []string{"x", "y", "x", "y", "x"}),
		dataset.Floats("value", []float64{1, 2, 3, 4, 10}),
	)
	require.NoError(t, err)

	return ds
}

func TestHeatmap_CellsAndVisualMap(t *testing.T) {
	t.Parallel()

	ds := heatmapData(t)

	chart, err := plot.Heatmap(ds, plot.HeatmapOptions{
		X:     "row",
		Y:     "col",
		Value: "value",
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)

	data, ok := chart.MultiSeries[0].Data.([]opts.HeatMapData)
	require.True(t, ok)
	require.Len(t, data, 4)

	// Repeated ("a", "x") rows sum: 1 + 10 = 11.
	first, ok := data[0].Value.([]any)
	require.True(t, ok)
	assert.Equal(t, 0, first[0])
	assert.Equal(t, 0, first[1])
	assert.InDelta(t, 11.0, first[2].(float64), 0.0001)

	require.NotEmpty(t, chart.VisualMapList)
	vm := chart.VisualMapList[0]
	assert.InDelta(t, 2.0, float64(vm.Min), 0.0001)
	assert.InDelta(t, 11.0, float64(vm.Max), 0.0001)
}

func TestHeatmap_DefaultHeatPalette(t *testing.T) {
	t.Parallel()

	ds := heatmapData(t)

	chart, err := plot.Heatmap(ds, plot.HeatmapOptions{
		X:     "row",
		Y:     "col",
		Value: "value",
	})
	require.NoError(t, err)

	heat, err := brand.Lookup("heat")
	require.NoError(t, err)

	require.NotEmpty(t, chart.VisualMapList)
	require.NotNil(t, chart.VisualMapList[0].InRange)
	assert.Equal(t, heat.Colors(0), chart.VisualMapList[0].InRange.Color)
}

func TestHeatmap_UnknownPalette(t *testing.T) {
	t.Parallel()

	ds := heatmapData(t)

	_, err := plot.Heatmap(ds, plot.HeatmapOptions{
		Options: plot.Options{Palette: "no_such"},
		X:       "row",
		Y:       "col",
		Value:   "value",
	})
	assert.ErrorIs(t, err, brand.ErrPaletteNotFound)
}

func TestHeatmap_NonNumericValueRejected(t *testing.T) {
	t.Parallel()

	ds := heatmapData(t)

	_, err := plot.Heatmap(ds, plot.HeatmapOptions{
		X:     "row",
		Y:     "col",
		Value: "col",
	})
	assert.ErrorIs(t, err, plot.ErrInvalidInput)
}

func TestHeatmap_ShowValues(t *testing.T) {
	t.Parallel()

	ds := heatmapData(t)

	chart, err := plot.Heatmap(ds, plot.HeatmapOptions{
		X:          "row",
		Y:          "col",
		Value:      "value",
		ShowValues: true,
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)
	require.NotNil(t, chart.MultiSeries[0].Label)
	assert.Equal(t, opts.Bool(true), chart.MultiSeries[0].Label.Show)
}
