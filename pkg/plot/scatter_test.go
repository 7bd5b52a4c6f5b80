package plot_test

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/plot"
)

func TestScatter_DefaultColor(t *testing.T) {
	t.Parallel()

	ds := salesData(t)

	chart, err := plot.Scatter(ds, plot.ScatterOptions{X: "x", Y: "sales"})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)
	assert.Equal(t, brand.Colors["teals1"], chart.MultiSeries[0].ItemStyle.Color)

	data, ok := chart.MultiSeries[0].Data.([]opts.ScatterData)
	require.True(t, ok)
	require.Len(t, data, 6)
	assert.Equal(t, []any{1.0, 10.0}, data[0].Value)
}

func TestScatter_CategoricalXRejected(t *testing.T) {
	t.Parallel()

	ds := salesData(t)

	_, err := plot.Scatter(ds, plot.ScatterOptions{X: "city", Y: "sales"})
	require.ErrorIs(t, err, plot.ErrInvalidInput)
	assert.Contains(t, err.Error(), "city")
}

func TestScatter_DiscreteColorMapping(t *testing.T) {
	t.Parallel()

	ds := salesData(t)

	chart, err := plot.Scatter(ds, plot.ScatterOptions{
		X:     "x",
		Y:     "sales",
		Color: aes.Column("group"),
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 2)
	assert.Equal(t, "a", chart.MultiSeries[0].Name)
	assert.Equal(t, "b", chart.MultiSeries[1].Name)

	data, ok := chart.MultiSeries[0].Data.([]opts.ScatterData)
	require.True(t, ok)
	require.Len(t, data, 3)
}

func TestScatter_ContinuousColorMapping_VisualMap(t *testing.T) {
	t.Parallel()

	ds := salesData(t)

	chart, err := plot.Scatter(ds, plot.ScatterOptions{
		X:     "x",
		Y:     "sales",
		Color: aes.Column("score"),
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)

	require.NotEmpty(t, chart.VisualMapList)
	vm := chart.VisualMapList[0]
	assert.InDelta(t, 1.5, float64(vm.Min), 0.0001)
	assert.InDelta(t, 6.5, float64(vm.Max), 0.0001)
	require.NotNil(t, vm.InRange)
	assert.NotEmpty(t, vm.InRange.Color)

	// The mapped value travels as the last dimension of each point.
	data, ok := chart.MultiSeries[0].Data.([]opts.ScatterData)
	require.True(t, ok)
	assert.Equal(t, []any{1.0, 10.0, 1.5}, data[0].Value)
}

func TestScatter_PointSize(t *testing.T) {
	t.Parallel()

	ds := salesData(t)

	chart, err := plot.Scatter(ds, plot.ScatterOptions{X: "x", Y: "sales", PointSize: 14})
	require.NoError(t, err)

	data, ok := chart.MultiSeries[0].Data.([]opts.ScatterData)
	require.True(t, ok)
	assert.Equal(t, 14, data[0].SymbolSize)
}
