package plot_test

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/binning"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/plot"
)

func histogramData(t *testing.T) *dataset.Dataset {
	t.Helper()

	values := make([]float64, 100)
	groups := make([]string, 100)

	for i := range values {
		values[i] = float64(i)

		groups[i] = "low"
		if i%2 == 1 {
			groups[i] = "high"
		}
	}

	ds, err := dataset.New("sample",
		dataset.Floats("value", values),
		dataset.Strings("group", groups),
	)
	require.NoError(t, err)

	return ds
}

func TestHistogram_SturgesDefault(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Histogram(ds, plot.HistogramOptions{X: "value"})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)

	// Sturges on n=100 gives 8 bins, and every value lands in one.
	data, ok := chart.MultiSeries[0].Data.([]opts.BarData)
	require.True(t, ok)
	require.Len(t, data, 8)

	total := 0
	for _, d := range data {
		total += d.Value.(int)
	}

	assert.Equal(t, 100, total)
}

func TestHistogram_ManualBins(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Histogram(ds, plot.HistogramOptions{
		X:      "value",
		Method: binning.Manual,
		Bins:   5,
	})
	require.NoError(t, err)

	data, ok := chart.MultiSeries[0].Data.([]opts.BarData)
	require.True(t, ok)
	require.Len(t, data, 5)

	// A uniform 0..99 sample splits evenly across 5 bins.
	for _, d := range data {
		assert.Equal(t, 20, d.Value)
	}
}

func TestHistogram_BinLabels(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Histogram(ds, plot.HistogramOptions{
		X:      "value",
		Method: binning.Manual,
		Bins:   5,
	})
	require.NoError(t, err)

	chart.Validate()

	labels, ok := chart.XAxisList[0].Data.([]string)
	require.True(t, ok)
	require.Len(t, labels, 5)

	// Interior bins are half-open; the last bin includes its upper edge.
	assert.Equal(t, "[0, 19.8)", labels[0])
	assert.Equal(t, "[79.2, 99]", labels[4])
}

func TestHistogram_ManualWithoutBins(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	_, err := plot.Histogram(ds, plot.HistogramOptions{
		X:      "value",
		Method: binning.Manual,
	})
	assert.ErrorIs(t, err, binning.ErrMissingBinCount)
}

func TestHistogram_StackedFillLevels(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Histogram(ds, plot.HistogramOptions{
		X:    "value",
		Fill: aes.Column("group"),
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 2)
	assert.Equal(t, "low", chart.MultiSeries[0].Name)
	assert.Equal(t, "high", chart.MultiSeries[1].Name)

	// Level counts stack into the shared bins; totals still cover the sample.
	total := 0

	for _, series := range chart.MultiSeries {
		assert.NotEmpty(t, series.Stack)

		data, ok := series.Data.([]opts.BarData)
		require.True(t, ok)
		require.Len(t, data, 8)

		for _, d := range data {
			total += d.Value.(int)
		}
	}

	assert.Equal(t, 100, total)
}

func TestHistogram_ContinuousFillRejected(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	_, err := plot.Histogram(ds, plot.HistogramOptions{
		X:    "value",
		Fill: aes.Column("value"),
	})
	assert.ErrorIs(t, err, plot.ErrInvalidInput)
}

func TestDensity_SingleCurve(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Density(ds, plot.DensityOptions{X: "value"})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)

	data, ok := chart.MultiSeries[0].Data.([]opts.LineData)
	require.True(t, ok)
	require.Len(t, data, 200)

	// Every density is non-negative.
	for _, point := range data {
		value, ok := point.Value.([]any)
		require.True(t, ok)
		require.Len(t, value, 2)
		assert.GreaterOrEqual(t, value[1].(float64), 0.0)
	}
}

func TestDensity_CurvePerLevel(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Density(ds, plot.DensityOptions{
		X:     "value",
		Color: aes.Column("group"),
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 2)
	assert.Equal(t, "low", chart.MultiSeries[0].Name)
	assert.Equal(t, "high", chart.MultiSeries[1].Name)
}

func TestDensity_FilledCurve(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	chart, err := plot.Density(ds, plot.DensityOptions{
		X:    "value",
		Fill: true,
	})
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)
	assert.NotNil(t, chart.MultiSeries[0].AreaStyle)
}

func TestDensity_ContinuousColorRejected(t *testing.T) {
	t.Parallel()

	ds := histogramData(t)

	_, err := plot.Density(ds, plot.DensityOptions{
		X:     "value",
		Color: aes.Column("value"),
	})
	assert.ErrorIs(t, err, plot.ErrInvalidInput)
}
