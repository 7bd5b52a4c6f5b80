package plot

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/binning"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

// HistogramOptions configures Histogram.
type HistogramOptions struct {
	Options

	// X names the numeric sample column.
	X string

	// Fill colors the bars: absent, a literal color, or a discrete column
	// mapping (stacked per level into the same bins).
	Fill aes.Aesthetic

	// Method selects the bin-count rule; empty uses Sturges.
	Method binning.Method

	// Bins is the bin count for the manual method.
	Bins int
}

// Histogram builds a pre-styled histogram: the X sample is binned by the
// selected rule and counts are drawn as bars.
func Histogram(ds *dataset.Dataset, o HistogramOptions) (*charts.Bar, error) {
	if err := requireDataset(ds); err != nil {
		return nil, err
	}

	method := o.Method
	if method == "" {
		method = binning.Sturges
	}

	to, err := o.themeOpts()
	if err != nil {
		return nil, err
	}

	xcol, err := numericColumn(ds, o.X, "x")
	if err != nil {
		return nil, err
	}

	sc, err := resolveScale(ds, o.Fill, "fill", o.Palette, defaultFillColor, o.logger())
	if err != nil {
		return nil, err
	}

	if sc.continuous() {
		return nil, fmt.Errorf("%w: histogram fill column %q must be discrete",
			ErrInvalidInput, sc.class.Column)
	}

	values := xcol.Floats()

	bins, err := binning.Count(values, method, o.Bins)
	if err != nil {
		return nil, err
	}

	edges := binEdges(values, bins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("axis")),
		charts.WithXAxisOpts(to.XAxis(o.X)),
		charts.WithYAxisOpts(to.YAxis("count")),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	bar.SetXAxis(binLabels(edges))

	if !sc.mapped() {
		counts := binCounts(values, edges, nil)
		data := make([]opts.BarData, len(counts))

		for i, c := range counts {
			data[i] = opts.BarData{Value: c}
		}

		bar.AddSeries("count", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.static}))

		return bar, nil
	}

	// Mapped fill: stack one series per level into the shared bins.
	fillCol, _ := ds.Column(sc.class.Column)
	fillLabels := fillCol.Labels()
	levels, rowsByLevel := groupRows(fillLabels)
	colors := sc.palette.Colors(len(levels))

	for li, level := range levels {
		counts := binCounts(values, edges, rowsByLevel[level])
		data := make([]opts.BarData, len(counts))

		for i, c := range counts {
			data[i] = opts.BarData{Value: c}
		}

		bar.AddSeries(level, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[li]}),
			charts.WithBarChartOpts(opts.BarChart{Stack: barStackName}),
		)
	}

	return bar, nil
}

// binEdges returns bins+1 evenly spaced edges spanning the sample range.
// A zero-width range widens by half a unit on each side so every value
// lands in a bin.
func binEdges(values []float64, bins int) []float64 {
	lo := stats.Min(values)
	hi := stats.Max(values)

	if hi <= lo {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)

	for i := range edges {
		edges[i] = lo + float64(i)*width
	}

	return edges
}

// binCounts tallies values into the bins described by edges. rows narrows
// the tally to a subset of row indices; nil counts every value. The last
// bin is closed on both sides.
func binCounts(values []float64, edges []float64, rows []int) []int {
	bins := len(edges) - 1
	counts := make([]int, bins)

	tally := func(v float64) {
		width := edges[1] - edges[0]

		idx := int((v - edges[0]) / width)
		if idx < 0 {
			idx = 0
		}

		if idx >= bins {
			idx = bins - 1
		}

		counts[idx]++
	}

	if rows == nil {
		for _, v := range values {
			tally(v)
		}

		return counts
	}

	for _, row := range rows {
		tally(values[row])
	}

	return counts
}

// binLabels formats each bin as "[lo, hi)" using trimmed decimals.
func binLabels(edges []float64) []string {
	labels := make([]string, len(edges)-1)

	for i := range labels {
		lo := strconv.FormatFloat(edges[i], 'g', 4, 64)
		hi := strconv.FormatFloat(edges[i+1], 'g', 4, 64)

		// The last bin includes its upper edge.
		closing := ")"
		if i == len(labels)-1 {
			closing = "]"
		}

		labels[i] = fmt.Sprintf("[%s, %s%s", lo, hi, closing)
	}

	return labels
}
