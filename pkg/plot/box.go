package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

// BoxOptions configures Box.
type BoxOptions struct {
	Options

	// X names the grouping column; Y names the numeric sample column.
	X string
	Y string

	// Fill colors the boxes: absent, a literal color, or a column mapping.
	Fill aes.Aesthetic
}

// fiveNumber returns [min, q1, median, q3, max] for a sample, the order
// echarts expects for box plot data.
func fiveNumber(values []float64) []any {
	return []any{
		stats.Min(values),
		stats.Percentile(values, stats.PercentileQ1),
		stats.Median(values),
		stats.Percentile(values, stats.PercentileQ3),
		stats.Max(values),
	}
}

// Box builds a pre-styled box plot: one box per level of X, each the
// five-number summary of the Y values in that group. A mapped fill colors
// series by the mapped column's levels.
func Box(ds *dataset.Dataset, o BoxOptions) (*charts.BoxPlot, error) {
	if err := requireDataset(ds); err != nil {
		return nil, err
	}

	to, err := o.themeOpts()
	if err != nil {
		return nil, err
	}

	xcol, err := column(ds, o.X, "x")
	if err != nil {
		return nil, err
	}

	ycol, err := numericColumn(ds, o.Y, "y")
	if err != nil {
		return nil, err
	}

	sc, err := resolveScale(ds, o.Fill, "fill", o.Palette, defaultFillColor, o.logger())
	if err != nil {
		return nil, err
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("item")),
		charts.WithXAxisOpts(to.XAxis(o.X)),
		charts.WithYAxisOpts(to.YAxis(o.Y)),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	values := ycol.Floats()
	xLabels := xcol.Labels()
	categories, rowsByCategory := groupRows(xLabels)

	box.SetXAxis(categories)

	sample := func(rows []int) []float64 {
		out := make([]float64, len(rows))

		for i, row := range rows {
			out[i] = values[row]
		}

		return out
	}

	if !sc.mapped() {
		data := make([]opts.BoxPlotData, len(categories))

		for i, cat := range categories {
			data[i] = opts.BoxPlotData{Value: fiveNumber(sample(rowsByCategory[cat]))}
		}

		box.AddSeries(o.Y, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.static}))

		return box, nil
	}

	// Mapped fill: one series per level, boxes aligned to the x categories.
	fillCol, _ := ds.Column(sc.class.Column)
	fillLabels := fillCol.Labels()
	levels, _ := groupRows(fillLabels)
	colors := sc.palette.Colors(len(levels))

	for li, level := range levels {
		data := make([]opts.BoxPlotData, len(categories))

		for i, cat := range categories {
			var rows []int

			for _, row := range rowsByCategory[cat] {
				if fillLabels[row] == level {
					rows = append(rows, row)
				}
			}

			if len(rows) == 0 {
				data[i] = opts.BoxPlotData{Value: nil}

				continue
			}

			data[i] = opts.BoxPlotData{Value: fiveNumber(sample(rows))}
		}

		box.AddSeries(level, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[li]}))
	}

	return box, nil
}
