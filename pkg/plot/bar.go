package plot

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

// Position controls how bar series for a discrete fill mapping are laid out.
type Position string

// Allowed bar positions.
const (
	// PositionGroup places series side by side, the default.
	PositionGroup Position = "group"
	// PositionStack stacks series on top of each other.
	PositionStack Position = "stack"
)

const barStackName = "total"

// BarOptions configures Bar.
type BarOptions struct {
	Options

	// X names the category column; Y names the numeric value column.
	X string
	Y string

	// Fill colors the bars: absent, a literal color, or a column mapping.
	Fill aes.Aesthetic

	// Position lays out series for discrete fill mappings.
	Position Position
}

// Bar builds a pre-styled bar chart. A discrete fill mapping draws one
// series per level, summing values within each category; a continuous
// mapping colors each bar along a sequential gradient.
func Bar(ds *dataset.Dataset, o BarOptions) (*charts.Bar, error) {
	if err := requireDataset(ds); err != nil {
		return nil, err
	}

	pos := o.Position
	if pos == "" {
		pos = PositionGroup
	}

	if pos != PositionGroup && pos != PositionStack {
		return nil, fmt.Errorf("%w: bar position %q (valid: %s, %s)",
			ErrInvalidEnum, pos, PositionGroup, PositionStack)
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

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("axis")),
		charts.WithXAxisOpts(to.XAxis(o.X)),
		charts.WithYAxisOpts(to.YAxis(o.Y)),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	values := ycol.Floats()

	switch {
	case !sc.mapped():
		bar.SetXAxis(xcol.Labels())

		data := make([]opts.BarData, len(values))

		for i, v := range values {
			data[i] = opts.BarData{Value: v}
		}

		bar.AddSeries(o.Y, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.static}))

	case sc.continuous():
		fillCol, _ := ds.Column(sc.class.Column)
		fillValues := fillCol.Floats()

		lo := stats.Min(fillValues)
		span := stats.Max(fillValues) - lo

		bar.SetXAxis(xcol.Labels())

		data := make([]opts.BarData, len(values))

		for i, v := range values {
			t := 0.0
			if span > 0 {
				t = (fillValues[i] - lo) / span
			}

			data[i] = opts.BarData{
				Value:     v,
				ItemStyle: &opts.ItemStyle{Color: sc.palette.Interpolate(t)},
			}
		}

		bar.AddSeries(o.Y, data)

	default:
		fillCol, _ := ds.Column(sc.class.Column)
		levels, rowsByLevel := groupRows(fillCol.Labels())
		categories := xcol.Levels()
		xLabels := xcol.Labels()
		colors := sc.palette.Colors(len(levels))

		catIndex := make(map[string]int, len(categories))

		for i, c := range categories {
			catIndex[c] = i
		}

		bar.SetXAxis(categories)

		for li, level := range levels {
			sums := make([]float64, len(categories))

			for _, row := range rowsByLevel[level] {
				sums[catIndex[xLabels[row]]] += values[row]
			}

			data := make([]opts.BarData, len(sums))

			for i, v := range sums {
				data[i] = opts.BarData{Value: v}
			}

			seriesOpts := []charts.SeriesOpts{
				charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[li]}),
			}

			if pos == PositionStack {
				seriesOpts = append(seriesOpts,
					charts.WithBarChartOpts(opts.BarChart{Stack: barStackName}))
			}

			bar.AddSeries(level, data, seriesOpts...)
		}
	}

	return bar, nil
}
