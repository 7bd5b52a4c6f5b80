package plot

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

// densityGridSize is the number of evaluation points per density curve.
const densityGridSize = 200

// DensityOptions configures Density.
type DensityOptions struct {
	Options

	// X names the numeric sample column.
	X string

	// Color colors the curve: absent, a literal color, or a discrete column
	// mapping drawing one curve per level.
	Color aes.Aesthetic

	// Bandwidth overrides the Silverman kernel bandwidth when positive.
	Bandwidth float64

	// Fill shades the area under each curve.
	Fill bool
}

// Density builds a pre-styled kernel density estimate of the X sample,
// drawn as a smooth line on value-typed axes.
func Density(ds *dataset.Dataset, o DensityOptions) (*charts.Line, error) {
	if err := requireDataset(ds); err != nil {
		return nil, err
	}

	to, err := o.themeOpts()
	if err != nil {
		return nil, err
	}

	xcol, err := numericColumn(ds, o.X, "x")
	if err != nil {
		return nil, err
	}

	sc, err := resolveScale(ds, o.Color, "color", o.Palette, defaultLineColor, o.logger())
	if err != nil {
		return nil, err
	}

	if sc.continuous() {
		return nil, fmt.Errorf("%w: density color column %q must be discrete",
			ErrInvalidInput, sc.class.Column)
	}

	line := charts.NewLine()

	xAxis := to.XAxis(o.X)
	xAxis.Type = "value"

	yAxis := to.YAxis("density")
	yAxis.Type = "value"

	line.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("axis")),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	values := xcol.Floats()

	addCurve := func(name string, sample []float64, color string) {
		bw := o.Bandwidth
		if bw <= 0 {
			bw = stats.Bandwidth(sample)
		}

		curve := stats.KDE(sample, densityGridSize, bw)
		data := make([]opts.LineData, len(curve))

		for i, p := range curve {
			data[i] = opts.LineData{Value: []any{p.X, p.Density}}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: lineWidth}),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		}

		if o.Fill {
			seriesOpts = append(seriesOpts,
				charts.WithAreaStyleOpts(opts.AreaStyle{Color: color, Opacity: opts.Float(areaOpacity)}))
		}

		line.AddSeries(name, data, seriesOpts...)
	}

	if !sc.mapped() {
		addCurve(o.X, values, sc.static)

		return line, nil
	}

	colorCol, _ := ds.Column(sc.class.Column)
	levels, rowsByLevel := groupRows(colorCol.Labels())
	colors := sc.palette.Colors(len(levels))

	for li, level := range levels {
		rows := rowsByLevel[level]
		sample := make([]float64, len(rows))

		for i, row := range rows {
			sample[i] = values[row]
		}

		addCurve(level, sample, colors[li])
	}

	return line, nil
}
