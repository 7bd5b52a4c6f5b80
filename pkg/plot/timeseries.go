package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
)

const lineWidth = 2

// TimeSeriesOptions configures TimeSeries.
type TimeSeriesOptions struct {
	Options

	// X names the ordering column (typically a time column); Y names the
	// numeric value column.
	X string
	Y string

	// Color colors the lines: absent, a literal color, or a column mapping.
	Color aes.Aesthetic

	// Smooth draws smoothed lines.
	Smooth bool
}

// TimeSeries builds a pre-styled line chart ordered along X. A discrete
// color mapping draws one line per level, sharing the x axis.
func TimeSeries(ds *dataset.Dataset, o TimeSeriesOptions) (*charts.Line, error) {
	return lineChart(ds, lineOptions{
		Options: o.Options,
		X:       o.X,
		Y:       o.Y,
		Color:   o.Color,
		Smooth:  o.Smooth,
	})
}

// lineOptions is the shared shape behind TimeSeries and Area.
type lineOptions struct {
	Options

	X       string
	Y       string
	Color   aes.Aesthetic
	Smooth  bool
	Area    bool
	Stacked bool
}

const areaOpacity = 0.35

func lineChart(ds *dataset.Dataset, o lineOptions) (*charts.Line, error) {
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

	sc, err := resolveScale(ds, o.Color, "color", o.Palette, defaultLineColor, o.logger())
	if err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("axis")),
		charts.WithDataZoomOpts(to.DataZoom()...),
		charts.WithXAxisOpts(to.XAxis(o.X)),
		charts.WithYAxisOpts(to.YAxis(o.Y)),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	values := ycol.Floats()

	seriesOpts := func(color string) []charts.SeriesOpts {
		lineCfg := opts.LineChart{Smooth: opts.Bool(o.Smooth)}
		if o.Stacked {
			lineCfg.Stack = barStackName
		}

		so := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: lineWidth}),
			charts.WithLineChartOpts(lineCfg),
		}

		if o.Area {
			so = append(so, charts.WithAreaStyleOpts(opts.AreaStyle{
				Color:   color,
				Opacity: opts.Float(areaOpacity),
			}))
		}

		return so
	}

	if !sc.mapped() {
		line.SetXAxis(xcol.Labels())

		data := make([]opts.LineData, len(values))

		for i, v := range values {
			data[i] = opts.LineData{Value: v}
		}

		line.AddSeries(o.Y, data, seriesOpts(sc.static)...)

		return line, nil
	}

	// Mapped color: one line per level. A continuous mapping is grouped the
	// same way; each distinct value becomes its own series.
	colorCol, _ := ds.Column(sc.class.Column)
	levels, rowsByLevel := groupRows(colorCol.Labels())
	colors := sc.palette.Colors(len(levels))

	categories := xcol.Levels()
	xLabels := xcol.Labels()

	catIndex := make(map[string]int, len(categories))

	for i, c := range categories {
		catIndex[c] = i
	}

	line.SetXAxis(categories)

	for li, level := range levels {
		points := make([]opts.LineData, len(categories))

		for i := range points {
			points[i] = opts.LineData{Value: nil}
		}

		for _, row := range rowsByLevel[level] {
			points[catIndex[xLabels[row]]] = opts.LineData{Value: values[row]}
		}

		line.AddSeries(level, points, seriesOpts(colors[li])...)
	}

	return line, nil
}
