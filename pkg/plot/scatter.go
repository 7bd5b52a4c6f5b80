package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

const defaultPointSize = 8

// ScatterOptions configures Scatter.
type ScatterOptions struct {
	Options

	// X and Y name numeric columns.
	X string
	Y string

	// Color colors the points: absent, a literal color, or a column mapping.
	Color aes.Aesthetic

	// PointSize is the symbol size in pixels; 0 uses the default.
	PointSize int
}

// Scatter builds a pre-styled scatter plot over two numeric columns. A
// discrete color mapping draws one series per level; a continuous mapping
// attaches a gradient visual map over the mapped column.
func Scatter(ds *dataset.Dataset, o ScatterOptions) (*charts.Scatter, error) {
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

	ycol, err := numericColumn(ds, o.Y, "y")
	if err != nil {
		return nil, err
	}

	sc, err := resolveScale(ds, o.Color, "color", o.Palette, defaultPointColor, o.logger())
	if err != nil {
		return nil, err
	}

	size := o.PointSize
	if size <= 0 {
		size = defaultPointSize
	}

	scatter := charts.NewScatter()

	xAxis := to.XAxis(o.X)
	xAxis.Type = "value"

	yAxis := to.YAxis(o.Y)
	yAxis.Type = "value"

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("item")),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	}

	xs := xcol.Floats()
	ys := ycol.Floats()

	switch {
	case !sc.mapped():
		scatter.SetGlobalOptions(global...)

		data := make([]opts.ScatterData, len(xs))

		for i := range xs {
			data[i] = opts.ScatterData{Value: []any{xs[i], ys[i]}, SymbolSize: size}
		}

		scatter.AddSeries(o.Y, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.static}))

	case sc.continuous():
		colorCol, _ := ds.Column(sc.class.Column)
		colorValues := colorCol.Floats()

		// The visual map reads the last dimension of each point.
		global = append(global, charts.WithVisualMapOpts(to.VisualMap(
			float32(stats.Min(colorValues)),
			float32(stats.Max(colorValues)),
			sc.palette.Colors(0),
		)))
		scatter.SetGlobalOptions(global...)

		data := make([]opts.ScatterData, len(xs))

		for i := range xs {
			data[i] = opts.ScatterData{
				Value:      []any{xs[i], ys[i], colorValues[i]},
				SymbolSize: size,
			}
		}

		scatter.AddSeries(o.Y, data)

	default:
		scatter.SetGlobalOptions(global...)

		colorCol, _ := ds.Column(sc.class.Column)
		levels, rowsByLevel := groupRows(colorCol.Labels())
		colors := sc.palette.Colors(len(levels))

		for li, level := range levels {
			rows := rowsByLevel[level]
			data := make([]opts.ScatterData, len(rows))

			for i, row := range rows {
				data[i] = opts.ScatterData{Value: []any{xs[row], ys[row]}, SymbolSize: size}
			}

			scatter.AddSeries(level, data,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[li]}))
		}
	}

	return scatter, nil
}
