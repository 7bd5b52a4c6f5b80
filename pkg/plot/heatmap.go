package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/dataset"
)

// HeatmapOptions configures Heatmap.
type HeatmapOptions struct {
	Options

	// X and Y name the category columns; Value names the numeric cell column.
	X     string
	Y     string
	Value string

	// ShowValues prints the cell value inside each tile.
	ShowValues bool
}

// Heatmap builds a pre-styled heatmap over two category columns. Cell values
// for repeated (x, y) pairs are summed, and a gradient visual map spans the
// aggregated range. The default gradient is the heat palette.
func Heatmap(ds *dataset.Dataset, o HeatmapOptions) (*charts.HeatMap, error) {
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

	ycol, err := column(ds, o.Y, "y")
	if err != nil {
		return nil, err
	}

	vcol, err := numericColumn(ds, o.Value, "value")
	if err != nil {
		return nil, err
	}

	paletteName := o.Palette
	if paletteName == "" {
		paletteName = defaultHeatPalette
	}

	palette, err := brand.Lookup(paletteName)
	if err != nil {
		return nil, err
	}

	xLabels := xcol.Labels()
	yLabels := ycol.Labels()
	values := vcol.Floats()

	xLevels := xcol.Levels()
	yLevels := ycol.Levels()

	xIndex := make(map[string]int, len(xLevels))
	for i, l := range xLevels {
		xIndex[l] = i
	}

	yIndex := make(map[string]int, len(yLevels))
	for i, l := range yLevels {
		yIndex[l] = i
	}

	// Sum repeated cells on a dense grid.
	cells := make([]float64, len(xLevels)*len(yLevels))
	filled := make([]bool, len(cells))

	for row := range values {
		idx := yIndex[yLabels[row]]*len(xLevels) + xIndex[xLabels[row]]
		cells[idx] += values[row]
		filled[idx] = true
	}

	var data []opts.HeatMapData

	lo, hi := 0.0, 0.0
	first := true

	for yi := range yLevels {
		for xi := range xLevels {
			idx := yi*len(xLevels) + xi
			if !filled[idx] {
				continue
			}

			v := cells[idx]
			if first || v < lo {
				lo = v
			}

			if first || v > hi {
				hi = v
			}

			first = false

			data = append(data, opts.HeatMapData{Value: []any{xi, yi, v}})
		}
	}

	hm := charts.NewHeatMap()

	xAxis := to.XAxis(o.X)
	xAxis.Type = "category"
	xAxis.Data = xLevels
	xAxis.SplitArea = &opts.SplitArea{Show: opts.Bool(true)}

	yAxis := to.YAxis(o.Y)
	yAxis.Type = "category"
	yAxis.Data = yLevels
	yAxis.SplitArea = &opts.SplitArea{Show: opts.Bool(true)}
	yAxis.SplitLine = nil

	vm := to.VisualMap(float32(lo), float32(hi), palette.Colors(0))
	vm.Orient = "horizontal"
	vm.Left = "center"
	vm.Bottom = "2%"

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("item")),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithVisualMapOpts(vm),
		charts.WithGridOpts(to.Grid()),
	)

	var seriesOpts []charts.SeriesOpts
	if o.ShowValues {
		seriesOpts = append(seriesOpts, charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true), Position: "inside", Color: brand.Colors["black"],
		}))
	}

	hm.AddSeries(o.Value, data, seriesOpts...)

	return hm, nil
}
