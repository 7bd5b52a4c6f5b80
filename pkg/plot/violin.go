package plot

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/stats"
)

const (
	// violinHalfWidth is the horizontal half-extent of a silhouette, in
	// axis units; groups sit at integer positions.
	violinHalfWidth = 0.4
	violinGridSize  = 64
)

// ViolinOptions configures Violin.
type ViolinOptions struct {
	Options

	// X names the grouping column; Y names the numeric sample column.
	X string
	Y string

	// Fill colors the silhouettes: absent, a literal color, or a column
	// mapping.
	Fill aes.Aesthetic

	// Bandwidth overrides the kernel bandwidth; 0 uses Silverman's rule.
	Bandwidth float64
}

// Violin builds a pre-styled violin plot: one mirrored kernel-density
// silhouette per level of X, centered on integer x positions in level
// order. A fill mapped to a second discrete column splits each category
// into dodged per-level silhouettes. The outline is a closed line series
// on value axes.
func Violin(ds *dataset.Dataset, o ViolinOptions) (*charts.Line, error) {
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

	if sc.continuous() {
		return nil, fmt.Errorf("%w: violin fill column %q must be discrete",
			ErrInvalidInput, sc.class.Column)
	}

	line := charts.NewLine()

	xAxis := to.XAxis(o.X)
	xAxis.Type = "value"

	yAxis := to.YAxis(o.Y)
	yAxis.Type = "value"

	line.SetGlobalOptions(
		charts.WithInitializationOpts(to.Init(o.Width, o.Height)),
		charts.WithTitleOpts(to.Title(o.Title, o.Subtitle)),
		charts.WithTooltipOpts(to.Tooltip("item")),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(to.Legend()),
		charts.WithGridOpts(to.Grid()),
	)

	values := ycol.Floats()
	categories, rowsByCategory := groupRows(xcol.Labels())

	sample := func(rows []int) []float64 {
		out := make([]float64, len(rows))

		for i, row := range rows {
			out[i] = values[row]
		}

		return out
	}

	addSilhouette := func(name string, rows []int, center, halfWidth float64, color string) {
		silhouette := violinOutline(sample(rows), center, halfWidth, o.Bandwidth)
		if silhouette == nil {
			return
		}

		line.AddSeries(name, silhouette,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: lineWidth}),
		)
	}

	if sc.mapped() && sc.class.Column != o.X {
		// Fill mapped to another column: split each category's sample by
		// fill level and dodge the narrower silhouettes within the slot.
		fillCol, _ := ds.Column(sc.class.Column)
		fillLabels := fillCol.Labels()
		levels, _ := groupRows(fillLabels)
		colors := sc.palette.Colors(len(levels))
		slot := 2 * violinHalfWidth / float64(len(levels))

		for ci, cat := range categories {
			for li, level := range levels {
				var rows []int

				for _, row := range rowsByCategory[cat] {
					if fillLabels[row] == level {
						rows = append(rows, row)
					}
				}

				if len(rows) == 0 {
					continue
				}

				center := float64(ci) - violinHalfWidth + (float64(li)+0.5)*slot
				addSilhouette(level, rows, center, slot/2, colors[li])
			}
		}

		return line, nil
	}

	// Fill absent, literal, or mapped to X itself: one full-width
	// silhouette per category.
	colors := make([]string, len(categories))

	if sc.mapped() {
		copy(colors, sc.palette.Colors(len(categories)))
	} else {
		for i := range colors {
			colors[i] = sc.static
		}
	}

	for ci, cat := range categories {
		addSilhouette(cat, rowsByCategory[cat], float64(ci), violinHalfWidth, colors[ci])
	}

	return line, nil
}

// violinOutline returns the closed outline of a mirrored density: down the
// right flank, up the left flank, back to the start.
func violinOutline(sample []float64, center, halfWidth, bandwidth float64) []opts.LineData {
	kde := stats.KDE(sample, violinGridSize, bandwidth)
	if len(kde) == 0 {
		return nil
	}

	var peak float64

	for _, p := range kde {
		if p.Density > peak {
			peak = p.Density
		}
	}

	if peak <= 0 {
		return nil
	}

	scale := halfWidth / peak
	outline := make([]opts.LineData, 0, 2*len(kde)+1)

	for _, p := range kde {
		outline = append(outline, opts.LineData{Value: []any{center + p.Density*scale, p.X}})
	}

	for i := len(kde) - 1; i >= 0; i-- {
		outline = append(outline, opts.LineData{Value: []any{center - kde[i].Density*scale, kde[i].X}})
	}

	outline = append(outline, outline[0])

	return outline
}
