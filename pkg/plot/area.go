package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/dataset"
)

// AreaOptions configures Area.
type AreaOptions struct {
	Options

	// X names the ordering column; Y names the numeric value column.
	X string
	Y string

	// Fill colors the areas: absent, a literal color, or a column mapping.
	Fill aes.Aesthetic

	// Stacked stacks the series of a discrete fill mapping.
	Stacked bool

	// Smooth draws smoothed outlines.
	Smooth bool
}

// Area builds a pre-styled area chart: a line chart with a translucent
// fill under each series.
func Area(ds *dataset.Dataset, o AreaOptions) (*charts.Line, error) {
	return lineChart(ds, lineOptions{
		Options: o.Options,
		X:       o.X,
		Y:       o.Y,
		Color:   o.Fill,
		Smooth:  o.Smooth,
		Area:    true,
		Stacked: o.Stacked,
	})
}
