package theme

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Default chart dimensions.
const (
	defaultWidth  = "100%"
	defaultHeight = "500px"
)

const dataZoomEndPercent = 100

// Opts produces go-echarts options styled by a theme.
type Opts struct {
	theme Theme
}

// NewOpts creates an option factory for the given theme.
func NewOpts(t Theme) *Opts {
	return &Opts{theme: t}
}

// DefaultOpts returns an option factory for the institutional default theme.
func DefaultOpts() *Opts {
	return NewOpts(Default())
}

// Init returns initialization options with the themed background.
func (o *Opts) Init(width, height string) opts.Initialization {
	if width == "" {
		width = defaultWidth
	}

	if height == "" {
		height = defaultHeight
	}

	return opts.Initialization{
		Width:           width,
		Height:          height,
		BackgroundColor: o.theme.Background,
	}
}

// Title returns title options with themed text colors.
func (o *Opts) Title(title, subtitle string) opts.Title {
	return opts.Title{
		Title:         title,
		Subtitle:      subtitle,
		Left:          "left",
		TitleStyle:    &opts.TextStyle{Color: o.theme.TextColor},
		SubtitleStyle: &opts.TextStyle{Color: o.theme.TextMutedColor},
	}
}

// Legend returns legend options honoring the theme's legend position.
func (o *Opts) Legend() opts.Legend {
	top := "top"
	if o.theme.LegendPosition == "bottom" {
		top = "bottom"
	}

	return opts.Legend{
		Show:      opts.Bool(true),
		Type:      "scroll",
		Top:       top,
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: o.theme.TextMutedColor},
	}
}

// XAxis returns x-axis options with themed colors. The axis line follows
// the theme's border style.
func (o *Opts) XAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: o.theme.TextMutedColor},
		AxisLine: &opts.AxisLine{
			Show:      opts.Bool(o.theme.Border != BorderNone),
			LineStyle: &opts.LineStyle{Color: o.theme.AxisColor},
		},
	}
}

// YAxis returns y-axis options with themed colors. Grid split-lines follow
// the theme's grid flag.
func (o *Opts) YAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: o.theme.TextMutedColor},
		AxisLine: &opts.AxisLine{
			Show:      opts.Bool(o.theme.Border == BorderClosed),
			LineStyle: &opts.LineStyle{Color: o.theme.AxisColor},
		},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(o.theme.Grid),
			LineStyle: &opts.LineStyle{Color: o.theme.GridColor},
		},
	}
}

// Grid returns grid options with standard margins.
func (o *Opts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "15%",
		Bottom:       "18%",
		Left:         "5%",
		Right:        "5%",
		ContainLabel: opts.Bool(true),
	}
}

// Tooltip returns tooltip options.
func (o *Opts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

// DataZoom returns standard data zoom options.
func (o *Opts) DataZoom() []opts.DataZoom {
	return []opts.DataZoom{
		{Type: "slider", Start: 0, End: dataZoomEndPercent},
		{Type: "inside"},
	}
}

// VisualMap returns a continuous visual-map component spanning [min, max]
// with the given gradient colors.
func (o *Opts) VisualMap(minVal, maxVal float32, colors []string) opts.VisualMap {
	return opts.VisualMap{
		Calculable: opts.Bool(true),
		Min:        minVal,
		Max:        maxVal,
		InRange:    &opts.VisualMapInRange{Color: colors},
	}
}

// Theme returns the underlying theme.
func (o *Opts) Theme() Theme {
	return o.theme
}

// TextColor returns the primary text color.
func (o *Opts) TextColor() string {
	return o.theme.TextColor
}

// TextMutedColor returns the muted text color.
func (o *Opts) TextMutedColor() string {
	return o.theme.TextMutedColor
}

// GridColor returns the grid line color.
func (o *Opts) GridColor() string {
	return o.theme.GridColor
}

// AxisColor returns the axis line color.
func (o *Opts) AxisColor() string {
	return o.theme.AxisColor
}
