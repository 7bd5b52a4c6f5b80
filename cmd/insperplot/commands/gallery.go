package commands

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/insper-data/insperplot/pkg/aes"
	"github.com/insper-data/insperplot/pkg/brand"
	"github.com/insper-data/insperplot/pkg/config"
	"github.com/insper-data/insperplot/pkg/dataset"
	"github.com/insper-data/insperplot/pkg/export"
	"github.com/insper-data/insperplot/pkg/locale"
	"github.com/insper-data/insperplot/pkg/logging"
	insperpage "github.com/insper-data/insperplot/pkg/page"
	"github.com/insper-data/insperplot/pkg/plot"
	"github.com/insper-data/insperplot/pkg/theme"
)

const galleryDirPerm = 0o750

// gallerySampleSize is the row count of the generated numeric samples.
const gallerySampleSize = 200

// NewGalleryCommand creates the gallery subcommand.
func NewGalleryCommand() *cobra.Command {
	var outputDir, configPath string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render a sample gallery of every chart type",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGallery(outputDir, configPath)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

// galleryEntry couples one chart page with its index card.
type galleryEntry struct {
	meta    insperpage.PageMeta
	section insperpage.Section
}

func runGallery(outputDir, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.Default(cfg.Logging)

	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	mkErr := os.MkdirAll(outputDir, galleryDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	entries, summary, err := buildGallery(cfg)
	if err != nil {
		return err
	}

	pageTheme := resolvedTheme(cfg)

	renderer := &insperpage.MultiPageRenderer{
		OutputDir: outputDir,
		Brand:     "Insper",
		Theme:     pageTheme,
	}

	pages := make([]insperpage.PageMeta, 0, len(entries))

	for _, entry := range entries {
		renderErr := renderer.RenderChartPage(entry.meta.ID, entry.meta.Title,
			[]insperpage.Section{entry.section})
		if renderErr != nil {
			log.Warn("skipping chart", "id", entry.meta.ID, "error", renderErr)

			continue
		}

		pages = append(pages, entry.meta)
	}

	indexErr := renderer.RenderIndex(pages)
	if indexErr != nil {
		return fmt.Errorf("render index: %w", indexErr)
	}

	// One combined report with every chart on a single page.
	report := insperpage.New("Chart Gallery", "All chart types on one page")
	report.Theme = pageTheme
	report.Add(summary)

	for _, entry := range entries {
		report.Add(entry.section)
	}

	saveErr := export.Save(report, filepath.Join(outputDir, "report.html"), log)
	if saveErr != nil {
		return saveErr
	}

	log.Info("gallery rendered",
		slog.String("dir", outputDir),
		slog.Int("pages", len(pages)))

	return nil
}

// resolvedTheme builds the configured theme with its font preferences
// resolved against the configured font environment.
func resolvedTheme(cfg *config.Config) theme.Theme {
	t := cfg.BuildTheme()
	session := cfg.Session()
	t.TitleFont = t.TitleFamily(session)
	t.BodyFont = t.BodyFamily(session)

	return t
}

func buildGallery(cfg *config.Config) ([]galleryEntry, insperpage.Section, error) {
	chartTheme := resolvedTheme(cfg)
	base := plot.Options{
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
		Palette: cfg.Chart.Palette,
		Theme:   &chartTheme,
	}

	sales := salesSample()
	measures := measureSample()
	fmtBR := locale.BrazilianPortuguese()

	var entries []galleryEntry

	add := func(id, title, desc string, chart insperpage.Renderable, err error) error {
		if err != nil {
			return fmt.Errorf("build %s: %w", id, err)
		}

		entries = append(entries, galleryEntry{
			meta: insperpage.PageMeta{ID: id, Title: title, Description: desc},
			section: insperpage.Section{
				Title:    title,
				Subtitle: desc,
				Chart:    insperpage.WrapChart(chart),
			},
		})

		return nil
	}

	bar, err := plot.Bar(sales, plot.BarOptions{
		Options:  withTitle(base, "Sales by Region"),
		X:        "region",
		Y:        "sales",
		Fill:     aes.Column("segment"),
		Position: plot.PositionGroup,
	})
	if err := add("bar", "Bar Chart",
		"Total: "+fmtBR.Currency(totalColumn(sales, "sales")), bar, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	scatter, err := plot.Scatter(measures, plot.ScatterOptions{
		Options:   withTitle(base, "Weight vs Height"),
		X:         "height",
		Y:         "weight",
		Color:     aes.Column("cohort"),
		PointSize: cfg.Chart.PointSize,
	})
	if err := add("scatter", "Scatter Plot", "Grouped by cohort", scatter, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	ts, err := plot.TimeSeries(sales, plot.TimeSeriesOptions{
		Options: withTitle(base, "Sales over Time"),
		X:       "month",
		Y:       "sales",
		Color:   aes.Column("segment"),
	})
	if err := add("timeseries", "Time Series", "One line per segment", ts, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	area, err := plot.Area(sales, plot.AreaOptions{
		Options: withTitle(base, "Stacked Sales"),
		X:       "month",
		Y:       "sales",
		Fill:    aes.Column("segment"),
		Stacked: true,
	})
	if err := add("area", "Area Chart", "Stacked by segment", area, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	hist, err := plot.Histogram(measures, plot.HistogramOptions{
		Options: withTitle(base, "Height Distribution"),
		X:       "height",
	})
	if err := add("histogram", "Histogram", "Automatic bin selection", hist, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	dens, err := plot.Density(measures, plot.DensityOptions{
		Options: withTitle(base, "Height Density"),
		X:       "height",
		Color:   aes.Column("cohort"),
		Fill:    true,
	})
	if err := add("density", "Density Plot", "Kernel density per cohort", dens, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	box, err := plot.Box(measures, plot.BoxOptions{
		Options: withTitle(base, "Weight by Cohort"),
		X:       "cohort",
		Y:       "weight",
	})
	if err := add("box", "Box Plot", "Five-number summaries", box, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	violin, err := plot.Violin(measures, plot.ViolinOptions{
		Options: withTitle(base, "Weight Distributions"),
		X:       "cohort",
		Y:       "weight",
		Fill:    aes.Column("cohort"),
	})
	if err := add("violin", "Violin Plot", "Mirrored density silhouettes", violin, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	heat, err := plot.Heatmap(sales, plot.HeatmapOptions{
		Options: withTitle(base, "Sales Heatmap"),
		X:       "region",
		Y:       "segment",
		Value:   "sales",
	})
	if err := add("heatmap", "Heatmap", "Summed sales per cell", heat, err); err != nil {
		return nil, insperpage.Section{}, err
	}

	return entries, gallerySummary(fmtBR, sales, measures, len(entries)), nil
}

// gallerySummary assembles the overview section of the combined report:
// headline stats, the palette reference table, and a note on the samples.
func gallerySummary(fmtBR *locale.Formatter, sales, measures *dataset.Dataset,
	chartCount int) insperpage.Section {
	headline := insperpage.NewGrid(3,
		insperpage.NewStat("Total Sales", fmtBR.Currency(totalColumn(sales, "sales"))).
			WithTrend(fmtBR.Number(float64(sales.Len()), 0)+" sales rows"),
		insperpage.NewStat("Charts", fmtBR.Number(float64(chartCount), 0)),
		insperpage.NewStat("Observations",
			fmtBR.Number(float64(sales.Len()+measures.Len()), 0)),
	)

	palettes := insperpage.NewTable([]string{"palette", "kind", "colors"})
	for _, p := range brand.All() {
		palettes.AddRow(p.Name, string(p.Kind), fmtBR.Number(float64(p.Size()), 0))
	}

	body := insperpage.NewGrid(1,
		headline,
		insperpage.NewCard("Sample Data", "").WithContent(insperpage.NewText(
			"Deterministic regional sales and cohort measurements; "+
				"amounts formatted as Brazilian reais.")),
		insperpage.NewCard("Brand Palettes", "Available for every chart").
			WithContent(palettes),
	)

	return insperpage.Section{
		Title:    "Overview",
		Subtitle: "Gallery totals and palette reference",
		Chart:    body,
	}
}

func withTitle(o plot.Options, title string) plot.Options {
	o.Title = title

	return o
}

// salesSample builds a small categorical dataset: four regions, two
// segments, six months.
func salesSample() *dataset.Dataset {
	regions := []string{"Sudeste", "Sul", "Nordeste", "Centro-Oeste"}
	segments := []string{"varejo", "atacado"}
	months := []string{"jan", "fev", "mar", "abr", "mai", "jun"}

	var (
		regionCol  []string
		segmentCol []string
		monthCol   []string
		salesCol   []float64
	)

	for mi, month := range months {
		for ri, region := range regions {
			for si, segment := range segments {
				regionCol = append(regionCol, region)
				segmentCol = append(segmentCol, segment)
				monthCol = append(monthCol, month)

				base := 1000.0 + 350.0*float64(ri) + 180.0*float64(si)
				seasonal := 220.0 * math.Sin(float64(mi)/2.0+float64(ri))
				salesCol = append(salesCol, base+seasonal)
			}
		}
	}

	return dataset.MustNew("sales",
		dataset.Strings("region", regionCol),
		dataset.Strings("segment", segmentCol),
		dataset.Strings("month", monthCol),
		dataset.Floats("sales", salesCol),
	)
}

// measureSample builds a deterministic numeric dataset with two cohorts.
func measureSample() *dataset.Dataset {
	var (
		heights []float64
		weights []float64
		cohorts []string
	)

	for i := 0; i < gallerySampleSize; i++ {
		t := float64(i) / float64(gallerySampleSize)

		cohort := "A"
		mean := 1.68

		if i%2 == 1 {
			cohort = "B"
			mean = 1.78
		}

		// Smooth deterministic spread around each cohort mean.
		h := mean + 0.09*math.Sin(13.0*t) + 0.04*math.Cos(31.0*t)
		w := 22.5*h*h + 6.0*math.Sin(7.0*t)

		heights = append(heights, h)
		weights = append(weights, w)
		cohorts = append(cohorts, cohort)
	}

	return dataset.MustNew("measures",
		dataset.Floats("height", heights),
		dataset.Floats("weight", weights),
		dataset.Strings("cohort", cohorts),
	)
}

// totalColumn sums a numeric column, for display in index cards.
func totalColumn(ds *dataset.Dataset, name string) float64 {
	col, ok := ds.Column(name)
	if !ok {
		return 0
	}

	var sum float64

	for _, v := range col.Floats() {
		sum += v
	}

	return sum
}
