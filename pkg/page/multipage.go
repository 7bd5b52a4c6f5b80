package page

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/insper-data/insperplot/pkg/theme"
)

const (
	indexFileName    = "index.html"
	indexTitle       = "Chart Gallery"
	indexDescription = "Select a chart to view it."
)

// PageMeta carries metadata about a rendered page for the index.
type PageMeta struct {
	ID          string // Filename stem, e.g. "bar", "scatter".
	Title       string // Display title.
	Description string // Short description for the index card.
}

// MultiPageRenderer produces per-chart HTML pages plus an index page.
type MultiPageRenderer struct {
	OutputDir string
	Brand     string
	Theme     theme.Theme
}

// RenderChartPage renders one standalone page to <OutputDir>/<id>.html with
// a navigation link back to the index.
func (r *MultiPageRenderer) RenderChartPage(id, title string, sections []Section) error {
	p := New(title, "")

	if r.Theme != (theme.Theme{}) {
		p.Theme = r.Theme
	}

	if r.Brand != "" {
		p.Brand = r.Brand
	}

	navHTML, err := renderTemplate("nav.html", nil)
	if err != nil {
		return fmt.Errorf("render nav: %w", err)
	}

	navSection := Section{Chart: rawHTML(navHTML)}
	p.Sections = append([]Section{navSection}, sections...)

	outPath := filepath.Join(r.OutputDir, id+".html")

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	renderErr := HTMLRenderer{}.Render(f, p)
	if renderErr != nil {
		return fmt.Errorf("render %s: %w", id, renderErr)
	}

	return nil
}

// RenderIndex renders an index page with navigation cards to
// <OutputDir>/index.html.
func (r *MultiPageRenderer) RenderIndex(pages []PageMeta) error {
	p := New(indexTitle, indexDescription)

	if r.Theme != (theme.Theme{}) {
		p.Theme = r.Theme
	}

	if r.Brand != "" {
		p.Brand = r.Brand
	}

	indexContent, err := renderTemplate("index.html", indexData{Pages: pages})
	if err != nil {
		return fmt.Errorf("render index content: %w", err)
	}

	p.Sections = []Section{
		{Chart: rawHTML(indexContent)},
	}

	outPath := filepath.Join(r.OutputDir, indexFileName)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	renderErr := HTMLRenderer{}.Render(f, p)
	if renderErr != nil {
		return fmt.Errorf("render index: %w", renderErr)
	}

	return nil
}

// indexData holds template data for index.html.
type indexData struct {
	Pages []PageMeta
}

// rawHTML is a Renderable that writes pre-rendered HTML.
type rawHTML template.HTML

// Render writes the raw HTML content.
func (r rawHTML) Render(w io.Writer) error {
	_, err := w.Write([]byte(r))
	if err != nil {
		return fmt.Errorf("write raw html: %w", err)
	}

	return nil
}
