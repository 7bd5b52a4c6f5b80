package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/insper-data/insperplot/pkg/brand"
)

const maxGridColumns = 4

// accentColor highlights stat values and header rules.
var accentColor = brand.Colors["reds1"]

// Card renders a bordered card container.
type Card struct {
	Title    string
	Subtitle string
	Content  Renderable
}

// NewCard creates a new card.
func NewCard(title, subtitle string) *Card {
	return &Card{Title: title, Subtitle: subtitle}
}

// WithContent sets the card content.
func (c *Card) WithContent(content Renderable) *Card {
	c.Content = content

	return c
}

// Render writes the card HTML.
func (c *Card) Render(w io.Writer) error {
	data := cardData{
		Title:    c.Title,
		Subtitle: c.Subtitle,
	}

	if c.Content != nil {
		var buf bytes.Buffer

		err := c.Content.Render(&buf)
		if err != nil {
			return fmt.Errorf("rendering card content: %w", err)
		}

		data.Content = template.HTML(buf.String())
	}

	html := mustRenderTemplate("card.html", data)

	_, err := w.Write([]byte(html))
	if err != nil {
		return fmt.Errorf("writing card: %w", err)
	}

	return nil
}

// Text renders plain escaped text content.
type Text struct {
	Content string
}

// NewText creates a new text block.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// Render writes the text content.
func (t *Text) Render(w io.Writer) error {
	_, err := w.Write([]byte(template.HTMLEscapeString(t.Content)))
	if err != nil {
		return fmt.Errorf("writing text: %w", err)
	}

	return nil
}

// Grid renders a responsive grid layout.
type Grid struct {
	Columns int
	Items   []Renderable
}

// NewGrid creates a new grid layout, clamping columns to [1, 4].
func NewGrid(columns int, items ...Renderable) *Grid {
	if columns < 1 {
		columns = 1
	}

	if columns > maxGridColumns {
		columns = maxGridColumns
	}

	return &Grid{Columns: columns, Items: items}
}

// Render writes the grid HTML.
func (g *Grid) Render(w io.Writer) error {
	items := make([]template.HTML, len(g.Items))

	for i, item := range g.Items {
		if item != nil {
			var buf bytes.Buffer

			err := item.Render(&buf)
			if err != nil {
				return fmt.Errorf("rendering grid item %d: %w", i, err)
			}

			items[i] = template.HTML(buf.String())
		}
	}

	html := mustRenderTemplate("grid.html", gridData{
		Columns: g.Columns,
		Items:   items,
	})

	_, err := w.Write([]byte(html))
	if err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}

	return nil
}

// Stat renders a single metric display.
type Stat struct {
	Label string
	Value string
	Trend string
}

// NewStat creates a new stat display.
func NewStat(label, value string) *Stat {
	return &Stat{Label: label, Value: value}
}

// WithTrend sets the trend line under the value.
func (s *Stat) WithTrend(trend string) *Stat {
	s.Trend = trend

	return s
}

// Render writes the stat HTML.
func (s *Stat) Render(w io.Writer) error {
	html := mustRenderTemplate("stat.html", statData{
		Label: s.Label,
		Value: s.Value,
		Trend: s.Trend,
	})

	_, err := w.Write([]byte(html))
	if err != nil {
		return fmt.Errorf("writing stat: %w", err)
	}

	return nil
}

// Table renders an HTML table.
type Table struct {
	Headers []string
	Rows    [][]string
	Striped bool
}

// NewTable creates a new striped table.
func NewTable(headers []string) *Table {
	return &Table{Headers: headers, Striped: true}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) *Table {
	t.Rows = append(t.Rows, cells)

	return t
}

// WithStriped enables or disables striping.
func (t *Table) WithStriped(striped bool) *Table {
	t.Striped = striped

	return t
}

// Render writes the table HTML. Cells may carry raw HTML.
func (t *Table) Render(w io.Writer) error {
	htmlRows := make([][]template.HTML, len(t.Rows))

	for i, row := range t.Rows {
		htmlRows[i] = make([]template.HTML, len(row))

		for j, cell := range row {
			htmlRows[i][j] = template.HTML(cell)
		}
	}

	html := mustRenderTemplate("table.html", tableData{
		Headers: t.Headers,
		Rows:    htmlRows,
		Striped: t.Striped,
	})

	_, err := w.Write([]byte(html))
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
