package dataset

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Preview renders the first n rows as a plain text table. n <= 0 shows
// every row.
func (ds *Dataset) Preview(n int) string {
	rows := ds.Len()
	if n > 0 && n < rows {
		rows = n
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	header := make(table.Row, len(ds.columns))

	for i, c := range ds.columns {
		header[i] = fmt.Sprintf("%s <%s>", c.Name(), c.Kind())
	}

	tbl.AppendHeader(header)

	labels := make([][]string, len(ds.columns))

	for i, c := range ds.columns {
		labels[i] = c.Labels()
	}

	for r := 0; r < rows; r++ {
		row := make(table.Row, len(ds.columns))

		for i := range ds.columns {
			row[i] = labels[i][r]
		}

		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d of %d rows", rows, ds.Len())})

	return tbl.Render()
}
