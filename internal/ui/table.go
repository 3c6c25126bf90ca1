package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn describes one column of a Table.
type TableColumn struct {
	Header string
	Width  int    // minimum width; grows to fit content
	Align  string // "left", "right"
}

// Table is a simple fixed-column data table for CLI output.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns []TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row.
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col.Header)
		if col.Width > widths[i] {
			widths[i] = col.Width
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(col.Header, widths[i], "left")
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	sep := make([]string, len(t.Columns))
	for i := range t.Columns {
		sep[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableBorder.Render(strings.Join(sep, "  ")))
	b.WriteString("\n")

	for idx, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := t.Columns[i].Align
			if align == "" {
				align = "left"
			}
			cells[i] = pad(cell, widths[i], align)
		}

		var style lipgloss.Style
		if idx%2 == 0 {
			style = StyleTableRow
		} else {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int, align string) string {
	if len(s) >= width {
		return s
	}
	padding := strings.Repeat(" ", width-len(s))
	if align == "right" {
		return padding + s
	}
	return s + padding
}
