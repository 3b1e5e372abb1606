package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column is a fixed-width table column. Right aligns the cells, for numbers.
type Column struct {
	Title string
	Width int
	Right bool
}

// Row holds one cell per column; missing cells render empty.
type Row []string

// Table is a plain fixed-width table with a styled header.
type Table struct {
	Columns []Column
	Rows    []Row
}

func NewTable(cols []Column) *Table {
	return &Table{Columns: cols}
}

func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Render lays out the header, a divider and every row. Cells longer than
// their column are cut with an ellipsis.
func (t *Table) Render() string {
	var sb strings.Builder

	line := func(cells []string) {
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	head := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		head[i] = headerStyle.Render(fit(col.Title, col.Width, col.Right))
		rule[i] = metaStyle.Render(strings.Repeat("-", col.Width))
	}
	line(head)
	line(rule)

	for _, r := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			var v string
			if i < len(r) {
				v = r[i]
			}
			cells[i] = cellStyle.Render(fit(v, col.Width, col.Right))
		}
		line(cells)
	}
	return sb.String()
}

// fit pads or cuts s to exactly width runes.
func fit(s string, width int, right bool) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		if width <= 1 {
			return string([]rune(s)[:width])
		}
		return string([]rune(s)[:width-1]) + "…"
	}
	pad := strings.Repeat(" ", width-n)
	if right {
		return pad + s
	}
	return s + pad
}

// KeyValueBlock renders labelled values, in order, inside a rounded box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(titleStyle.Render(title))
		sb.WriteByte('\n')
	}
	for _, p := range pairs {
		fmt.Fprintf(&sb, "  %s %s\n", metaStyle.Render(fmt.Sprintf("%-14s", p[0]+":")), valueStyle.Render(p[1]))
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
