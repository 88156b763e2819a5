package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one table column. Amount columns set Right so the digits line up.
type Column struct {
	Title string
	Right bool
}

// Col is a left-aligned column.
func Col(title string) Column { return Column{Title: title} }

// NumCol is a right-aligned column for amounts and counts.
func NumCol(title string) Column { return Column{Title: title, Right: true} }

const colGap = 2

// RenderTable lays rows out under cols with a dim rule below the titles.
// Widths are measured on visible text, so styled cells align too. Missing
// cells render blank.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				cell = style(cell)
			}
			last := i == len(cols)-1
			switch {
			case c.Right:
				b.WriteString(pad + cell)
			case last:
				b.WriteString(cell)
			default:
				b.WriteString(cell + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeRow(titles, func(s string) string { return StyleHeader.Render(s) })

	rule := make([]string, len(cols))
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(rule, nil)

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
