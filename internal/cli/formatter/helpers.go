package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard is a compact box for one platform on the dashboard. Overdue
// cards get a red border.
func RenderCard(content string, overdue bool, selected bool) string {
	border := ColorDim
	switch {
	case overdue:
		border = ColorRed
	case selected:
		border = ColorHeader
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if selected {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(content)
}

// KeyValue renders a dim label followed by a value, padded to labelWidth.
func KeyValue(label, value string, labelWidth int) string {
	pad := labelWidth - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return Dim(label) + strings.Repeat(" ", pad+1) + value
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatTerm renders a loan term in months.
func FormatTerm(months int) string {
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}
