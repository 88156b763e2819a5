package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/debtpad/internal/catalog"
)

// FormatCatalogPage renders one page of a catalog section. selected is the
// highlighted item on the page, or -1.
func FormatCatalogPage(title string, p catalog.Page, selected int) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(p.Items) == 0 {
		b.WriteString(Dim("Nothing here yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range p.Items {
		marker := "  "
		name := Bold(item.Name)
		if i == selected {
			marker = StyleHeader.Render("▸ ")
			name = StyleHeader.Render(item.Name)
		}
		b.WriteString(marker + name + "  " + StyleBlue.Render(item.URL) + "\n")
		if item.Description != "" {
			b.WriteString("    " + Dim(item.Description) + "\n")
		}
	}

	if p.ShowPagination {
		b.WriteString("\n" + FormatPager(p) + "\n")
	}
	return b.String()
}

// FormatPager renders the page buttons with the current page highlighted.
func FormatPager(p catalog.Page) string {
	nums := p.PageNumbers()
	buttons := make([]string, 0, len(nums))
	for _, n := range nums {
		label := fmt.Sprintf(" %d ", n)
		if n == p.Page {
			buttons = append(buttons, StyleHeader.Render("["+label+"]"))
		} else {
			buttons = append(buttons, Dim(" "+label+" "))
		}
	}
	return strings.Join(buttons, "")
}
