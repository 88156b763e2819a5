package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Status domain.LoanStatus // empty for platform rows
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// LedgerTree flattens a dashboard and its loan lists into tree rows:
// one root per platform and one child per loan.
func LedgerTree(d app.Dashboard, lists map[string]app.LoanList) []TreeItem {
	var items []TreeItem
	for _, c := range d.Cards {
		items = append(items, TreeItem{
			Title:  c.Icon + " " + c.Name,
			Detail: Money(c.Remaining),
		})
		rows := lists[c.PlatformID].Rows
		for i, r := range rows {
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("%s %s", Money(r.Amount), Dim("due "+r.DueDate)),
				Level:  1,
				IsLast: i == len(rows)-1,
				Status: r.Status,
				Detail: Money(r.Owed),
			})
		}
	}
	return items
}

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Paid loans get a green ✔ prefix,
// overdue loans a red ▲ prefix, and detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		statusPrefix := ""
		switch item.Status {
		case domain.LoanPaid:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case domain.LoanOverdue:
			statusPrefix = StyleRed.Render("▲ ")
		case domain.LoanActive:
			statusPrefix = StyleYellowBold.Render("● ")
		default:
			title = Bold(title)
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := max(0, maxContentWidth-lipgloss.Width(li.content))
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
