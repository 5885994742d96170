package main

import (
	"fmt"
	"strings"

	"fintrack/internal/store"
)

func (m model) historyView() string {
	return m.renderSection("Expense History", m.filterBar()+"\n\n"+m.historyList())
}

// filterBar shows the live search input while typing, and chips for
// whatever filters are active otherwise.
func (m model) filterBar() string {
	if m.searching {
		return m.searchInput.View()
	}

	chips := []string{dimStyle.Render(m.filters.Range.Label())}
	if m.filters.Category != "" {
		chips = append(chips, okStyle.Render(m.filters.Category))
	}
	if m.filters.Term != "" {
		chips = append(chips, valueStyle.Render(fmt.Sprintf("/%s", m.filters.Term)))
	}
	bar := strings.Join(chips, dimStyle.Render(" · "))
	if m.filters.Active() {
		bar += dimStyle.Render("   (x clears)")
	}
	return bar
}

func (m model) historyList() string {
	groups := m.historyGroups()
	if len(groups) == 0 {
		if m.filters.Active() {
			return dimStyle.Render("No expenses match the current filters.")
		}
		return dimStyle.Render("No expenses yet. Press a to add one.")
	}

	symbol := m.cfg.UI.CurrencySymbol
	titleWidth := m.sectionContentWidth() - 30
	if titleWidth < 12 {
		titleWidth = 12
	}

	var lines []string
	i := 0
	for _, g := range groups {
		lines = append(lines, dayHeaderStyle.Render(g.Day)+dimStyle.Render(fmt.Sprintf("  (%s)", money(symbol, store.TotalSpent(g.Expenses)))))
		for _, e := range g.Expenses {
			prefix := "  "
			if i == m.historyCursor {
				prefix = cursorStyle.Render("> ")
			}
			cat := store.ResolveCategory(m.doc.Categories, e.Category)
			title := padRight(truncate(e.Title, titleWidth), titleWidth)
			amount := fmt.Sprintf("%10s", money(symbol, e.Amount))
			lines = append(lines, prefix+cat.Icon+" "+title+" "+valueStyle.Render(amount)+"  "+dimStyle.Render(cat.Name))
			i++
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
