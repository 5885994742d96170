package main

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"fintrack/internal/store"
)

const categoryChartHeight = 10

func (m model) analyticsView() string {
	sections := []string{
		m.renderSection("Spending by Category", m.categoryChart()),
		m.renderSection("Insights", m.insightCards()),
	}
	return strings.Join(sections, "\n")
}

func (m model) categoryChart() string {
	breakdown := store.CategoryBreakdown(m.doc.Expenses, m.doc.Categories)
	if len(breakdown) == 0 {
		return dimStyle.Render("No expenses yet. Press a to add one.")
	}

	width := m.sectionContentWidth()
	bc := barchart.New(width, categoryChartHeight, barchart.WithHorizontalBars())
	data := make([]barchart.BarData, 0, len(breakdown))
	for _, row := range breakdown {
		data = append(data, barchart.BarData{
			Label: row.Name,
			Values: []barchart.BarValue{{
				Name:  row.Name,
				Value: row.Total,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)),
			}},
		})
	}
	bc.PushAll(data)
	bc.Draw()

	symbol := m.cfg.UI.CurrencySymbol
	var legend []string
	for _, row := range breakdown {
		legend = append(legend, fmt.Sprintf("%s %s %s %s",
			colorBar(2, row.Color),
			padRight(row.Icon+" "+row.Name, 18),
			valueStyle.Render(fmt.Sprintf("%10s", money(symbol, row.Total))),
			dimStyle.Render(fmt.Sprintf("%5.1f%% · %d txns", row.Percentage, row.Count))))
	}

	return bc.View() + "\n\n" + strings.Join(legend, "\n")
}

func (m model) insightCards() string {
	s := store.Insights(m.doc.Expenses)
	if s.Count == 0 {
		return dimStyle.Render("Add a few expenses to see insights.")
	}

	symbol := m.cfg.UI.CurrencySymbol
	lines := []string{
		labelStyle.Render(fmt.Sprintf("%-20s", "Transactions")) + " " + valueStyle.Render(fmt.Sprintf("%d", s.Count)),
		labelStyle.Render(fmt.Sprintf("%-20s", "Average expense")) + " " + valueStyle.Render(money(symbol, s.Average)),
		labelStyle.Render(fmt.Sprintf("%-20s", "Highest expense")) + " " + valueStyle.Render(money(symbol, s.Highest)),
		labelStyle.Render(fmt.Sprintf("%-20s", "Active categories")) + " " + valueStyle.Render(fmt.Sprintf("%d", s.ActiveCategories)),
	}
	return strings.Join(lines, "\n")
}
