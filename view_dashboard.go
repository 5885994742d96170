package main

import (
	"fmt"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"fintrack/internal/store"
)

const (
	spendChartHeight = 8
	spendChartDays   = 14

	topCategoryRows   = 4
	recentExpenseRows = 5
)

func (m model) dashboardView() string {
	sections := []string{
		m.renderSection("Budget", m.budgetOverview()),
		m.renderSection(fmt.Sprintf("Spending — last %d days", spendChartDays), m.spendChart()),
		m.renderSection("Top Categories", m.topCategories()),
		m.renderSection("Recent Expenses", m.recentExpenses()),
	}
	return strings.Join(sections, "\n")
}

func (m model) budgetOverview() string {
	spent := store.TotalSpent(m.doc.Expenses)
	remaining := store.RemainingBudget(m.doc.Budget, m.doc.Expenses)
	budget := m.doc.Budget.Total
	symbol := m.cfg.UI.CurrencySymbol

	percent := 0.0
	if budget > 0 {
		percent = spent / budget * 100
	}

	remainingField := okStyle.Render(money(symbol, remaining))
	if remaining < 0 {
		remainingField = errStyle.Render(money(symbol, remaining) + " over budget")
	}

	barWidth := m.sectionContentWidth() - 8
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{
		labelStyle.Render(fmt.Sprintf("%-12s", "Budget")) + " " + valueStyle.Render(money(symbol, budget)),
		labelStyle.Render(fmt.Sprintf("%-12s", "Spent")) + " " + valueStyle.Render(money(symbol, spent)),
		labelStyle.Render(fmt.Sprintf("%-12s", "Remaining")) + " " + remainingField,
		"",
		progressBar(barWidth, percent, budgetGaugeColor(percent)) + dimStyle.Render(fmt.Sprintf(" %3.0f%%", percent)),
	}
	return strings.Join(lines, "\n")
}

func (m model) spendChart() string {
	now := m.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	start := end.AddDate(0, 0, -(spendChartDays - 1))
	values, dates := store.DailySpend(m.doc.Expenses, start, end)
	if len(dates) == 0 {
		return dimStyle.Render("No spending data yet.")
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	width := m.sectionContentWidth()
	chart := tslc.New(width, spendChartHeight)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(dates[0], dates[len(dates)-1])
	chart.SetViewTimeRange(dates[0], dates[len(dates)-1])
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)

	for i, d := range dates {
		chart.Push(tslc.TimePoint{Time: d, Value: values[i]})
	}

	chart.DrawBraille()
	return chart.View()
}

func (m model) topCategories() string {
	breakdown := store.CategoryBreakdown(m.doc.Expenses, m.doc.Categories)
	if len(breakdown) == 0 {
		return dimStyle.Render("No expenses yet. Press a to add one.")
	}
	if len(breakdown) > topCategoryRows {
		breakdown = breakdown[:topCategoryRows]
	}

	symbol := m.cfg.UI.CurrencySymbol
	barMax := m.sectionContentWidth() / 3
	if barMax < 5 {
		barMax = 5
	}

	var lines []string
	for _, row := range breakdown {
		bar := colorBar(int(row.Percentage/100*float64(barMax)+0.5), row.Color)
		label := padRight(row.Icon+" "+row.Name, 18)
		amount := fmt.Sprintf("%10s", money(symbol, row.Total))
		pct := dimStyle.Render(fmt.Sprintf("%5.1f%%", row.Percentage))
		lines = append(lines, label+" "+valueStyle.Render(amount)+" "+pct+" "+bar)
	}
	return strings.Join(lines, "\n")
}

func (m model) recentExpenses() string {
	groups := store.GroupByDay(m.doc.Expenses)
	symbol := m.cfg.UI.CurrencySymbol

	var lines []string
	for _, g := range groups {
		for _, e := range g.Expenses {
			if len(lines) >= recentExpenseRows {
				break
			}
			cat := store.ResolveCategory(m.doc.Categories, e.Category)
			date := dimStyle.Render(e.Date.Local().Format(m.cfg.UI.DateFormat))
			title := padRight(truncate(e.Title, 28), 28)
			amount := fmt.Sprintf("%10s", money(symbol, e.Amount))
			lines = append(lines, cat.Icon+" "+title+" "+valueStyle.Render(amount)+"  "+date)
		}
	}
	if len(lines) == 0 {
		return dimStyle.Render("No expenses yet. Press a to add one.")
	}
	return strings.Join(lines, "\n")
}
