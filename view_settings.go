package main

import (
	"fmt"
	"strings"
)

func (m model) settingsView() string {
	symbol := m.cfg.UI.CurrencySymbol

	budgetField := valueStyle.Render(money(symbol, m.doc.Budget.Total))
	currencyField := valueStyle.Render(symbol)
	switch m.settMode {
	case settModeBudget:
		budgetField = m.settInput.View()
	case settModeCurrency:
		currencyField = m.settInput.View()
	}

	general := []string{
		labelStyle.Render(fmt.Sprintf("%-20s", "Monthly budget")) + " " + budgetField,
		labelStyle.Render(fmt.Sprintf("%-20s", "Currency symbol")) + " " + currencyField,
		labelStyle.Render(fmt.Sprintf("%-20s", "Date format")) + " " + valueStyle.Render(m.cfg.UI.DateFormat),
		labelStyle.Render(fmt.Sprintf("%-20s", "Database")) + " " + dimStyle.Render(m.cfg.Database.Path),
	}

	var cats []string
	for _, c := range m.doc.Categories {
		cats = append(cats, colorBar(2, c.Color)+" "+c.Icon+" "+c.Name)
	}

	sections := []string{
		m.renderSection("Settings", strings.Join(general, "\n")),
		m.renderSection("Categories", strings.Join(cats, "\n")),
	}
	return strings.Join(sections, "\n")
}
