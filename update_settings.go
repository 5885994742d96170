package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b":
		m.settMode = settModeBudget
		m.settInput.Placeholder = "Monthly budget"
		m.settInput.SetValue(strconv.FormatFloat(m.doc.Budget.Total, 'f', -1, 64))
		m.settInput.CursorEnd()
		m.settInput.Focus()
		return m, nil
	case "c":
		m.settMode = settModeCurrency
		m.settInput.Placeholder = "Currency symbol"
		m.settInput.SetValue(m.cfg.UI.CurrencySymbol)
		m.settInput.CursorEnd()
		m.settInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m model) handleSettingsEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.settMode = settModeNone
		m.settInput.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.settInput.Value())
		switch m.settMode {
		case settModeBudget:
			total, err := strconv.ParseFloat(value, 64)
			if err != nil || total < 0 {
				cmd := m.setFlash("Budget must be a non-negative number.", true)
				return m, cmd
			}
			return m, updateBudgetCmd(m.store, total)
		case settModeCurrency:
			if value == "" {
				cmd := m.setFlash("Currency symbol cannot be empty.", true)
				return m, cmd
			}
			cfg := m.cfg
			cfg.UI.CurrencySymbol = value
			return m, saveConfigCmd(cfg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.settInput, cmd = m.settInput.Update(msg)
	return m, cmd
}
