package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case initDoneMsg:
		m.loading = false
		m.doc = msg.doc
		if msg.err != nil {
			// The store falls back to an empty document; the app stays
			// usable and the next successful save repairs the state.
			m.loadErr = msg.err
			cmd := m.setFlash(fmt.Sprintf("Failed to load data: %v", msg.err), true)
			return m, cmd
		}
		m.loadErr = nil
		return m, nil

	case expenseSavedMsg:
		if msg.err != nil {
			// Keep the form open so the same action can be retried.
			cmd := m.setFlash(fmt.Sprintf("Save failed: %v", msg.err), true)
			return m, cmd
		}
		m.doc = msg.doc
		m.loadErr = nil
		m.form = nil
		text := "Expense updated successfully!"
		if msg.created {
			text = "Expense added successfully!"
		}
		return m, m.setFlash(text, false)

	case expenseDeletedMsg:
		if msg.err != nil {
			cmd := m.setFlash(fmt.Sprintf("Delete failed: %v", msg.err), true)
			return m, cmd
		}
		m.doc = msg.doc
		m.confirmDelete = 0
		m.clampHistoryCursor()
		return m, m.setFlash("Expense deleted successfully!", false)

	case budgetSavedMsg:
		if msg.err != nil {
			cmd := m.setFlash(fmt.Sprintf("Budget update failed: %v", msg.err), true)
			return m, cmd
		}
		m.doc = msg.doc
		m.settMode = settModeNone
		m.settInput.Blur()
		return m, m.setFlash("Budget updated successfully!", false)

	case configSavedMsg:
		if msg.err != nil {
			cmd := m.setFlash(fmt.Sprintf("Settings save failed: %v", msg.err), true)
			return m, cmd
		}
		m.cfg = msg.cfg
		m.settMode = settModeNone
		m.settInput.Blur()
		return m, m.setFlash("Settings saved.", false)

	case searchesLoadedMsg:
		if msg.err == nil {
			m.searches = msg.searches
		}
		return m, nil

	case searchesSavedMsg:
		if msg.err != nil {
			cmd := m.setFlash(fmt.Sprintf("Saved search failed: %v", msg.err), true)
			return m, cmd
		}
		m.searches = msg.searches
		return m, m.setFlash("Search saved.", false)

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key input by modal precedence: form, delete
// confirm, saved-search naming and picker, search input, settings
// edit, then tab-level bindings.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.confirmDelete != 0 {
		return m.handleConfirmKey(msg)
	}
	if m.savedNaming {
		return m.handleSavedNamingKey(msg)
	}
	if m.savedOpen {
		return m.handleSavedPickerKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.settMode != settModeNone {
		return m.handleSettingsEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Add):
		if !m.loading {
			m.form = newExpenseForm(m.now())
		}
		return m, nil
	}

	switch m.activeTab {
	case tabHistory:
		return m.handleHistoryKey(msg)
	case tabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Expense form modal
// ---------------------------------------------------------------------------

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		if m.form.focus == fieldCategory {
			m.form.completeCategory(m.doc.Categories)
		}
		m.form.nextField()
		return m, nil
	case "shift+tab", "up":
		m.form.prevField()
		return m, nil
	case "enter":
		draft, ok := m.form.validate(m.doc.Categories, m.now())
		if !ok {
			return m, nil
		}
		if id := m.form.editingID; id != 0 {
			return m, updateExpenseCmd(m.store, id, draft)
		}
		return m, addExpenseCmd(m.store, draft)
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Delete confirmation
// ---------------------------------------------------------------------------

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmDelete
		return m, deleteExpenseCmd(m.store, id)
	case "n", "esc":
		m.confirmDelete = 0
		return m, nil
	}
	return m, nil
}
