package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/prefs"
	"fintrack/internal/store"
)

// categoryCycle returns the category filter values in cycle order: the
// empty string (all categories) followed by each seeded name.
func (m model) categoryCycle() []string {
	out := []string{""}
	for _, c := range m.doc.Categories {
		out = append(out, c.Name)
	}
	return out
}

func (m model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.UpDown):
		switch msg.String() {
		case "up", "k":
			m.historyCursor--
		case "down", "j":
			m.historyCursor++
		}
		m.clampHistoryCursor()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.filters.Term)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Category):
		cycle := m.categoryCycle()
		idx := 0
		for i, name := range cycle {
			if name == m.filters.Category {
				idx = i
				break
			}
		}
		m.filters.Category = cycle[(idx+1)%len(cycle)]
		m.clampHistoryCursor()
		return m, nil

	case key.Matches(msg, m.keys.Timeframe):
		m.filters.Range = m.filters.Range.Next()
		m.clampHistoryCursor()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilt):
		m.filters = store.Filters{}
		m.clampHistoryCursor()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if exp, ok := m.expenseAtCursor(); ok {
			m.form = formForExpense(exp, m.now())
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if exp, ok := m.expenseAtCursor(); ok {
			m.confirmDelete = exp.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.SaveSearch):
		if !m.filters.Active() {
			cmd := m.setFlash("Nothing to save: no filters are active.", true)
			return m, cmd
		}
		m.savedNaming = true
		m.nameInput.SetValue(defaultSearchName(m.filters))
		m.nameInput.CursorEnd()
		m.nameInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Searches):
		if len(m.searches) == 0 {
			cmd := m.setFlash("No saved searches yet. Press s to save the active filters.", false)
			return m, cmd
		}
		m.savedOpen = true
		m.savedCursor = 0
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Live search input
// ---------------------------------------------------------------------------

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.filters.Term = ""
		m.searchInput.SetValue("")
		m.clampHistoryCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filters.Term = m.searchInput.Value()
	m.clampHistoryCursor()
	return m, cmd
}

// ---------------------------------------------------------------------------
// Saved searches
// ---------------------------------------------------------------------------

// defaultSearchName describes the active filters, e.g. "coffee · Food
// · This Month".
func defaultSearchName(f store.Filters) string {
	var parts []string
	if f.Term != "" {
		parts = append(parts, f.Term)
	}
	if f.Category != "" {
		parts = append(parts, f.Category)
	}
	if f.Range != store.RangeAll {
		parts = append(parts, f.Range.Label())
	}
	return strings.Join(parts, " · ")
}

func (m model) handleSavedNamingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.savedNaming = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.savedNaming = false
		m.nameInput.Blur()
		next := append([]prefs.SavedSearch{}, m.searches...)
		next = append(next, prefs.NewSavedSearch(name, m.filters.Term, m.filters.Category, int(m.filters.Range)))
		return m, saveSearchesCmd(next)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m model) handleSavedPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "S":
		m.savedOpen = false
		return m, nil
	case "up", "k":
		if m.savedCursor > 0 {
			m.savedCursor--
		}
		return m, nil
	case "down", "j":
		if m.savedCursor < len(m.searches)-1 {
			m.savedCursor++
		}
		return m, nil
	case "d":
		if len(m.searches) == 0 {
			return m, nil
		}
		next := append([]prefs.SavedSearch{}, m.searches[:m.savedCursor]...)
		next = append(next, m.searches[m.savedCursor+1:]...)
		if m.savedCursor >= len(next) && m.savedCursor > 0 {
			m.savedCursor--
		}
		if len(next) == 0 {
			m.savedOpen = false
		}
		return m, saveSearchesCmd(next)
	case "enter":
		if m.savedCursor < len(m.searches) {
			s := m.searches[m.savedCursor]
			m.filters = store.Filters{
				Term:     s.Term,
				Category: s.Category,
				Range:    store.DateRange(s.Range),
			}
			m.searchInput.SetValue(s.Term)
			m.historyCursor = 0
		}
		m.savedOpen = false
		return m, nil
	}
	return m, nil
}
