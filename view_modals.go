package main

import (
	"fmt"
	"strings"

	"fintrack/internal/store"
)

var formFieldLabels = [fieldCount]string{"Title", "Amount", "Category", "Date"}

func (m model) formView() string {
	f := m.form
	title := "Add Expense"
	if f.editingID != 0 {
		title = "Edit Expense"
	}

	lines := []string{titleStyle.Render(title), ""}
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fmt.Sprintf("%-10s", formFieldLabels[i]))
		lines = append(lines, label+f.inputs[i].View())
		if msg, ok := f.errs[i]; ok {
			lines = append(lines, "          "+errStyle.Render(msg))
		}
	}
	lines = append(lines, "", dimStyle.Render("enter saves · tab next field · esc cancels"))
	return strings.Join(lines, "\n")
}

func (m model) confirmDeleteView() string {
	title := "this expense"
	for _, e := range m.doc.Expenses {
		if e.ID == m.confirmDelete {
			title = fmt.Sprintf("%q (%s)", e.Title, money(m.cfg.UI.CurrencySymbol, e.Amount))
			break
		}
	}
	lines := []string{
		titleStyle.Render("Delete Expense"),
		"",
		fmt.Sprintf("Delete %s?", title),
		"",
		dimStyle.Render("y confirms · n cancels"),
	}
	return strings.Join(lines, "\n")
}

func (m model) savedNamingView() string {
	lines := []string{
		titleStyle.Render("Save Search"),
		"",
		m.nameInput.View(),
		"",
		dimStyle.Render("enter saves · esc cancels"),
	}
	return strings.Join(lines, "\n")
}

func (m model) savedPickerView() string {
	lines := []string{titleStyle.Render("Saved Searches"), ""}
	for i, s := range m.searches {
		prefix := "  "
		if i == m.savedCursor {
			prefix = cursorStyle.Render("> ")
		}
		desc := savedSearchSummary(s.Term, s.Category, store.DateRange(s.Range))
		lines = append(lines, prefix+s.Name+"  "+dimStyle.Render(desc))
	}
	lines = append(lines, "", dimStyle.Render("enter applies · d deletes · esc closes"))
	return strings.Join(lines, "\n")
}

func savedSearchSummary(term, category string, r store.DateRange) string {
	var parts []string
	if term != "" {
		parts = append(parts, "/"+term)
	}
	if category != "" {
		parts = append(parts, category)
	}
	parts = append(parts, r.Label())
	return strings.Join(parts, " · ")
}
