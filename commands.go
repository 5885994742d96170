package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/config"
	"fintrack/internal/prefs"
	"fintrack/internal/store"
)

// Store operations run inside tea commands so the update loop never
// blocks on persistence. The store serializes mutations internally;
// each command returns a ...DoneMsg carrying the refreshed snapshot.

func initCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		err := s.Initialize()
		return initDoneMsg{doc: s.Snapshot(), err: err}
	}
}

func addExpenseCmd(s *store.Store, draft store.Draft) tea.Cmd {
	return func() tea.Msg {
		exp, err := s.AddExpense(draft)
		return expenseSavedMsg{exp: exp, doc: s.Snapshot(), created: true, err: err}
	}
}

func updateExpenseCmd(s *store.Store, id int64, draft store.Draft) tea.Cmd {
	return func() tea.Msg {
		exp, err := s.UpdateExpense(id, draft)
		return expenseSavedMsg{exp: exp, doc: s.Snapshot(), err: err}
	}
}

func deleteExpenseCmd(s *store.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		removed, err := s.DeleteExpense(id)
		return expenseDeletedMsg{id: removed, doc: s.Snapshot(), err: err}
	}
}

func updateBudgetCmd(s *store.Store, total float64) tea.Cmd {
	return func() tea.Msg {
		budget, err := s.UpdateBudget(total)
		return budgetSavedMsg{budget: budget, doc: s.Snapshot(), err: err}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{cfg: cfg, err: config.Save(cfg)}
	}
}

func loadSearchesCmd() tea.Cmd {
	return func() tea.Msg {
		searches, err := prefs.LoadSearches()
		return searchesLoadedMsg{searches: searches, err: err}
	}
}

func saveSearchesCmd(searches []prefs.SavedSearch) tea.Cmd {
	return func() tea.Msg {
		return searchesSavedMsg{searches: searches, err: prefs.SaveSearches(searches)}
	}
}

const flashDuration = 4 * time.Second

func clearFlashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}
