package main

import (
	"strings"
	"testing"

	"fintrack/internal/prefs"
	"fintrack/internal/store"
)

func TestViewLoading(t *testing.T) {
	m := testModel(t)
	m.loading = true
	if got := m.View(); !strings.Contains(got, "Loading") {
		t.Fatalf("loading view = %q", got)
	}
}

func TestRenderHeaderMarksActiveTab(t *testing.T) {
	out := renderHeader(appName, tabHistory, 100)
	for _, name := range tabNames {
		if !strings.Contains(out, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
	if !strings.Contains(out, appName) {
		t.Fatalf("header missing app name")
	}
}

func TestDashboardViewShowsBudgetAndRecent(t *testing.T) {
	m := testModel(t)
	out := m.View()

	for _, want := range []string{"Budget", "Spent", "Remaining", "Recent Expenses", "Groceries", "Top Categories"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
	// 6300 spent of 15000
	if !strings.Contains(out, "₹6300.00") {
		t.Fatalf("dashboard missing total spent")
	}
	if !strings.Contains(out, "₹8700.00") {
		t.Fatalf("dashboard missing remaining budget")
	}
}

func TestDashboardOverBudgetSignal(t *testing.T) {
	m := testModel(t)
	doc := m.doc.Clone()
	doc.Budget.Total = 5000
	m.doc = doc
	if out := m.View(); !strings.Contains(out, "over budget") {
		t.Fatalf("over-budget state should be called out")
	}
}

func TestHistoryViewListsGroupedExpenses(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabHistory
	out := m.View()

	for _, want := range []string{"Expense History", "Groceries", "Movie Tickets", "Electric Bill", "All Time"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history missing %q", want)
		}
	}
}

func TestHistoryViewEmptyFilterMessage(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabHistory
	m.filters.Term = "no such expense"
	if out := m.View(); !strings.Contains(out, "No expenses match") {
		t.Fatalf("empty filter state should explain itself")
	}
}

func TestHistoryViewRendersDanglingCategoryWithFallback(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabHistory
	doc := m.doc.Clone()
	doc.Expenses = append(doc.Expenses, store.Expense{
		ID: 99, Title: "Mystery purchase", Amount: 50, Category: "Retired", Date: m.now(),
	})
	m.doc = doc

	out := m.View()
	if !strings.Contains(out, "Mystery purchase") {
		t.Fatalf("dangling-category expense must still render")
	}
	if !strings.Contains(out, store.FallbackIcon) {
		t.Fatalf("dangling category should use the fallback icon")
	}
}

func TestAnalyticsViewShowsInsights(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabAnalytics
	out := m.View()

	for _, want := range []string{"Spending by Category", "Insights", "Transactions", "Average expense", "Highest expense", "₹3000.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("analytics missing %q", want)
		}
	}
}

func TestSettingsViewShowsConfigAndCategories(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabSettings
	out := m.View()

	for _, want := range []string{"Monthly budget", "Currency symbol", "Categories", "Food", "Transport"} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings missing %q", want)
		}
	}
}

func TestFormOverlayRenders(t *testing.T) {
	m := testModel(t)
	m.form = newExpenseForm(m.now())
	out := m.View()
	if !strings.Contains(out, "Add Expense") {
		t.Fatalf("form overlay missing title")
	}

	m.form.editingID = 1
	if out := m.View(); !strings.Contains(out, "Edit Expense") {
		t.Fatalf("edit overlay missing title")
	}
}

func TestConfirmDeleteOverlayNamesExpense(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabHistory
	m.confirmDelete = 1
	out := m.View()
	if !strings.Contains(out, "Delete Expense") || !strings.Contains(out, "Groceries") {
		t.Fatalf("confirm overlay should name the expense")
	}
}

func TestSavedPickerOverlayListsSearches(t *testing.T) {
	m := testModel(t)
	m.activeTab = tabHistory
	m.searches = []prefs.SavedSearch{
		{ID: "a", Name: "Food this month", Category: "Food", Range: int(store.RangeMonth)},
	}
	m.savedOpen = true
	out := m.View()
	if !strings.Contains(out, "Saved Searches") || !strings.Contains(out, "Food this month") {
		t.Fatalf("picker overlay missing entries")
	}
}

func TestLoadFailedViewKeepsAppUsable(t *testing.T) {
	m := testModel(t)
	m.loadErr = errStub{}
	out := m.View()
	if !strings.Contains(out, "Could not load saved data") {
		t.Fatalf("load-failed view missing explanation")
	}
}

type errStub struct{}

func (errStub) Error() string { return "boom" }

func TestStatusBarShowsFlash(t *testing.T) {
	m := testModel(t)
	_ = m.setFlash("Expense added successfully!", false)
	if out := m.View(); !strings.Contains(out, "Expense added successfully!") {
		t.Fatalf("flash should appear in the status bar")
	}
}
