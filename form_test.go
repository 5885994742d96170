package main

import (
	"strings"
	"testing"
	"time"

	"fintrack/internal/store"
)

var formNow = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.Local)

func filledForm(title, amount, category, date string) *expenseForm {
	f := newExpenseForm(formNow)
	f.inputs[fieldTitle].SetValue(title)
	f.inputs[fieldAmount].SetValue(amount)
	f.inputs[fieldCategory].SetValue(category)
	f.inputs[fieldDate].SetValue(date)
	return f
}

func TestFormDefaultsDateToToday(t *testing.T) {
	f := newExpenseForm(formNow)
	if got := f.inputs[fieldDate].Value(); got != "2025-07-15" {
		t.Fatalf("default date = %q, want 2025-07-15", got)
	}
}

func TestFormForExpensePrefillsFields(t *testing.T) {
	exp := store.Expense{
		ID:       42,
		Title:    "Movie Tickets",
		Amount:   800,
		Category: "Entertainment",
		Date:     time.Date(2025, time.July, 9, 18, 30, 0, 0, time.Local),
	}
	f := formForExpense(exp, formNow)
	if f.editingID != 42 {
		t.Fatalf("editingID = %d, want 42", f.editingID)
	}
	if got := f.inputs[fieldTitle].Value(); got != "Movie Tickets" {
		t.Fatalf("title = %q", got)
	}
	if got := f.inputs[fieldAmount].Value(); got != "800" {
		t.Fatalf("amount = %q, want 800", got)
	}
	if got := f.inputs[fieldDate].Value(); got != "2025-07-09" {
		t.Fatalf("date = %q, want 2025-07-09", got)
	}
}

func TestFormValidate(t *testing.T) {
	categories := store.DefaultDocument().Categories

	tests := []struct {
		name      string
		title     string
		amount    string
		category  string
		date      string
		wantOK    bool
		wantField int
	}{
		{name: "valid", title: "Coffee", amount: "120.50", category: "Food", date: "2025-07-14", wantOK: true},
		{name: "empty title", title: "  ", amount: "10", category: "Food", date: "2025-07-14", wantField: fieldTitle},
		{name: "empty amount", title: "Coffee", amount: "", category: "Food", date: "2025-07-14", wantField: fieldAmount},
		{name: "zero amount", title: "Coffee", amount: "0", category: "Food", date: "2025-07-14", wantField: fieldAmount},
		{name: "negative amount", title: "Coffee", amount: "-5", category: "Food", date: "2025-07-14", wantField: fieldAmount},
		{name: "non-numeric amount", title: "Coffee", amount: "ten", category: "Food", date: "2025-07-14", wantField: fieldAmount},
		{name: "empty category", title: "Coffee", amount: "10", category: "", date: "2025-07-14", wantField: fieldCategory},
		{name: "category typo", title: "Coffee", amount: "10", category: "Fod", date: "2025-07-14", wantField: fieldCategory},
		{name: "bad date", title: "Coffee", amount: "10", category: "Food", date: "14/07/2025", wantField: fieldDate},
		{name: "future date", title: "Coffee", amount: "10", category: "Food", date: "2025-07-16", wantField: fieldDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filledForm(tt.title, tt.amount, tt.category, tt.date)
			draft, ok := f.validate(categories, formNow)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (errs: %v)", ok, tt.wantOK, f.errs)
			}
			if !ok {
				if _, present := f.errs[tt.wantField]; !present {
					t.Fatalf("no error recorded for field %d, errs: %v", tt.wantField, f.errs)
				}
				return
			}
			if draft.Title != "Coffee" || draft.Amount != 120.50 || draft.Category != "Food" {
				t.Fatalf("draft = %+v", draft)
			}
		})
	}
}

func TestFormValidateNormalizesCategoryCase(t *testing.T) {
	categories := store.DefaultDocument().Categories
	f := filledForm("Lunch", "250", "food", "2025-07-14")
	draft, ok := f.validate(categories, formNow)
	if !ok {
		t.Fatalf("validate failed: %v", f.errs)
	}
	if draft.Category != "Food" {
		t.Fatalf("category = %q, want normalized %q", draft.Category, "Food")
	}
}

func TestFormValidateTypoSuggestsClosestCategory(t *testing.T) {
	categories := store.DefaultDocument().Categories
	f := filledForm("Bus fare", "40", "Transprot", "2025-07-14")
	if _, ok := f.validate(categories, formNow); ok {
		t.Fatalf("validate should reject near-miss category")
	}
	if msg := f.errs[fieldCategory]; !strings.Contains(msg, "Transport") {
		t.Fatalf("error %q should suggest Transport", msg)
	}
}

func TestFormValidateAllowsUnknownCategory(t *testing.T) {
	categories := store.DefaultDocument().Categories
	f := filledForm("Stamps", "15", "Crypto", "2025-07-14")
	draft, ok := f.validate(categories, formNow)
	if !ok {
		t.Fatalf("unknown category with no close match should pass: %v", f.errs)
	}
	if draft.Category != "Crypto" {
		t.Fatalf("category = %q, want Crypto preserved", draft.Category)
	}
}

func TestMatchCategory(t *testing.T) {
	categories := store.DefaultDocument().Categories

	tests := []struct {
		input     string
		wantMatch string
		wantExact bool
	}{
		{"Food", "Food", true},
		{"bills", "Bills", true},
		{"Fod", "Food", false},
		{"Bils", "Bills", false},
		{"Crypto", "", false},
	}
	for _, tt := range tests {
		match, exact := matchCategory(categories, tt.input)
		if match != tt.wantMatch || exact != tt.wantExact {
			t.Fatalf("matchCategory(%q) = (%q, %v), want (%q, %v)", tt.input, match, exact, tt.wantMatch, tt.wantExact)
		}
	}
}

func TestCompleteCategoryPrefix(t *testing.T) {
	categories := store.DefaultDocument().Categories
	f := newExpenseForm(formNow)
	f.inputs[fieldCategory].SetValue("ent")
	f.completeCategory(categories)
	if got := f.inputs[fieldCategory].Value(); got != "Entertainment" {
		t.Fatalf("completed = %q, want Entertainment", got)
	}

	f.inputs[fieldCategory].SetValue("zz")
	f.completeCategory(categories)
	if got := f.inputs[fieldCategory].Value(); got != "zz" {
		t.Fatalf("non-matching prefix should stay put, got %q", got)
	}
}
