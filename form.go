package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/store"
)

// The form owns field-level validation: the store receives only
// well-formed drafts (it re-checks just the fatal cases).

const formDateLayout = "2006-01-02"

const (
	fieldTitle = iota
	fieldAmount
	fieldCategory
	fieldDate
	fieldCount
)

type expenseForm struct {
	editingID int64 // 0 = adding
	inputs    [fieldCount]textinput.Model
	focus     int
	errs      map[int]string
}

func newExpenseForm(now time.Time) *expenseForm {
	f := &expenseForm{errs: map[int]string{}}

	title := textinput.New()
	title.Placeholder = "e.g. Grocery shopping"
	title.CharLimit = 80

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12

	category := textinput.New()
	category.Placeholder = "Food"
	category.CharLimit = 40

	date := textinput.New()
	date.Placeholder = formDateLayout
	date.CharLimit = len(formDateLayout)
	date.SetValue(now.Format(formDateLayout))

	f.inputs = [fieldCount]textinput.Model{title, amount, category, date}
	f.inputs[fieldTitle].Focus()
	return f
}

// formForExpense prefills the form from an existing expense for edits.
func formForExpense(exp store.Expense, now time.Time) *expenseForm {
	f := newExpenseForm(now)
	f.editingID = exp.ID
	f.inputs[fieldTitle].SetValue(exp.Title)
	f.inputs[fieldAmount].SetValue(strconv.FormatFloat(exp.Amount, 'f', -1, 64))
	f.inputs[fieldCategory].SetValue(exp.Category)
	f.inputs[fieldDate].SetValue(exp.Date.Local().Format(formDateLayout))
	return f
}

func (f *expenseForm) nextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *expenseForm) prevField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// update forwards key input to the focused field.
func (f *expenseForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	delete(f.errs, f.focus)
	return cmd
}

// completeCategory fills the category field with the first seeded
// category matching the typed prefix, if any.
func (f *expenseForm) completeCategory(categories []store.Category) {
	typed := strings.TrimSpace(f.inputs[fieldCategory].Value())
	if typed == "" {
		return
	}
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(typed)) {
			f.inputs[fieldCategory].SetValue(c.Name)
			f.inputs[fieldCategory].CursorEnd()
			return
		}
	}
}

// validate checks every field and builds the draft. On failure the
// per-field errors are recorded for rendering and ok is false.
func (f *expenseForm) validate(categories []store.Category, now time.Time) (store.Draft, bool) {
	f.errs = map[int]string{}

	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		f.errs[fieldTitle] = "Title is required"
	}

	var amount float64
	rawAmount := strings.TrimSpace(f.inputs[fieldAmount].Value())
	if rawAmount == "" {
		f.errs[fieldAmount] = "Amount is required"
	} else {
		v, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil || v <= 0 {
			f.errs[fieldAmount] = "Amount must be a positive number"
		} else {
			amount = v
		}
	}

	category := strings.TrimSpace(f.inputs[fieldCategory].Value())
	if category == "" {
		f.errs[fieldCategory] = "Category is required"
	} else if match, exact := matchCategory(categories, category); exact {
		category = match // normalize case to the seeded name
	} else if match != "" {
		f.errs[fieldCategory] = fmt.Sprintf("Unknown category — did you mean %q? (tab completes)", match)
	}
	// An unknown category with no close match is allowed through:
	// dangling references are an accepted data state.

	var date time.Time
	rawDate := strings.TrimSpace(f.inputs[fieldDate].Value())
	if d, err := time.ParseInLocation(formDateLayout, rawDate, time.Local); err != nil {
		f.errs[fieldDate] = "Date must be " + formDateLayout
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if d.After(today) {
			f.errs[fieldDate] = "Date cannot be in the future"
		} else {
			date = d
		}
	}

	if len(f.errs) > 0 {
		return store.Draft{}, false
	}
	return store.Draft{Title: title, Amount: amount, Category: category, Date: date}, true
}

// matchCategory resolves typed input against the seeded category set.
// It returns the exact (case-insensitive) match, or the closest name
// by edit distance when the typo is small relative to the name length.
func matchCategory(categories []store.Category, input string) (match string, exact bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, input) {
			return c.Name, true
		}
	}

	best := ""
	bestRatio := 0.4 // anything further is a different word, not a typo
	for _, c := range categories {
		dist := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(c.Name))
		maxlen := len(c.Name)
		if len(input) > maxlen {
			maxlen = len(input)
		}
		if maxlen == 0 {
			continue
		}
		ratio := float64(dist) / float64(maxlen)
		if ratio < bestRatio {
			bestRatio = ratio
			best = c.Name
		}
	}
	return best, false
}
