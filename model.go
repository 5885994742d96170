package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/config"
	"fintrack/internal/prefs"
	"fintrack/internal/store"
)

const appName = "FinTrack"

// Tab indices
const (
	tabDashboard = 0
	tabHistory   = 1
	tabAnalytics = 2
	tabSettings  = 3
	tabCount     = 4
)

// Settings edit modes
const (
	settModeNone = iota
	settModeBudget
	settModeCurrency
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type initDoneMsg struct {
	doc store.Document
	err error
}

type expenseSavedMsg struct {
	exp     store.Expense
	doc     store.Document
	created bool
	err     error
}

type expenseDeletedMsg struct {
	id  int64
	doc store.Document
	err error
}

type budgetSavedMsg struct {
	budget store.Budget
	doc    store.Document
	err    error
}

type configSavedMsg struct {
	cfg config.Config
	err error
}

type searchesLoadedMsg struct {
	searches []prefs.SavedSearch
	err      error
}

type searchesSavedMsg struct {
	searches []prefs.SavedSearch
	err      error
}

type flashClearMsg struct {
	seq int
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	store *store.Store
	cfg   config.Config
	keys  keyMap

	// snapshot for rendering; refreshed from the store after every
	// committed mutation
	doc     store.Document
	loading bool
	loadErr error

	width  int
	height int

	activeTab int

	// transient status flash (the notification collaborator)
	flash    string
	flashErr bool
	flashSeq int

	// history tab
	filters       store.Filters
	searchInput   textinput.Model
	searching     bool
	historyCursor int
	confirmDelete int64

	// saved searches
	searches    []prefs.SavedSearch
	savedOpen   bool
	savedCursor int
	savedNaming bool
	nameInput   textinput.Model

	// expense form modal (nil when closed)
	form *expenseForm

	// settings tab
	settMode  int
	settInput textinput.Model

	// injected clock so views and tests agree on "now"
	now func() time.Time
}

func newModel(s *store.Store, cfg config.Config) model {
	search := textinput.New()
	search.Placeholder = "Search expenses..."
	search.Prompt = "/ "
	search.CharLimit = 64

	name := textinput.New()
	name.Placeholder = "Preset name"
	name.CharLimit = 40

	sett := textinput.New()
	sett.CharLimit = 16

	return model{
		store:       s,
		cfg:         cfg,
		keys:        newKeyMap(),
		loading:     true,
		searchInput: search,
		nameInput:   name,
		settInput:   sett,
		now:         time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(initCmd(m.store), loadSearchesCmd())
}

// filteredExpenses is the history view: current filters applied to the
// snapshot at render time.
func (m model) filteredExpenses() []store.Expense {
	return store.FilterExpenses(m.doc.Expenses, m.filters, m.now())
}

// historyGroups is the filtered history bucketed per day, newest
// first, which is also the cursor traversal order.
func (m model) historyGroups() []store.DayGroup {
	return store.GroupByDay(m.filteredExpenses())
}

// expenseAtCursor resolves the history cursor to an expense.
func (m model) expenseAtCursor() (store.Expense, bool) {
	i := 0
	for _, g := range m.historyGroups() {
		for _, e := range g.Expenses {
			if i == m.historyCursor {
				return e, true
			}
			i++
		}
	}
	return store.Expense{}, false
}

func (m model) historyLen() int {
	n := 0
	for _, g := range m.historyGroups() {
		n += len(g.Expenses)
	}
	return n
}

func (m *model) clampHistoryCursor() {
	if n := m.historyLen(); m.historyCursor >= n {
		m.historyCursor = n - 1
	}
	if m.historyCursor < 0 {
		m.historyCursor = 0
	}
}

// setFlash records a transient status message and returns the command
// that clears it after a few seconds.
func (m *model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	return clearFlashCmd(m.flashSeq)
}
