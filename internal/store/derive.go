package store

import (
	"sort"
	"strings"
	"time"
)

// Derivations are pure functions over a document snapshot: no
// mutation, no I/O. Anything time-relative takes now as a parameter so
// views and tests share one code path.

// TotalSpent sums all expense amounts.
func TotalSpent(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// RemainingBudget is budget minus total spent. It may be negative;
// callers surface over-budget distinctly rather than clamping.
func RemainingBudget(budget Budget, expenses []Expense) float64 {
	return budget.Total - TotalSpent(expenses)
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Name       string
	Color      string
	Icon       string
	Total      float64
	Percentage float64
	Count      int
}

// CategoryBreakdown aggregates spend per category, sorted descending
// by total. Categories without transactions are excluded. Percentages
// are of the grand total and defined as 0 when nothing is spent.
func CategoryBreakdown(expenses []Expense, categories []Category) []CategoryTotal {
	grand := TotalSpent(expenses)

	out := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		row := CategoryTotal{Name: c.Name, Color: c.Color, Icon: c.Icon}
		for _, e := range expenses {
			if e.Category != c.Name {
				continue
			}
			row.Total += e.Amount
			row.Count++
		}
		if row.Count == 0 {
			continue
		}
		if grand > 0 {
			row.Percentage = row.Total / grand * 100
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// DateRange selects how far back FilterExpenses looks.
type DateRange int

const (
	RangeAll DateRange = iota
	RangeToday
	RangeWeek
	RangeMonth
	RangeYear
	rangeCount
)

var dateRangeLabels = [rangeCount]string{"All Time", "Today", "This Week", "This Month", "This Year"}

// Label returns the display name for the range.
func (r DateRange) Label() string {
	if r >= 0 && r < rangeCount {
		return dateRangeLabels[r]
	}
	return dateRangeLabels[RangeAll]
}

// Next cycles to the following range, wrapping at the end.
func (r DateRange) Next() DateRange {
	return (r + 1) % rangeCount
}

// Filters are the history-view search parameters. All active
// predicates are ANDed.
type Filters struct {
	Term     string
	Category string
	Range    DateRange
}

// Active reports whether any predicate narrows the result.
func (f Filters) Active() bool {
	return f.Term != "" || f.Category != "" || f.Range != RangeAll
}

// rangeStart returns the inclusive lower bound for r relative to now,
// in local time. The week starts on Sunday regardless of locale.
func rangeStart(r DateRange, now time.Time) (time.Time, bool) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		return dayStart, true
	case RangeWeek:
		return dayStart.AddDate(0, 0, -int(now.Weekday())), true
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case RangeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// FilterExpenses returns the expenses matching f. Term is a
// case-insensitive substring match on the title; category is an exact
// match when non-empty; the date range is evaluated against now.
func FilterExpenses(expenses []Expense, f Filters, now time.Time) []Expense {
	term := strings.ToLower(f.Term)
	start, bounded := rangeStart(f.Range, now)

	var out []Expense
	for _, e := range expenses {
		if term != "" && !strings.Contains(strings.ToLower(e.Title), term) {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if bounded && e.Date.Before(start) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DayGroup is one calendar day's expenses, newest first.
type DayGroup struct {
	Day      string
	Expenses []Expense
}

// GroupByDay buckets expenses by local calendar day. Days are ordered
// most recent first; within a day expenses are ordered descending by
// full timestamp.
func GroupByDay(expenses []Expense) []DayGroup {
	buckets := make(map[string][]Expense)
	for _, e := range expenses {
		key := e.Date.Local().Format("2006-01-02")
		buckets[key] = append(buckets[key], e)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]DayGroup, 0, len(keys))
	for _, k := range keys {
		day := buckets[k]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Date.After(day[j].Date)
		})
		out = append(out, DayGroup{Day: k, Expenses: day})
	}
	return out
}

// ResolveCategory looks up a category by exact name. It is total:
// dangling references resolve to a neutral placeholder carrying the
// requested name, never an error.
func ResolveCategory(categories []Category, name string) Category {
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	return Category{Name: name, Color: FallbackColor, Icon: FallbackIcon}
}

// Summary holds the analytics insight figures.
type Summary struct {
	Count            int
	Average          float64
	Highest          float64
	ActiveCategories int
}

// Insights computes the analytics cards: transaction count, average
// and highest expense, and the number of distinct categories in use.
func Insights(expenses []Expense) Summary {
	s := Summary{Count: len(expenses)}
	if s.Count == 0 {
		return s
	}
	seen := make(map[string]bool)
	for _, e := range expenses {
		if e.Amount > s.Highest {
			s.Highest = e.Amount
		}
		seen[e.Category] = true
	}
	s.Average = TotalSpent(expenses) / float64(s.Count)
	s.ActiveCategories = len(seen)
	return s
}

// DailySpend aggregates spend per local calendar day across [start,
// end] inclusive, returning one value per day. Days without expenses
// contribute zero, so charts get a continuous series.
func DailySpend(expenses []Expense, start, end time.Time) ([]float64, []time.Time) {
	if end.Before(start) {
		return nil, nil
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.Local)

	byDay := make(map[string]float64)
	for _, e := range expenses {
		byDay[e.Date.Local().Format("2006-01-02")] += e.Amount
	}

	var values []float64
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		values = append(values, byDay[d.Format("2006-01-02")])
		dates = append(dates, d)
	}
	return values, dates
}
