package store

import "time"

// Expense is a single recorded transaction. The JSON field names and
// types mirror the persisted document format, so documents written by
// earlier versions of the app load unchanged.
type Expense struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// Category is read-mostly reference data; the set is seeded once and
// expenses point at it by name.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Budget is a single scalar row, replaced wholesale on update.
type Budget struct {
	Total float64 `json:"total"`
}

// Document is the full persisted state. The Store owns the in-memory
// copy; the persistence adapter owns the durable copy.
type Document struct {
	Expenses   []Expense  `json:"expenses"`
	Categories []Category `json:"categories"`
	Budget     Budget     `json:"budget"`
}

// Clone returns a deep copy. Mutations build the next document on a
// clone so a failed persist leaves the committed snapshot untouched.
func (d Document) Clone() Document {
	out := Document{
		Expenses:   make([]Expense, len(d.Expenses)),
		Categories: make([]Category, len(d.Categories)),
		Budget:     d.Budget,
	}
	copy(out.Expenses, d.Expenses)
	copy(out.Categories, d.Categories)
	return out
}

// Fallback presentation for expenses whose category name no longer
// matches any seeded category. Dangling references are an accepted
// data state and must render, never error.
const (
	FallbackColor = "#B0B0B0"
	FallbackIcon  = "📌"
)

// DefaultDocument returns the document seeded on first run: three
// sample expenses, the fixed category set, and the default budget.
func DefaultDocument() Document {
	return Document{
		Expenses: []Expense{
			{ID: 1, Title: "Groceries", Amount: 2500, Category: "Food", Date: time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "Movie Tickets", Amount: 800, Category: "Entertainment", Date: time.Date(2025, time.July, 9, 18, 30, 0, 0, time.UTC)},
			{ID: 3, Title: "Electric Bill", Amount: 3000, Category: "Bills", Date: time.Date(2025, time.July, 5, 9, 0, 0, 0, time.UTC)},
		},
		Categories: []Category{
			{ID: 1, Name: "Food", Color: "#FF6B6B", Icon: "🍔"},
			{ID: 2, Name: "Entertainment", Color: "#6A4C93", Icon: "🎬"},
			{ID: 3, Name: "Bills", Color: "#00BFA6", Icon: "📝"},
			{ID: 4, Name: "Transport", Color: "#FFD166", Icon: "🚗"},
			{ID: 5, Name: "Shopping", Color: "#5C67F2", Icon: "🛍️"},
			{ID: 6, Name: "Health", Color: "#FF9E7D", Icon: "💊"},
			{ID: 7, Name: "Education", Color: "#61A0FF", Icon: "📚"},
			{ID: 8, Name: "Other", Color: FallbackColor, Icon: FallbackIcon},
		},
		Budget: Budget{Total: 15000},
	}
}
