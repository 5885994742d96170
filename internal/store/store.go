package store

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when an update targets an id that is not in
// the collection.
var ErrNotFound = errors.New("expense not found")

// ValidationError rejects malformed input at the store boundary. Field
// validation belongs to the form; this is the last line of defense.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// PersistenceError wraps an adapter write failure. The triggering
// operation fails as a whole and in-memory state is unchanged, so the
// caller can surface the failure and retry the same action.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Status is the store lifecycle: uninitialized → ready | load-failed.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusLoadFailed
)

// Draft is the caller-supplied shape for add and update. The form
// collaborator validates fields and converts the amount before the
// draft reaches the store.
type Draft struct {
	Title    string
	Amount   float64
	Category string
	Date     time.Time
}

// Store is the authoritative in-memory state, mutated only through its
// operations. Every mutation is read-modify-persist-commit: the next
// document is persisted before it replaces the snapshot, so the
// in-memory and durable views never diverge from the caller's
// perspective. A mutex serializes the whole sequence.
type Store struct {
	mu      sync.Mutex
	p       Persister
	doc     Document
	status  Status
	lastID  int64
	nowFunc func() time.Time
}

// New returns a Store backed by p. Initialize must be called before
// any other operation.
func New(p Persister) *Store {
	return &Store{p: p, nowFunc: time.Now}
}

// Initialize fetches the initial document. On failure the store enters
// StatusLoadFailed with an empty snapshot; derived views must treat
// empty collections and a zero budget as the safe default.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.p.Load()
	if err != nil {
		s.status = StatusLoadFailed
		s.doc = Document{}
		return fmt.Errorf("load document: %w", err)
	}
	s.doc = doc
	s.status = StatusReady
	for _, e := range doc.Expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return nil
}

// Status reports the load lifecycle state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// nextID assigns ids from the wall clock in milliseconds, bumped past
// the last issued id so rapid successive adds never collide. Ids stay
// numeric for document compatibility.
func (s *Store) nextID() int64 {
	id := s.nowFunc().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// AddExpense appends a new expense built from draft, assigns its id,
// persists the full document, and returns the created expense.
func (s *Store) AddExpense(draft Draft) (Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		return Expense{}, err
	}

	exp := Expense{
		ID:       s.nextID(),
		Title:    draft.Title,
		Amount:   draft.Amount,
		Category: draft.Category,
		Date:     draft.Date,
	}

	next := s.doc.Clone()
	next.Expenses = append(next.Expenses, exp)
	if err := s.p.Save(next); err != nil {
		return Expense{}, &PersistenceError{Op: "add expense", Err: err}
	}
	s.doc = next
	return exp, nil
}

// UpdateExpense replaces the fields of the expense with the given id,
// preserving the id itself. Returns ErrNotFound if no expense matches.
func (s *Store) UpdateExpense(id int64, draft Draft) (Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		return Expense{}, err
	}

	next := s.doc.Clone()
	idx := -1
	for i := range next.Expenses {
		if next.Expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Expense{}, ErrNotFound
	}

	next.Expenses[idx] = Expense{
		ID:       id,
		Title:    draft.Title,
		Amount:   draft.Amount,
		Category: draft.Category,
		Date:     draft.Date,
	}
	if err := s.p.Save(next); err != nil {
		return Expense{}, &PersistenceError{Op: "update expense", Err: err}
	}
	s.doc = next
	return next.Expenses[idx], nil
}

// DeleteExpense removes the expense with the given id. Deletion is
// idempotent: a missing id is a no-op, not an error, and skips the
// persist entirely.
func (s *Store) DeleteExpense(id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	kept := next.Expenses[:0]
	removed := false
	for _, e := range next.Expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return id, nil
	}
	next.Expenses = kept

	if err := s.p.Save(next); err != nil {
		return 0, &PersistenceError{Op: "delete expense", Err: err}
	}
	s.doc = next
	return id, nil
}

// UpdateBudget replaces the budget scalar. Total must be non-negative.
func (s *Store) UpdateBudget(total float64) (Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if total < 0 {
		return Budget{}, &ValidationError{Reason: "budget total must be non-negative"}
	}

	next := s.doc.Clone()
	next.Budget = Budget{Total: total}
	if err := s.p.Save(next); err != nil {
		return Budget{}, &PersistenceError{Op: "update budget", Err: err}
	}
	s.doc = next
	return next.Budget, nil
}

func validateDraft(d Draft) error {
	if d.Title == "" {
		return &ValidationError{Reason: "title must not be empty"}
	}
	if d.Amount <= 0 {
		return &ValidationError{Reason: "amount must be positive"}
	}
	return nil
}
