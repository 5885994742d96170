package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/store"
)

// runValidation exercises a non-TUI path against a temporary database:
// first-run seeding, a mutation, derived totals, and a reopen to prove
// the document survived the round trip.
func runValidation() error {
	dir, err := os.MkdirTemp("", "fintrack-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "validate.db")
	adapter, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	s := store.New(adapter)
	if err := s.Initialize(); err != nil {
		adapter.Close()
		return fmt.Errorf("initialize store: %w", err)
	}

	doc := s.Snapshot()
	if len(doc.Expenses) != 3 {
		adapter.Close()
		return fmt.Errorf("seeded expenses = %d, want 3", len(doc.Expenses))
	}
	if len(doc.Categories) != 8 {
		adapter.Close()
		return fmt.Errorf("seeded categories = %d, want 8", len(doc.Categories))
	}
	if doc.Budget.Total != 15000 {
		adapter.Close()
		return fmt.Errorf("seeded budget = %v, want 15000", doc.Budget.Total)
	}

	seedTotal := store.TotalSpent(doc.Expenses)
	exp, err := s.AddExpense(store.Draft{
		Title:    "Validation expense",
		Amount:   150,
		Category: "Other",
		Date:     time.Now(),
	})
	if err != nil {
		adapter.Close()
		return fmt.Errorf("add expense: %w", err)
	}
	if exp.ID == 0 {
		adapter.Close()
		return fmt.Errorf("expense id not assigned")
	}

	doc = s.Snapshot()
	if got := store.TotalSpent(doc.Expenses); got != seedTotal+150 {
		adapter.Close()
		return fmt.Errorf("total after add = %v, want %v", got, seedTotal+150)
	}
	if got := store.RemainingBudget(doc.Budget, doc.Expenses); got != doc.Budget.Total-seedTotal-150 {
		adapter.Close()
		return fmt.Errorf("remaining budget = %v", got)
	}
	if err := adapter.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	reopened, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("reopen db: %w", err)
	}
	defer reopened.Close()

	persisted, err := reopened.Load()
	if err != nil {
		return fmt.Errorf("reload document: %w", err)
	}
	if len(persisted.Expenses) != 4 {
		return fmt.Errorf("persisted expenses = %d, want 4", len(persisted.Expenses))
	}
	if got := store.TotalSpent(persisted.Expenses); got != seedTotal+150 {
		return fmt.Errorf("persisted total = %v, want %v", got, seedTotal+150)
	}
	return nil
}
