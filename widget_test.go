package main

import (
	"strings"
	"testing"
)

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight should not shorten, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("expense history", 7); got != "expens…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate should leave short strings alone, got %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate at width 0 = %q, want empty", got)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{2500, "₹2500.00"},
		{0, "₹0.00"},
		{-320.5, "-₹320.50"},
	}
	for _, tt := range tests {
		if got := money("₹", tt.amount); got != tt.want {
			t.Fatalf("money(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestProgressBarCapsAtFullWidth(t *testing.T) {
	bar := progressBar(10, 150, colorError)
	if n := strings.Count(bar, "█"); n != 10 {
		t.Fatalf("filled cells = %d, want 10 (overshoot must cap)", n)
	}
	if strings.Contains(bar, "░") {
		t.Fatalf("full bar should have no empty cells: %q", bar)
	}
}

func TestProgressBarPartialFill(t *testing.T) {
	bar := progressBar(10, 50, colorSuccess)
	if n := strings.Count(bar, "█"); n != 5 {
		t.Fatalf("filled cells = %d, want 5", n)
	}
	if n := strings.Count(bar, "░"); n != 5 {
		t.Fatalf("empty cells = %d, want 5", n)
	}
}

func TestBudgetGaugeColor(t *testing.T) {
	if got := budgetGaugeColor(50); got != colorSuccess {
		t.Fatalf("50%% = %v, want success", got)
	}
	if got := budgetGaugeColor(75); got != colorWarning {
		t.Fatalf("75%% = %v, want warning", got)
	}
	if got := budgetGaugeColor(95); got != colorError {
		t.Fatalf("95%% = %v, want error", got)
	}
	if got := budgetGaugeColor(120); got != colorError {
		t.Fatalf("over budget = %v, want error", got)
	}
}
