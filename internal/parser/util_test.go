package parser

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"25.99", "25.99"},
		{"1,234.56", "1234.56"},
		{" 700.00 ", "700"},
		{"0.00", "0"},
		{"not-a-number", "0"},
		{"", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseAmount(tt.input)
			if got.String() != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestReferencePattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"13 digits", "ref 1029953804654 ok", "1029953804654"},
		{"16 digits", "ref 1029953804654321 ok", "1029953804654321"},
		{"mobile number ignored", "Transfer to 09974808864", ""},
		{"17 digits too long", "12345678901234567", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := referencePattern.FindString(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsDebitDescription(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Transfer to 09171234567", true},
		{"Transfer from 09974808864 to 09217323157", true},
		{"transfer to GCash user", true},
		{"Payment received", false},
		{"Transfer from bank", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := isDebitDescription(tt.input)
			if got != tt.expected {
				t.Errorf("isDebitDescription(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2025-06-23 11:57 AM Transfer", "2025-06-23"},
		{"paid on 6/23/2025 in full", "6/23/2025"},
		{"iso wins: 2025-06-23 vs 6/23/2025", "2025-06-23"},
		{"no date here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := findDate(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAmountStrings(t *testing.T) {
	line := "2025-06-23 11:57 AM  Transfer to 09171234567  1029953804654  700.00  1,510.71"
	amounts := amountStrings(line, "1029953804654")
	if len(amounts) != 2 {
		t.Fatalf("expected 2 amounts, got %d: %v", len(amounts), amounts)
	}
	if amounts[0] != "700.00" || amounts[1] != "1,510.71" {
		t.Errorf("got %v, want [700.00 1,510.71]", amounts)
	}
}

func TestIsBalanceOrTotalLine(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"STARTING BALANCE  810.71", true},
		{"ENDING BALANCE  1,510.71", true},
		{"Total Debit  700.00", true},
		{"2025-06-23 Transfer 1029953804654 700.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isBalanceOrTotalLine(tt.input); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
