package extractor

import (
	"strings"
	"testing"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

func TestReconstructLines_OrdersByPosition(t *testing.T) {
	// Tokens arrive out of reading order; "a" sits left of "b" on the
	// same visual line despite a slightly higher Y.
	page := []models.TextToken{
		{Text: "b", X: 100, Y: 700, Width: 10},
		{Text: "a", X: 20, Y: 702, Width: 10},
	}

	lines := ReconstructLines([][]models.TextToken{page})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}

	// Gap from end of "a" (x=30) to start of "b" (x=100) is 70pt,
	// which renders as 7 column spaces.
	want := "a" + strings.Repeat(" ", 7) + "b"
	if lines[0] != want {
		t.Errorf("got %q, want %q", lines[0], want)
	}
}

func TestReconstructLines_SmallGapNoSpacing(t *testing.T) {
	page := []models.TextToken{
		{Text: "Total", X: 20, Y: 700, Width: 25},
		{Text: "Debit", X: 48, Y: 700, Width: 25},
	}

	lines := ReconstructLines([][]models.TextToken{page})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0] != "TotalDebit" {
		t.Errorf("got %q, want %q", lines[0], "TotalDebit")
	}
}

func TestReconstructLines_SplitsBeyondTolerance(t *testing.T) {
	page := []models.TextToken{
		{Text: "first", X: 20, Y: 700, Width: 30},
		{Text: "second", X: 20, Y: 690, Width: 30},
	}

	lines := ReconstructLines([][]models.TextToken{page})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "first" || lines[1] != "second" {
		t.Errorf("got %v, want [first second]", lines)
	}
}

func TestReconstructLines_EmptyPage(t *testing.T) {
	pages := [][]models.TextToken{
		{{Text: "only", X: 20, Y: 700, Width: 25}},
		{},
	}

	lines := ReconstructLines(pages)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}

func TestReconstructLines_PageOrderPreserved(t *testing.T) {
	pages := [][]models.TextToken{
		{{Text: "page-one", X: 20, Y: 100, Width: 40}},
		{{Text: "page-two", X: 20, Y: 700, Width: 40}},
	}

	lines := ReconstructLines(pages)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "page-one" || lines[1] != "page-two" {
		t.Errorf("pages out of order: %v", lines)
	}
}

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected bool
	}{
		{
			"statement text",
			[]string{
				"GCash Transaction History",
				"covering reference numbers and balance totals for the period",
			},
			true,
		},
		{
			"too short",
			[]string{"GCash"},
			false,
		},
		{
			"garbled encoding",
			[]string{
				"éééééééééééééééééééééé",
				"éééééééééééééééééééééé",
				"éééééééééééééééééééééé",
			},
			false,
		},
		{
			"long but no domain words",
			[]string{"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isReadableText(tt.input)
			if got != tt.expected {
				t.Errorf("isReadableText: got %v, want %v", got, tt.expected)
			}
		})
	}
}
