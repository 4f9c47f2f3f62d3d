package parser

import (
	"testing"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

func TestRawTableStrategy_Extract(t *testing.T) {
	s := &RawTableStrategy{}

	lines := []string{
		"GCash Transaction History",
		"Date and Time  Description  Reference No.  Debit  Credit  Balance",
		"STARTING BALANCE  810.71",
		"2025-06-23 11:57 AM  Transfer to 09217323157  1029953804654  700.00  1,510.71",
		"2025-06-24 09:12 AM  Payment received  1122334455667  250.00  1,760.71",
		"Total Debit  700.00",
		"Total Credit  250.00",
	}

	txns := s.Extract(lines)
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}

	if txns[0].Type != models.TypeDebit {
		t.Errorf("first type: got %q, want %q", txns[0].Type, models.TypeDebit)
	}
	if txns[0].Amount.String() != "700" {
		t.Errorf("first amount: got %s, want 700", txns[0].Amount)
	}
	if txns[1].Type != models.TypeCredit {
		t.Errorf("second type: got %q, want %q", txns[1].Type, models.TypeCredit)
	}
	if txns[1].ReferenceNumber != "1122334455667" {
		t.Errorf("second reference: got %q", txns[1].ReferenceNumber)
	}
}

func TestRawTableStrategy_NoHeader(t *testing.T) {
	s := &RawTableStrategy{}

	lines := []string{
		"2025-06-23 11:57 AM  Transfer to 09217323157  1029953804654  700.00  1,510.71",
	}

	if txns := s.Extract(lines); txns != nil {
		t.Errorf("expected nil without header row, got %v", txns)
	}
}

func TestRawTableStrategy_SkipsLinesWithoutReference(t *testing.T) {
	s := &RawTableStrategy{}

	lines := []string{
		"Date and Time  Description  Reference No.  Debit  Credit",
		"2025-06-23 11:57 AM  Transfer to 09217323157  700.00  1,510.71",
	}

	if txns := s.Extract(lines); len(txns) != 0 {
		t.Errorf("expected no transactions, got %d", len(txns))
	}
}
