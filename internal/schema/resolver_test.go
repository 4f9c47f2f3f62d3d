package schema

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Mapping
	}{
		{
			"canonical headers",
			[]string{"Name", "Reference Number", "Amount", "Date"},
			Mapping{Reference: "Reference Number", Amount: "Amount", Date: "Date"},
		},
		{
			"alias headers",
			[]string{"Ref No", "Total", "Payment Date"},
			Mapping{Reference: "Ref No", Amount: "Total", Date: "Payment Date"},
		},
		{
			"case insensitive",
			[]string{"REFERENCE NUMBER", "AMOUNT", "TIMESTAMP"},
			Mapping{Reference: "REFERENCE NUMBER", Amount: "AMOUNT", Date: "TIMESTAMP"},
		},
		{
			"substring match",
			[]string{"GCash Reference Number", "Amount Paid", "Date Submitted"},
			Mapping{Reference: "GCash Reference Number", Amount: "Amount Paid", Date: "Date Submitted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.columns)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_TransactionDatePriority(t *testing.T) {
	// The form timestamp comes first in the sheet, but the transaction
	// date is the one verification needs.
	columns := []string{"Timestamp", "Reference Number", "Amount", "Date of Transaction"}

	got, err := Resolve(columns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "Date of Transaction" {
		t.Errorf("date column: got %q, want %q", got.Date, "Date of Transaction")
	}
}

func TestResolve_MissingFields(t *testing.T) {
	_, err := Resolve([]string{"Name", "Email"})
	if err == nil {
		t.Fatal("expected error for unresolvable columns")
	}
	for _, field := range []string{"reference number", "amount", "date"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not name missing field %q", err, field)
		}
	}
}

func TestReferenceColumn(t *testing.T) {
	if got := ReferenceColumn([]string{"Name", "Ref Number"}); got != "Ref Number" {
		t.Errorf("got %q, want %q", got, "Ref Number")
	}
	if got := ReferenceColumn([]string{"Name", "Email"}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
