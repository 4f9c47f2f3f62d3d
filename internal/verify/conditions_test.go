package verify

import "testing"

func TestConditionsRender(t *testing.T) {
	tests := []struct {
		name     string
		cond     conditions
		expected string
	}{
		{"clean", conditions{}, "Verified"},
		{"not found", conditions{notFound: true}, "Not Found"},
		{"amount mismatch", conditions{amountMismatch: true}, "Amount Mismatch"},
		{"date mismatch", conditions{dateMismatch: true}, "Date Mismatch"},
		{"error", conditions{errored: true}, "Error"},
		{"duplicate alone", conditions{duplicate: true}, "Duplicate"},
		{"duplicate amount mismatch", conditions{duplicate: true, amountMismatch: true}, "Duplicate, Amount Mismatch"},
		{"duplicate date mismatch", conditions{duplicate: true, dateMismatch: true}, "Duplicate, Date Mismatch"},
		{"duplicate error", conditions{duplicate: true, errored: true}, "Duplicate, Error"},
		{"duplicate never combines with not found", conditions{duplicate: true, notFound: true}, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.render(); got != tt.expected {
				t.Errorf("render(): got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConditionsFailed(t *testing.T) {
	if (conditions{}).failed() {
		t.Error("clean row should not be failed")
	}
	if (conditions{duplicate: true}).failed() {
		t.Error("duplicate alone is not a failure finding")
	}
	if !(conditions{amountMismatch: true}).failed() {
		t.Error("amount mismatch should be failed")
	}
}
