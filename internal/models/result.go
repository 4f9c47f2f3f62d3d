package models

import "strings"

// Verification statuses. A result may carry a compound status such as
// "Duplicate, Amount Mismatch"; consumers should test with strings.Contains
// rather than equality.
const (
	StatusVerified       = "Verified"
	StatusNotFound       = "Not Found"
	StatusAmountMismatch = "Amount Mismatch"
	StatusDateMismatch   = "Date Mismatch"
	StatusDuplicate      = "Duplicate"
	StatusError          = "Error"
)

// VerificationResult is the outcome for one receipt row. It is created once
// per reconciliation pass and never mutated afterward.
type VerificationResult struct {
	Row ReceiptRow `json:"row"`

	// Date, ReferenceNumber and Amount are the receipt's own values after
	// normalization, for display and export.
	Date            string `json:"date"`
	ReferenceNumber string `json:"referenceNumber"`
	Amount          string `json:"amount"`

	Status string `json:"status"`
	Notes  string `json:"notes"`

	// MatchedReference is set only when the receipt verified against a
	// ledger transaction.
	MatchedReference string `json:"matchedReference,omitempty"`
}

// Summary tallies results by status. A compound status counts once under
// every status phrase it contains.
type Summary struct {
	Total          int `json:"total"`
	Verified       int `json:"verified"`
	NotFound       int `json:"notFound"`
	AmountMismatch int `json:"amountMismatch"`
	DateMismatch   int `json:"dateMismatch"`
	Duplicate      int `json:"duplicate"`
	Errors         int `json:"errors"`
}

// Add counts one result status into the summary.
func (s *Summary) Add(status string) {
	s.Total++
	if strings.Contains(status, StatusVerified) {
		s.Verified++
	}
	if strings.Contains(status, StatusNotFound) {
		s.NotFound++
	}
	if strings.Contains(status, StatusAmountMismatch) {
		s.AmountMismatch++
	}
	if strings.Contains(status, StatusDateMismatch) {
		s.DateMismatch++
	}
	if strings.Contains(status, StatusDuplicate) {
		s.Duplicate++
	}
	if strings.Contains(status, StatusError) {
		s.Errors++
	}
}
