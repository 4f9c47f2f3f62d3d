package models

import "github.com/shopspring/decimal"

// TransactionType says which side of the ledger a transaction sits on.
type TransactionType string

const (
	TypeDebit   TransactionType = "Debit"
	TypeCredit  TransactionType = "Credit"
	TypeUnknown TransactionType = ""
)

// Transaction is a single entry extracted from a GCash statement.
//
// ReferenceNumber is a 13-16 digit string; shorter digit runs (11-digit
// mobile numbers in the description text) are never promoted to references.
// Date is always YYYY-MM-DD.
type Transaction struct {
	ReferenceNumber string          `json:"referenceNumber"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type,omitempty"`
}
