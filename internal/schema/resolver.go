// Package schema infers which receipt-sheet columns hold the reference
// number, amount and transaction date. Receipt sheets come from forms with
// free-text column headers, so the columns are discovered, never assumed.
package schema

import (
	"fmt"
	"strings"
)

// Known header wordings per logical field, in priority order.
var (
	referenceAliases = []string{
		"Reference Number", "Ref Number", "Ref No", "Reference",
		"RefNumber", "Transaction Reference Number",
	}
	amountAliases = []string{
		"Amount", "Total", "Value", "Payment", "Transaction Amount",
	}
	dateAliases = []string{
		"Date", "Transaction Date", "Payment Date", "Timestamp",
	}
)

// transactionDateLabel wins over every date alias when present: sheets often
// carry both a submission timestamp and the transaction date, and the
// transaction date is the one that must be verified.
const transactionDateLabel = "Date of Transaction"

// Mapping names the receipt columns holding each logical field.
type Mapping struct {
	Reference string
	Amount    string
	Date      string
}

// Resolve inspects the column labels and returns the mapping for the three
// required fields. If any field cannot be located, the row is unresolvable
// and the error names every missing field.
func Resolve(columns []string) (Mapping, error) {
	m := Mapping{
		Reference: findColumn(columns, referenceAliases),
		Amount:    findColumn(columns, amountAliases),
		Date:      resolveDate(columns),
	}

	var missing []string
	if m.Reference == "" {
		missing = append(missing, "reference number")
	}
	if m.Amount == "" {
		missing = append(missing, "amount")
	}
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return Mapping{}, fmt.Errorf("no column found for %s", strings.Join(missing, ", "))
	}
	return m, nil
}

// ReferenceColumn locates the reference-number column alone. Duplicate
// detection needs the reference even for rows whose full schema cannot be
// resolved.
func ReferenceColumn(columns []string) string {
	return findColumn(columns, referenceAliases)
}

func resolveDate(columns []string) string {
	for _, col := range columns {
		if strings.EqualFold(col, transactionDateLabel) {
			return col
		}
	}
	return findColumn(columns, dateAliases)
}

// findColumn returns the first column whose lowercased label contains any
// alias as a substring.
func findColumn(columns []string, aliases []string) string {
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, alias := range aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return col
			}
		}
	}
	return ""
}
