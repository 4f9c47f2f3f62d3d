package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/normalize"
)

// ColumnStrategy parses the header row into column labels and then reads
// each data line by column index. Exports that keep their column runs intact
// parse precisely this way; lines that lose a column (an empty debit cell
// collapses the whitespace run around it) fall back to a whole-line scan.
type ColumnStrategy struct{}

func (s *ColumnStrategy) Name() string {
	return "column-position"
}

// Columns are separated by runs of two or more spaces, or tabs.
var columnSplitPattern = regexp.MustCompile(`\s{2,}|\t`)

func splitColumns(line string) []string {
	var parts []string
	for _, p := range columnSplitPattern.Split(line, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

type columnIndexes struct {
	date      int
	reference int
	debit     int
	credit    int
	count     int
}

func isColumnHeader(line string) bool {
	return strings.Contains(line, "Date and Time") &&
		strings.Contains(line, "Reference No.") &&
		(strings.Contains(line, "Debit") || strings.Contains(line, "Credit"))
}

func parseColumnHeader(line string) columnIndexes {
	cols := columnIndexes{date: -1, reference: -1, debit: -1, credit: -1}
	parts := splitColumns(line)
	cols.count = len(parts)
	for i, part := range parts {
		switch lower := strings.ToLower(part); {
		case strings.Contains(lower, "date"):
			cols.date = i
		case strings.Contains(lower, "reference"):
			cols.reference = i
		case strings.Contains(lower, "debit"):
			cols.debit = i
		case strings.Contains(lower, "credit"):
			cols.credit = i
		}
	}
	return cols
}

func (s *ColumnStrategy) Extract(lines []string) []models.Transaction {
	headerIdx := -1
	var cols columnIndexes
	for i, line := range lines {
		if isColumnHeader(strings.TrimSpace(line)) {
			headerIdx = i
			cols = parseColumnHeader(strings.TrimSpace(line))
			break
		}
	}
	if headerIdx < 0 || cols.reference < 0 {
		return nil
	}

	var txns []models.Transaction
	for _, line := range lines[headerIdx+1:] {
		line = strings.TrimSpace(line)
		if line == "" || isBalanceOrTotalLine(line) {
			continue
		}

		var txn models.Transaction
		var ok bool
		parts := splitColumns(line)
		if len(parts) == cols.count {
			txn, ok = readByIndex(parts, cols)
		} else {
			txn, ok = scanWholeLine(line)
		}
		if ok {
			txns = append(txns, txn)
		}
	}
	return txns
}

func readByIndex(parts []string, cols columnIndexes) (models.Transaction, bool) {
	ref := referencePattern.FindString(parts[cols.reference])
	if ref == "" {
		return models.Transaction{}, false
	}

	date := ""
	if cols.date >= 0 && cols.date < len(parts) {
		date = findDate(parts[cols.date])
	}
	if date == "" {
		return models.Transaction{}, false
	}

	amount := decimal.Zero
	txType := models.TypeUnknown
	if cols.debit >= 0 && cols.debit < len(parts) {
		if m := amountPattern.FindString(parts[cols.debit]); m != "" {
			amount, txType = parseAmount(m), models.TypeDebit
		}
	}
	if !amount.IsPositive() && cols.credit >= 0 && cols.credit < len(parts) {
		if m := amountPattern.FindString(parts[cols.credit]); m != "" {
			amount, txType = parseAmount(m), models.TypeCredit
		}
	}
	if !amount.IsPositive() {
		return models.Transaction{}, false
	}

	return models.Transaction{
		ReferenceNumber: ref,
		Date:            normalize.Date(date),
		Amount:          amount,
		Type:            txType,
	}, true
}

// scanWholeLine recovers a transaction from a line whose column runs
// collapsed, using the same shape rules as the table scans.
func scanWholeLine(line string) (models.Transaction, bool) {
	date := findDate(line)
	if date == "" {
		return models.Transaction{}, false
	}
	ref := referencePattern.FindString(line)
	if ref == "" {
		return models.Transaction{}, false
	}
	amounts := amountStrings(line, ref)
	if len(amounts) == 0 {
		return models.Transaction{}, false
	}

	amount := parseAmount(amounts[0])
	if !amount.IsPositive() {
		return models.Transaction{}, false
	}
	txType := models.TypeCredit
	if isDebitDescription(line) {
		txType = models.TypeDebit
	}

	return models.Transaction{
		ReferenceNumber: ref,
		Date:            normalize.Date(date),
		Amount:          amount,
		Type:            txType,
	}, true
}
