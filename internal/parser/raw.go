package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/normalize"
)

// RawTableStrategy scans the statement table directly: it anchors on the
// header row, then treats every following line that carries both a calendar
// date and a reference number as a transaction. This is the most reliable
// strategy for well-formed exports and runs first.
type RawTableStrategy struct{}

func (s *RawTableStrategy) Name() string {
	return "raw-table"
}

func isRawHeader(line string) bool {
	return strings.Contains(line, "Date") &&
		strings.Contains(line, "Reference No.") &&
		(strings.Contains(line, "Debit") || strings.Contains(line, "Credit"))
}

func (s *RawTableStrategy) Extract(lines []string) []models.Transaction {
	headerIdx := -1
	for i, line := range lines {
		if isRawHeader(strings.TrimSpace(line)) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var txns []models.Transaction
	for _, line := range lines[headerIdx+1:] {
		line = strings.TrimSpace(line)
		if line == "" || isBalanceOrTotalLine(line) {
			continue
		}

		date := isoDatePattern.FindString(line)
		ref := referencePattern.FindString(line)
		if date == "" || ref == "" {
			continue
		}

		amounts := amountStrings(line, ref)
		if len(amounts) == 0 {
			continue
		}

		amount, txType := pickRawAmount(line, amounts)
		if !amount.IsPositive() {
			continue
		}

		txns = append(txns, models.Transaction{
			ReferenceNumber: ref,
			Date:            normalize.Date(date),
			Amount:          amount,
			Type:            txType,
		})
	}
	return txns
}

// pickRawAmount disambiguates debit vs. credit when multiple amounts share a
// line: column labels on the line win, then the first-amount-is-debit
// convention with the "transfer to" description cue.
func pickRawAmount(line string, amounts []string) (decimal.Decimal, models.TransactionType) {
	if len(amounts) >= 2 {
		first := parseAmount(amounts[0])
		second := parseAmount(amounts[1])
		switch {
		case first.IsPositive() && strings.Contains(line, "Debit"):
			return first, models.TypeDebit
		case second.IsPositive() && strings.Contains(line, "Credit"):
			return second, models.TypeCredit
		default:
			amt := first
			if !amt.IsPositive() {
				amt = second
			}
			if isDebitDescription(line) {
				return amt, models.TypeDebit
			}
			return amt, models.TypeCredit
		}
	}

	amt := parseAmount(amounts[0])
	if isDebitDescription(line) {
		return amt, models.TypeDebit
	}
	return amt, models.TypeCredit
}
