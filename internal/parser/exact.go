package parser

import (
	"strings"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/normalize"
)

// ExactFormatStrategy handles the canonical GCash export layout, where every
// transaction line ends in [debit, credit, balance] amount columns:
//
//	2025-06-23 11:57 AM  Transfer from 099... to 092...  1029953804654  700.00  1510.71
//
// It shares the header anchoring of the raw scan but applies stricter
// amount-count rules, so it catches lines the positional heuristics of the
// raw scan misreads.
type ExactFormatStrategy struct{}

func (s *ExactFormatStrategy) Name() string {
	return "exact-format"
}

func isExactHeader(line string) bool {
	return strings.Contains(line, "Date") &&
		strings.Contains(line, "Reference") &&
		(strings.Contains(line, "Debit") || strings.Contains(line, "Credit"))
}

func (s *ExactFormatStrategy) Extract(lines []string) []models.Transaction {
	headerIdx := -1
	for i, line := range lines {
		if isExactHeader(strings.TrimSpace(line)) {
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
		if date == "" {
			continue
		}
		ref := referencePattern.FindString(line)
		if ref == "" {
			continue
		}
		amounts := amountStrings(line, ref)
		if len(amounts) == 0 {
			continue
		}

		var amount = parseAmount(amounts[0])
		txType := models.TypeCredit

		switch {
		case len(amounts) >= 3:
			// [debit, credit, balance]: whichever of the first two is
			// non-zero is the transaction amount.
			debit := parseAmount(amounts[0])
			credit := parseAmount(amounts[1])
			if debit.IsPositive() {
				amount, txType = debit, models.TypeDebit
			} else {
				amount, txType = credit, models.TypeCredit
			}
		case len(amounts) == 2:
			// [amount, balance]: the description decides the direction.
			if isDebitDescription(line) {
				txType = models.TypeDebit
			}
		}

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
