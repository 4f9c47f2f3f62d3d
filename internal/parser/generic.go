package parser

import (
	"strings"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/normalize"
)

// GenericStrategy is the loosest scan, used when no statement markers are
// present: any line that carries a long digit run, a date and a money-shaped
// token is treated as a transaction. The long-number threshold drops to 10
// digits here since unrecognized exports may use shorter references.
type GenericStrategy struct{}

func (s *GenericStrategy) Name() string {
	return "generic"
}

func (s *GenericStrategy) Extract(lines []string) []models.Transaction {
	var txns []models.Transaction
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		ref := longNumberPattern.FindString(line)
		date := findDate(line)
		if ref == "" || date == "" {
			continue
		}

		// The amount is the last money-shaped token that is not the
		// reference itself.
		matches := amountPattern.FindAllString(line, -1)
		amountStr := ""
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i] != ref {
				amountStr = matches[i]
				break
			}
		}
		if amountStr == "" {
			continue
		}

		amount := parseAmount(amountStr)
		if !amount.IsPositive() {
			continue
		}

		txns = append(txns, models.Transaction{
			ReferenceNumber: ref,
			Date:            normalize.Date(date),
			Amount:          amount,
			Type:            models.TypeUnknown,
		})
	}
	return txns
}
