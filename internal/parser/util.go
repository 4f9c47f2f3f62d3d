package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Patterns shared by the extraction strategies.
var (
	// YYYY-MM-DD, the format GCash statements print transaction timestamps in.
	isoDatePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	// M/D/YYYY or M/D/YY.
	slashDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	// GCash reference numbers are 13-16 digits. Mobile numbers in the
	// description text are 11 digits (09XXXXXXXXX) and must not match.
	referencePattern = regexp.MustCompile(`\b(\d{13,16})\b`)
	// Any long digit run, used only by the generic fallback scan.
	longNumberPattern = regexp.MustCompile(`\b\d{10,}\b`)
	// Grouped-thousands amounts with two decimal places, e.g. 1,234.56.
	amountPattern = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*\.\d{2}\b`)
	// Descriptions like "Transfer to 09..." or "Transfer from A to B" mean
	// money left the account.
	debitCuePattern = regexp.MustCompile(`(?i)\btransfer(?: from \S+)? to\b`)
)

// Rows that belong to the statement table but are not transactions.
var skipMarkers = []string{
	"STARTING BALANCE",
	"ENDING BALANCE",
	"Total Debit",
	"Total Credit",
}

func isBalanceOrTotalLine(line string) bool {
	for _, marker := range skipMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// parseAmount converts a string like "1,234.56" to a decimal.
// Unparseable input yields zero, which callers reject anyway.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// amountStrings returns every amount-shaped token on the line that is not
// the given reference number.
func amountStrings(line, reference string) []string {
	var amounts []string
	for _, m := range amountPattern.FindAllString(line, -1) {
		if m != reference {
			amounts = append(amounts, m)
		}
	}
	return amounts
}

func isDebitDescription(line string) bool {
	return debitCuePattern.MatchString(line)
}

// findDate returns the first ISO or slash date on the line.
func findDate(line string) string {
	if m := isoDatePattern.FindString(line); m != "" {
		return m
	}
	return slashDatePattern.FindString(line)
}
