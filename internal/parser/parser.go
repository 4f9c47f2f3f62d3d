// Package parser turns reconstructed statement lines into transactions.
//
// GCash statement exports vary subtly between sources: column separators,
// header wording and amount layout all drift. No single pattern is reliable,
// so extraction runs as an ordered cascade of strategies, strictest first,
// and the first strategy to yield at least one transaction wins.
package parser

import (
	"errors"
	"strings"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

// Strategy is one self-contained algorithm for turning statement lines into
// transactions. Strategies are pure: they inspect the lines and return what
// they found, nothing else.
type Strategy interface {
	// Name returns a short identifier for diagnostics.
	Name() string
	// Extract returns the transactions the strategy recognized, or nil.
	Extract(lines []string) []models.Transaction
}

// ErrNoTransactions is returned when every strategy in the cascade came up
// empty. Verification cannot proceed without a transaction set, so this is
// terminal for the whole ledger.
var ErrNoTransactions = errors.New("no transactions found in statement text")

// statementMarkers identify a GCash transaction-history export.
var statementMarkers = []string{
	"GCash Transaction History",
	"Date and Time",
	"Reference No.",
	"STARTING BALANCE",
}

// IsStatementFormat reports whether the text as a whole looks like a GCash
// statement export.
func IsStatementFormat(lines []string) bool {
	combined := strings.Join(lines, "\n")
	for _, marker := range statementMarkers {
		if strings.Contains(combined, marker) {
			return true
		}
	}
	return false
}

// Extract runs the strategy cascade over the reconstructed lines and returns
// the transactions of the first strategy that produced any, together with
// that strategy's name. Recognized statement formats get the table-aware
// strategies in order of strictness; anything else falls back to a generic
// line scan.
func Extract(lines []string) ([]models.Transaction, string, error) {
	var cascade []Strategy
	if IsStatementFormat(lines) {
		cascade = []Strategy{
			&RawTableStrategy{},
			&ExactFormatStrategy{},
			&ColumnStrategy{},
		}
	} else {
		cascade = []Strategy{&GenericStrategy{}}
	}

	for _, s := range cascade {
		if txns := s.Extract(lines); len(txns) > 0 {
			return txns, s.Name(), nil
		}
	}
	return nil, "", ErrNoTransactions
}
