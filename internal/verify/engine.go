// Package verify reconciles submitted receipts against the transaction set
// extracted from a GCash statement, classifying each receipt row.
package verify

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/normalize"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/schema"
)

// amountTolerance absorbs rounding differences between receipt screenshots
// and statement exports. Anything beyond it is a mismatch.
var amountTolerance = decimal.RequireFromString("0.01")

// maxDateDriftDays allows receipts dated one day off the ledger, covering
// timezone and cutoff differences between the app and the export.
const maxDateDriftDays = 1

const duplicateNote = "This reference number appears multiple times in your spreadsheet"

// Report is the outcome of one reconciliation pass. It is assembled once
// and never mutated; a re-run produces a new report.
type Report struct {
	ID           string                      `json:"id"`
	GeneratedAt  time.Time                   `json:"generatedAt"`
	Transactions int                         `json:"transactions"`
	Results      []models.VerificationResult `json:"results"`
	Summary      models.Summary              `json:"summary"`
}

// Run reconciles every receipt row against the transaction set and returns
// one result per row, in input order. Rows whose columns cannot be resolved
// are reported as errors but never abort the pass.
func Run(rows []models.ReceiptRow, transactions []models.Transaction) *Report {
	duplicates := duplicateReferences(rows)

	report := &Report{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Transactions: len(transactions),
		Results:      make([]models.VerificationResult, 0, len(rows)),
	}

	for _, row := range rows {
		res, cond := classifyRow(row, transactions)
		if duplicates[rowReference(row, res)] {
			cond.duplicate = true
			applyDuplicateNotes(&res, cond)
		}
		res.Status = cond.render()
		report.Summary.Add(res.Status)
		report.Results = append(report.Results, res)
	}
	return report
}

// duplicateReferences returns the normalized reference numbers that occur
// more than once across the receipt rows of this pass. Only the reference
// column needs to resolve; rows with an otherwise broken schema still count.
func duplicateReferences(rows []models.ReceiptRow) map[string]bool {
	seen := make(map[string]bool, len(rows))
	duplicates := make(map[string]bool)
	for _, row := range rows {
		ref := referenceOf(row)
		if ref == "" {
			continue
		}
		if seen[ref] {
			duplicates[ref] = true
		}
		seen[ref] = true
	}
	return duplicates
}

// referenceOf extracts a row's normalized reference using the reference
// column alone, ignoring whether the rest of the schema resolves.
func referenceOf(row models.ReceiptRow) string {
	col := schema.ReferenceColumn(row.Columns)
	if col == "" {
		return ""
	}
	return normalize.Reference(row.Fields[col])
}

func rowReference(row models.ReceiptRow, res models.VerificationResult) string {
	if res.ReferenceNumber != "" {
		return res.ReferenceNumber
	}
	return referenceOf(row)
}

// classifyRow runs the per-row checks in order and stops at the first
// applicable finding: schema error, not found, amount mismatch, date
// mismatch. A row with no findings verified.
func classifyRow(row models.ReceiptRow, transactions []models.Transaction) (models.VerificationResult, conditions) {
	res := models.VerificationResult{Row: row}
	var cond conditions

	mapping, err := schema.Resolve(row.Columns)
	if err != nil {
		cond.errored = true
		res.Notes = "Could not identify required fields in spreadsheet: " + err.Error()
		return res, cond
	}

	ref := normalize.Reference(row.Fields[mapping.Reference])
	amount := parseReceiptAmount(row.Fields[mapping.Amount])
	rawDate := row.Fields[mapping.Date]
	date := normalize.Date(rawDate)

	res.ReferenceNumber = ref
	res.Amount = row.Fields[mapping.Amount]
	res.Date = date

	match := findTransaction(transactions, ref)
	if match == nil {
		cond.notFound = true
		res.Notes = "No matching reference number found in GCash records"
		return res, cond
	}

	if amount.Sub(match.Amount).Abs().GreaterThan(amountTolerance) {
		cond.amountMismatch = true
		res.Notes = fmt.Sprintf("Receipt shows %s but transaction record shows %s", amount, match.Amount)
		return res, cond
	}

	if !datesAgree(date, rawDate, match.Date) {
		cond.dateMismatch = true
		res.Notes = fmt.Sprintf("Receipt date (%s) doesn't match transaction date (%s)", date, match.Date)
		return res, cond
	}

	res.Notes = "All details match GCash records"
	res.MatchedReference = match.ReferenceNumber
	return res, cond
}

// applyDuplicateNotes rewrites a duplicate row's notes. A duplicate that
// otherwise verified gives up its match claim entirely; a duplicate that
// also failed keeps the failure detail behind the duplicate explanation.
// Not Found rows keep their own notes untouched.
func applyDuplicateNotes(res *models.VerificationResult, cond conditions) {
	switch {
	case cond.notFound:
	case cond.failed():
		res.Notes = duplicateNote + ". " + res.Notes
	default:
		res.Notes = duplicateNote
		res.MatchedReference = ""
	}
}

// findTransaction returns the first transaction whose normalized reference
// equals ref. Ledger references are expected unique; this is not verified.
func findTransaction(transactions []models.Transaction, ref string) *models.Transaction {
	if ref == "" {
		return nil
	}
	for i := range transactions {
		if normalize.Reference(transactions[i].ReferenceNumber) == ref {
			return &transactions[i]
		}
	}
	return nil
}

var nonAmountPattern = regexp.MustCompile(`[^0-9.-]`)

// parseReceiptAmount strips currency symbols and separators before parsing,
// keeping digits, the decimal point and a leading minus.
func parseReceiptAmount(v string) decimal.Decimal {
	cleaned := nonAmountPattern.ReplaceAllString(strings.TrimSpace(v), "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// datesAgree compares the receipt date against the transaction date,
// tolerating up to maxDateDriftDays of drift on the date-only values. When
// either side does not parse as a calendar date the comparison degrades to
// the literal date portion of each string.
func datesAgree(receiptDate, rawReceiptDate, txDate string) bool {
	rd, rerr := time.Parse("2006-01-02", receiptDate)
	td, terr := time.Parse("2006-01-02", normalize.Date(txDate))
	if rerr != nil || terr != nil {
		return firstField(rawReceiptDate) == firstField(txDate)
	}

	drift := rd.Sub(td)
	if drift < 0 {
		drift = -drift
	}
	return drift <= maxDateDriftDays*24*time.Hour
}

func firstField(v string) string {
	if i := strings.IndexByte(v, ' '); i >= 0 {
		return v[:i]
	}
	return v
}
