package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/verify"
)

// CSVWriter writes a verification report to CSV format.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the report to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, report *verify.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, report)
}

// Write writes the report in CSV format to the given writer. With
// IncludeSummary set, a count block precedes the result rows.
func (w *CSVWriter) Write(out io.Writer, report *verify.Report) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeSummary {
		s := report.Summary
		rows := [][]string{
			{"Summary", ""},
			{"Total", strconv.Itoa(s.Total)},
			{"Verified", strconv.Itoa(s.Verified)},
			{"Not Found", strconv.Itoa(s.NotFound)},
			{"Amount Mismatch", strconv.Itoa(s.AmountMismatch)},
			{"Date Mismatch", strconv.Itoa(s.DateMismatch)},
			{"Duplicates", strconv.Itoa(s.Duplicate)},
			{""},
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write summary row: %w", err)
			}
		}
	}

	header := []string{"Date", "Reference Number", "Amount", "Status", "Notes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, res := range report.Results {
		row := []string{
			res.Date,
			res.ReferenceNumber,
			res.Amount,
			res.Status,
			res.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
