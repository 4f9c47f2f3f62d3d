// Package sheet reads receipt spreadsheets into rows the verification
// engine can consume.
package sheet

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

var ErrEmptySheet = errors.New("sheet: no header row")

// ReadCSV parses a receipt spreadsheet. The first record is the header row;
// every following record becomes one ReceiptRow keyed by those headers.
// Row indexes are 1-based sheet positions, so the first data row is 2.
func ReadCSV(r io.Reader) ([]models.ReceiptRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySheet
	}
	if err != nil {
		return nil, err
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows []models.ReceiptRow
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := models.ReceiptRow{
			Index:   i + 2,
			Columns: columns,
			Fields:  make(map[string]string, len(columns)),
		}
		for j, col := range columns {
			if j < len(record) {
				row.Fields[col] = strings.TrimSpace(record[j])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
