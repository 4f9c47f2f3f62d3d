package models

// ReceiptRow is one submitted receipt as it came out of the sheet: a mapping
// from column label to cell value, plus the label order for faithful output.
// There is no fixed schema; the verifier discovers the columns it needs.
type ReceiptRow struct {
	// Index is the 1-based sheet row the receipt came from (row 1 is the
	// header, so data rows start at 2).
	Index   int               `json:"row"`
	Columns []string          `json:"-"`
	Fields  map[string]string `json:"fields"`
}
