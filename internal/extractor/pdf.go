package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

// ExtractTokens reads a statement PDF and returns the positioned text tokens
// of each page, in document order. Whitespace-only fragments are dropped.
func ExtractTokens(filePath string) (pages [][]models.TextToken, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", openErr)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		var tokens []models.TextToken
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			tokens = append(tokens, models.TextToken{
				Text:  t.S,
				X:     t.X,
				Y:     t.Y,
				Width: t.W,
			})
		}
		pages = append(pages, tokens)
	}

	return pages, nil
}

// ExtractLines reads a statement PDF and reconstructs its text lines.
// The reconstructed text must look like readable statement text; PDFs with
// custom font encodings can decode into garbage, and garbage must never
// reach the transaction parser.
func ExtractLines(filePath string) ([]string, error) {
	pages, err := ExtractTokens(filePath)
	if err != nil {
		return nil, err
	}

	lines := ReconstructLines(pages)
	if !isReadableText(lines) {
		return nil, fmt.Errorf("no readable text could be extracted from PDF; the file may be image-based/scanned or use custom font encodings")
	}
	return lines, nil
}

// textQuality returns the ratio of basic ASCII readable characters to total
// characters. A strict ASCII check is used on purpose: unicode.IsLetter is
// too broad and matches the accented garbage produced by identity-encoded
// fonts.
func textQuality(lines []string) float64 {
	total := 0
	readable := 0
	for _, line := range lines {
		for _, r := range line {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				r == '.' || r == ',' || r == '-' || r == '/' || r == ':' ||
				r == ';' || r == '(' || r == ')' || r == '\'' || r == '"' ||
				r == '₱' || r == '$' || r == '%' || r == '&' ||
				r == '@' || r == '#' || r == '!' || r == '?' || r == '+' ||
				r == '=' || r == '*' || r == '\t' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// commonWords that appear in virtually all transaction statements. If the
// extracted text contains none of these, it is likely garbage.
var commonWords = []string{
	"gcash", "transaction", "reference", "balance", "date",
	"debit", "credit", "total", "transfer", "amount", "payment",
}

func containsCommonWords(lines []string) bool {
	combined := strings.ToLower(strings.Join(lines, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText checks that lines contain enough text, that it's actually
// readable (not binary garbage), and that it contains recognizable words.
func isReadableText(lines []string) bool {
	n := 0
	for _, line := range lines {
		n += len(strings.TrimSpace(line))
	}
	if n <= 50 {
		return false
	}
	if textQuality(lines) <= 0.6 {
		return false
	}
	return containsCommonWords(lines)
}
