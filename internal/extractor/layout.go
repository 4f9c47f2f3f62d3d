package extractor

import (
	"math"
	"sort"
	"strings"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
)

const (
	// lineTolerance is the vertical distance, in page units, within which
	// tokens are considered part of the same text line.
	lineTolerance = 3.0
	// columnGap is the horizontal gap, in page units, beyond which
	// consecutive tokens are treated as separate table columns. One run of
	// spaces is emitted per columnGap of gap, so wider gaps render wider.
	columnGap = 10.0
)

// ReconstructLines groups positioned tokens into ordered text lines,
// approximating the original tabular layout of the statement. Lines appear
// top-to-bottom within each page, pages in document order. A page with no
// tokens contributes no lines.
func ReconstructLines(pages [][]models.TextToken) []string {
	var lines []string
	for _, tokens := range pages {
		lines = append(lines, reconstructPage(tokens)...)
	}
	return lines
}

func reconstructPage(tokens []models.TextToken) []string {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]models.TextToken, len(tokens))
	copy(sorted, tokens)
	// Top of the page first; PDF y grows upward.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []string
	var current []models.TextToken
	anchorY := sorted[0].Y

	for _, tok := range sorted {
		if math.Abs(tok.Y-anchorY) > lineTolerance {
			lines = append(lines, renderLine(current))
			current = nil
			anchorY = tok.Y
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		lines = append(lines, renderLine(current))
	}

	return lines
}

// renderLine concatenates a line's tokens left to right, inserting a
// proportional run of spaces wherever the horizontal gap between consecutive
// tokens crosses the column threshold.
func renderLine(tokens []models.TextToken) string {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].X < tokens[j].X
	})

	var b strings.Builder
	lastEnd := 0.0
	for i, tok := range tokens {
		if i > 0 {
			if gap := tok.X - lastEnd; gap > columnGap {
				b.WriteString(strings.Repeat(" ", int(gap/columnGap)))
			}
		}
		b.WriteString(tok.Text)
		lastEnd = tok.X + tok.Width
	}
	return b.String()
}
