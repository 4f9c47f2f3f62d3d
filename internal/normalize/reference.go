// Package normalize canonicalizes reference numbers and dates so that
// receipt values and ledger values compare exactly, whatever formatting the
// submitter or the export applied.
package normalize

import (
	"regexp"
	"strings"
)

var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// Reference canonicalizes a reference number: trim whitespace, then strip
// every non-digit character. Applied identically to receipt and ledger
// values before any comparison; matching is always exact string equality on
// the result, never partial or fuzzy.
func Reference(v string) string {
	return nonDigitPattern.ReplaceAllString(strings.TrimSpace(v), "")
}
