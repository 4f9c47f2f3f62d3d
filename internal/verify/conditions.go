package verify

import "github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"

// conditions is the set of independent findings for one receipt row. The
// checks set flags; only render turns them into the display status, so the
// composition rules live in exactly one place.
type conditions struct {
	errored        bool
	notFound       bool
	amountMismatch bool
	dateMismatch   bool
	duplicate      bool
}

func (c conditions) failed() bool {
	return c.errored || c.notFound || c.amountMismatch || c.dateMismatch
}

// render produces the display status. A clean row is Verified. Duplicate
// replaces Verified outright, and prefixes any mismatch or error. Not Found
// is never combined with Duplicate: without a ledger match there is nothing
// for a second submission to double-claim.
func (c conditions) render() string {
	base := ""
	switch {
	case c.errored:
		base = models.StatusError
	case c.notFound:
		return models.StatusNotFound
	case c.amountMismatch:
		base = models.StatusAmountMismatch
	case c.dateMismatch:
		base = models.StatusDateMismatch
	}

	if !c.duplicate {
		if base == "" {
			return models.StatusVerified
		}
		return base
	}
	if base == "" {
		return models.StatusDuplicate
	}
	return models.StatusDuplicate + ", " + base
}
