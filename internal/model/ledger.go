package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PeriodType distinguishes current- and prior-period trial balance rows.
type PeriodType string

const (
	PeriodCurrent  PeriodType = "current"
	PeriodPrevious PeriodType = "previous"
)

// Section is the H1 level of the classification hierarchy: which statement a
// ledger row belongs to.
type Section string

const (
	SectionBalanceSheet  Section = "Balance Sheet"
	SectionProfitAndLoss Section = "Profit and Loss"
)

// h1NeedsInput marks rows the classifier could not place.
const h1NeedsInput = "Needs User Input"

// LedgerRow is one ledger account's classified balance for one reporting
// period. H1..H5 is the five-level classification hierarchy: H1 selects the
// statement, H2 the statutory line grouping, H3-H5 refine further (sub-ledger
// nature, MSME flag, etc.).
type LedgerRow struct {
	Name           string
	GroupName      string
	PrimaryGroup   string
	Period         PeriodType
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
}

// Classified reports whether the row carries enough classification to
// participate in statement assembly. Rows failing this test are excluded from
// totals and surfaced as a diagnostic, never silently dropped.
func (r LedgerRow) Classified() bool {
	return r.H1 != "" && r.H1 != h1NeedsInput
}

// InSection reports whether the row belongs to the given statement. Source
// feeds tag revenue rows with either "Profit and Loss" or the older
// "P&L Account", so both H1 spellings are accepted.
func (r LedgerRow) InSection(s Section) bool {
	if r.H1 == string(s) {
		return true
	}
	return s == SectionProfitAndLoss && r.H1 == "P&L Account"
}

// ClosingMagnitude returns the absolute closing balance. Statutory
// presentation always shows magnitudes; the statement section carries the
// debit/credit nature.
func (r LedgerRow) ClosingMagnitude() decimal.Decimal {
	return r.ClosingBalance.Abs()
}

// ClassificationPath renders the H2..H4 tags as a display path like
// "Trade payables > Current > MSME".
func (r LedgerRow) ClassificationPath() string {
	parts := make([]string, 0, 3)
	for _, tag := range []string{r.H2, r.H3, r.H4} {
		if tag != "" {
			parts = append(parts, tag)
		}
	}
	return strings.Join(parts, " > ")
}
