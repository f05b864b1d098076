// Package aggregate reduces classified ledger rows into per-area totals.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// Sum filters rows matching the statement section and H2 grouping (and H3
// when non-empty) and returns the sum of absolute closing balances. An empty
// or nil row slice sums to zero.
func Sum(rows []model.LedgerRow, section model.Section, h2, h3 string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if !r.InSection(section) || r.H2 != h2 {
			continue
		}
		if h3 != "" && r.H3 != h3 {
			continue
		}
		total = total.Add(r.ClosingMagnitude())
	}
	return total
}

// SumWhere returns the sum of absolute closing balances over rows matching
// pred. The same predicate is reused to build the matching annexure so the
// displayed total and its drill-down always agree.
func SumWhere(rows []model.LedgerRow, pred func(model.LedgerRow) bool) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if pred(r) {
			total = total.Add(r.ClosingMagnitude())
		}
	}
	return total
}

// Annexure collects annexure entries for rows matching pred, in input order.
func Annexure(rows []model.LedgerRow, pred func(model.LedgerRow) bool) []model.NoteLedgerItem {
	var items []model.NoteLedgerItem
	for _, r := range rows {
		if pred(r) {
			items = append(items, model.AnnexureFromLedger(r))
		}
	}
	return items
}

// SplitClassified separates rows that can participate in assembly from rows
// lacking an H1 tag. Unclassified rows are returned, not dropped, so callers
// can report them.
func SplitClassified(rows []model.LedgerRow) (classified, unclassified []model.LedgerRow) {
	for _, r := range rows {
		if r.Classified() {
			classified = append(classified, r)
		} else {
			unclassified = append(unclassified, r)
		}
	}
	return classified, unclassified
}
