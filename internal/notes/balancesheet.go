package notes

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// ComputeBalanceSheet aggregates classified Balance Sheet rows into per-area
// note values and annexures. Rows are resolved through the detailed rules in
// classify.BalanceSheetAreaFor; rows matching no rule contribute nothing here
// and are left to the assembly-time H2 fallback.
func ComputeBalanceSheet(rows []model.LedgerRow) Set {
	set := NewSet()
	totals := make(map[classify.Area]decimal.Decimal)

	for _, r := range rows {
		area, ok := classify.BalanceSheetAreaFor(r)
		if !ok {
			continue
		}
		set.append(area, model.AnnexureFromLedger(r))
		totals[area] = totals[area].Add(r.ClosingMagnitude())
	}

	for area, total := range totals {
		set.setIfNonZero(area, total)
	}
	return set
}
