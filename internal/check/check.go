// Package check cross-validates assembled statements against the source trial
// balance. Checks are advisory: they report, they never block generation.
package check

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// tolerance is the currency-unit tolerance below which a difference counts as
// balanced.
var tolerance = decimal.NewFromInt(1)

// BalanceReport is the outcome of the Balance Sheet balance check.
type BalanceReport struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	// Difference is assets less liabilities-and-equity, signed.
	Difference decimal.Decimal
	Balanced   bool
}

// BalanceSheetBalance independently re-sums classified Balance Sheet rows
// into total assets and total liabilities plus equity, by H2 pattern, and
// reports the arithmetic difference.
func BalanceSheetBalance(rows []model.LedgerRow) BalanceReport {
	assets := decimal.Zero
	liabilities := decimal.Zero

	for _, r := range rows {
		if !r.InSection(model.SectionBalanceSheet) {
			continue
		}
		switch {
		case classify.IsAssetGroup(r.H2):
			assets = assets.Add(r.ClosingMagnitude())
		case classify.IsLiabilityGroup(r.H2):
			liabilities = liabilities.Add(r.ClosingMagnitude())
		}
	}

	diff := assets.Sub(liabilities)
	return BalanceReport{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		Difference:       diff,
		Balanced:         diff.Abs().LessThan(tolerance),
	}
}
