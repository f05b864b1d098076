package notes

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// ComputeProfitLoss aggregates classified P&L rows and stock items into
// per-area note values and annexures. Simple expense and income areas sum
// ledger closings; Cost of Materials Consumed and Changes in Inventories come
// from the stock-backed calculators.
func ComputeProfitLoss(rows []model.LedgerRow, stock []model.StockItem) Set {
	set := NewSet()
	totals := make(map[classify.Area]decimal.Decimal)

	for _, r := range rows {
		area, ok := classify.ProfitLossAreaFor(r)
		if !ok {
			continue
		}
		set.append(area, model.AnnexureFromLedger(r))
		totals[area] = totals[area].Add(r.ClosingMagnitude())
	}
	for area, total := range totals {
		set.setIfNonZero(area, total)
	}

	tax := decimal.Zero
	for _, r := range rows {
		if !classify.IsTaxRow(r) {
			continue
		}
		set.append(classify.AreaTaxExpense, model.AnnexureFromLedger(r))
		tax = tax.Add(r.ClosingMagnitude())
	}
	set.setIfNonZero(classify.AreaTaxExpense, tax)

	if len(stock) == 0 {
		return set
	}

	// The materials note exists only when the stock carries material items;
	// otherwise purchase ledgers stay on the Purchases of Stock-in-Trade
	// line and must not be counted twice.
	hasMaterial := false
	for _, item := range stock {
		if classify.IsMaterial(item) {
			hasMaterial = true
			break
		}
	}

	if hasMaterial {
		materials := CostOfMaterials(stock, rows)
		set.Values[classify.AreaCostOfMaterials] = materials.Total
		for _, item := range stock {
			if classify.IsMaterial(item) {
				set.append(classify.AreaCostOfMaterials, model.AnnexureFromStock(item))
			}
		}
		for _, r := range rows {
			if classify.IsPurchaseRow(r) {
				entry := model.AnnexureFromLedger(r)
				entry.Classification = "Purchases"
				set.append(classify.AreaCostOfMaterials, entry)
			}
		}
	}

	if inventories, ok := ChangesInInventories(stock); ok {
		set.Values[classify.AreaChangesInInventories] = inventories.Change
		for _, item := range stock {
			if _, nonMaterial := classify.InventoryBucketFor(item); nonMaterial {
				set.append(classify.AreaChangesInInventories, model.AnnexureFromStock(item))
			}
		}
	}

	return set
}
