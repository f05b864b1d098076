// Package classify holds the closed mapping tables between ledger/stock
// classifications and statement areas. Every keyword rule the engine applies
// lives here so that aggregation, note computation, and annexure building all
// match on the same predicate.
package classify

// Area is the stable key linking a statement line to its note bucket.
type Area string

// Balance Sheet areas.
const (
	AreaEquity                  Area = "equity"
	AreaReserves                Area = "reserves"
	AreaShareWarrants           Area = "shareWarrants"
	AreaShareApplication        Area = "shareApplication"
	AreaBorrowings              Area = "borrowings"
	AreaDeferredTax             Area = "deferredTax"
	AreaOtherLongTerm           Area = "otherLongTerm"
	AreaProvisions              Area = "provisions"
	AreaShortTermBorrowings     Area = "shortTermBorrowings"
	AreaPayablesMSME            Area = "payablesMSME"
	AreaPayables                Area = "payables"
	AreaOtherCurrentLiabilities Area = "otherCurrentLiabilities"
	AreaProvisionsCurrent       Area = "provisionsCurrent"
	AreaFixedAssets             Area = "fixedAssets"
	AreaIntangibleAssets        Area = "intangibleAssets"
	AreaCWIP                    Area = "cwip"
	AreaIntangibleUnderDev      Area = "intangibleUnderDev"
	AreaInvestments             Area = "investments"
	AreaDeferredTaxAsset        Area = "deferredTaxAsset"
	AreaOtherNonCurrent         Area = "otherNonCurrent"
	AreaCurrentInvestments      Area = "currentInvestments"
	AreaInventory               Area = "inventory"
	AreaReceivables             Area = "receivables"
	AreaCash                    Area = "cash"
	AreaOtherCurrent            Area = "otherCurrent"
)

// Profit and Loss areas.
const (
	AreaRevenue              Area = "revenueFromOperations"
	AreaOtherIncome          Area = "otherIncome"
	AreaCostOfMaterials      Area = "costOfMaterialsConsumed"
	AreaPurchasesOfStock     Area = "purchasesOfStockInTrade"
	AreaChangesInInventories Area = "changesInInventories"
	AreaEmployeeBenefits     Area = "employeeBenefits"
	AreaFinanceCosts         Area = "financeCosts"
	AreaDepreciation         Area = "depreciation"
	AreaOtherExpenses        Area = "otherExpenses"
	AreaTaxExpense           Area = "taxExpense"
)

// balanceSheetH2Fallback maps an area to the single H2 value summed when no
// computed note value exists for the line. Only the common areas have a
// fallback; the rest resolve exclusively through note computation.
var balanceSheetH2Fallback = map[Area]string{
	AreaCash:        "Cash and cash equivalents",
	AreaReceivables: "Trade receivables",
	AreaInventory:   "Inventories",
	AreaFixedAssets: "Property, plant and equipment",
	AreaPayables:    "Trade payables",
	AreaBorrowings:  "Borrowings",
	AreaEquity:      "Equity share capital",
}

// profitLossH2Fallback maps simple P&L areas to their H2 value. Derived areas
// (cost of materials, changes in inventories, purchases of stock-in-trade)
// deliberately have no fallback: their values exist only as computed notes.
var profitLossH2Fallback = map[Area]string{
	AreaRevenue:          "Revenue from operations",
	AreaOtherIncome:      "Other income",
	AreaEmployeeBenefits: "Employee benefits expense",
	AreaFinanceCosts:     "Finance costs",
	AreaDepreciation:     "Depreciation and amortization expense",
	AreaOtherExpenses:    "Other expenses",
}

// BalanceSheetFallbackH2 returns the H2 grouping summed as a fallback for a
// Balance Sheet area, or "" when the area has no ledger-level fallback.
func BalanceSheetFallbackH2(a Area) string {
	return balanceSheetH2Fallback[a]
}

// ProfitLossFallbackH2 returns the H2 grouping summed as a fallback for a
// P&L area, or "" when the area must come from a computed note.
func ProfitLossFallbackH2(a Area) string {
	return profitLossH2Fallback[a]
}
