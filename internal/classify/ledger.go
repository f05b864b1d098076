package classify

import (
	"strings"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// balanceSheetH2Area maps H2 statutory groupings to Balance Sheet areas. This
// is the coarse mapping applied when the detailed H4/ledger-name rules in
// BalanceSheetAreaFor do not fire.
var balanceSheetH2Area = map[string]Area{
	// Equity & liabilities.
	"Share Capital":               AreaEquity,
	"Equity Share Capital":        AreaEquity,
	"Preference Share Capital":    AreaEquity,
	"Partners Capital":            AreaEquity,
	"Proprietor Capital":          AreaEquity,
	"Capital Account":             AreaEquity,
	"Reserves and Surplus":        AreaReserves,
	"General Reserve":             AreaReserves,
	"Retained Earnings":           AreaReserves,
	"Profit and Loss Account":     AreaReserves,
	"Long-term borrowings":        AreaBorrowings,
	"Borrowings":                  AreaBorrowings,
	"Secured Loans":               AreaBorrowings,
	"Unsecured Loans":             AreaBorrowings,
	"Term Loans":                  AreaBorrowings,
	"Deferred tax liabilities":    AreaDeferredTax,
	"Other long-term liabilities": AreaOtherLongTerm,
	"Long-term provisions":        AreaProvisions,
	"Short-term borrowings":       AreaShortTermBorrowings,
	"Bank Overdraft":              AreaShortTermBorrowings,
	"Trade Payables - MSME":       AreaPayablesMSME,
	"Trade Payables - Others":     AreaPayables,
	"Trade payables":              AreaPayables,
	"Sundry Creditors":            AreaPayables,
	"Other current liabilities":   AreaOtherCurrentLiabilities,
	"Statutory Dues":              AreaOtherCurrentLiabilities,
	"Short-term provisions":       AreaProvisionsCurrent,
	// Assets.
	"Property, Plant and Equipment": AreaFixedAssets,
	"Property, plant and equipment": AreaFixedAssets,
	"Fixed Assets":                  AreaFixedAssets,
	"Tangible Assets":               AreaFixedAssets,
	"Intangible assets":             AreaIntangibleAssets,
	"Goodwill":                      AreaIntangibleAssets,
	"Capital work-in-progress":      AreaCWIP,
	"Non-current investments":       AreaInvestments,
	"Long-term investments":         AreaInvestments,
	"Deferred tax assets":           AreaDeferredTaxAsset,
	"Long-term loans and advances":  AreaOtherNonCurrent,
	"Other non-current assets":      AreaOtherNonCurrent,
	"Current investments":           AreaCurrentInvestments,
	"Short-term investments":        AreaCurrentInvestments,
	"Inventories":                   AreaInventory,
	"Stock-in-Trade":                AreaInventory,
	"Trade receivables":             AreaReceivables,
	"Sundry Debtors":                AreaReceivables,
	"Cash and cash equivalents":     AreaCash,
	"Bank Accounts":                 AreaCash,
	"Cash-in-Hand":                  AreaCash,
	"Short-term loans and advances": AreaOtherCurrent,
	"Other current assets":          AreaOtherCurrent,
	"Prepaid Expenses":              AreaOtherCurrent,
	"Advance to Suppliers":          AreaOtherCurrent,
}

// profitLossH2Area maps H2 (or H3) groupings to P&L areas.
var profitLossH2Area = map[string]Area{
	"Revenue from operations":               AreaRevenue,
	"Revenue from Operations":               AreaRevenue,
	"Sale of products":                      AreaRevenue,
	"Sale of services":                      AreaRevenue,
	"Other operating revenue":               AreaRevenue,
	"Other income":                          AreaOtherIncome,
	"Other Income":                          AreaOtherIncome,
	"Employee benefits expense":             AreaEmployeeBenefits,
	"Finance costs":                         AreaFinanceCosts,
	"Depreciation and amortization expense": AreaDepreciation,
	"Depreciation":                          AreaDepreciation,
	"Other expenses":                        AreaOtherExpenses,
	"Purchases of Stock-in-Trade":           AreaPurchasesOfStock,
}

// BalanceSheetAreaFor resolves the note area for a Balance Sheet ledger row.
// Detailed H4/ledger-name rules run first (they distinguish sub-buckets the H2
// grouping cannot, e.g. MSME payables or current vs non-current provisions),
// then the coarse H2 table. The second return is false when no rule matches.
func BalanceSheetAreaFor(r model.LedgerRow) (Area, bool) {
	if !r.InSection(model.SectionBalanceSheet) {
		return "", false
	}

	h3 := strings.ToLower(r.H3)
	h4 := strings.ToLower(r.H4)
	name := strings.ToLower(r.Name)
	primary := strings.ToLower(r.PrimaryGroup)

	switch {
	case strings.Contains(h4, "reserve") || strings.Contains(h4, "surplus") ||
		strings.Contains(name, "capital reserve") || strings.Contains(name, "securities premium") ||
		strings.Contains(name, "revaluation reserve") || strings.Contains(name, "surplus"):
		return AreaReserves, true

	case (strings.Contains(h4, "long") && (strings.Contains(h4, "borrowing") || strings.Contains(h4, "loan"))) ||
		(strings.Contains(name, "term loan") && !strings.Contains(name, "short")):
		return AreaBorrowings, true

	case (strings.Contains(h4, "short") && (strings.Contains(h4, "borrowing") || strings.Contains(h4, "loan"))) ||
		strings.Contains(name, "bank od") || strings.Contains(name, "cash credit"):
		return AreaShortTermBorrowings, true

	case strings.Contains(h4, "trade payable") || strings.Contains(name, "sundry creditor") ||
		strings.Contains(primary, "sundry creditors"):
		if strings.Contains(name, "msme") || strings.Contains(h4, "msme") {
			return AreaPayablesMSME, true
		}
		return AreaPayables, true

	case strings.Contains(h4, "other current liabilit") ||
		strings.Contains(name, "statutory dues") || strings.Contains(name, "tds payable") ||
		strings.Contains(name, "gst payable") || strings.Contains(name, "pf dues") ||
		strings.Contains(name, "esi dues"):
		return AreaOtherCurrentLiabilities, true

	case strings.Contains(h4, "provision") || strings.Contains(name, "provision for"):
		if strings.Contains(h3, "current") {
			return AreaProvisionsCurrent, true
		}
		return AreaProvisions, true
	}

	area, ok := balanceSheetH2Area[r.H2]
	return area, ok
}

// ProfitLossAreaFor resolves the note area for a P&L ledger row from its H2 or
// H3 grouping. The second return is false when neither tag maps.
func ProfitLossAreaFor(r model.LedgerRow) (Area, bool) {
	if !r.InSection(model.SectionProfitAndLoss) {
		return "", false
	}
	if area, ok := profitLossH2Area[r.H2]; ok {
		return area, ok
	}
	area, ok := profitLossH2Area[r.H3]
	return area, ok
}

// IsCapitalGroup reports whether a ledger row belongs to the trial balance
// capital group, matched on its parent group names.
func IsCapitalGroup(r model.LedgerRow) bool {
	return strings.Contains(strings.ToLower(r.GroupName), "capital") ||
		strings.Contains(strings.ToLower(r.PrimaryGroup), "capital")
}

// IsTaxRow reports whether a P&L row carries tax expense.
func IsTaxRow(r model.LedgerRow) bool {
	if !r.InSection(model.SectionProfitAndLoss) {
		return false
	}
	h3 := strings.ToLower(r.H3)
	return strings.Contains(strings.ToLower(r.H2), "tax") ||
		strings.Contains(h3, "current tax") ||
		strings.Contains(h3, "deferred tax")
}

// liabilityAreas marks the Balance Sheet areas on the equity and liabilities
// side; the remaining Balance Sheet areas are assets.
var liabilityAreas = map[Area]bool{
	AreaEquity:                  true,
	AreaReserves:                true,
	AreaShareWarrants:           true,
	AreaShareApplication:        true,
	AreaBorrowings:              true,
	AreaDeferredTax:             true,
	AreaOtherLongTerm:           true,
	AreaProvisions:              true,
	AreaShortTermBorrowings:     true,
	AreaPayablesMSME:            true,
	AreaPayables:                true,
	AreaOtherCurrentLiabilities: true,
	AreaProvisionsCurrent:       true,
}

// assetGroupKeywords and liabilityGroupKeywords back up the area table for H2
// groupings outside it.
var assetGroupKeywords = []string{
	"asset", "property", "inventor", "receivable", "debtor",
	"cash", "bank", "investment", "work-in-progress", "goodwill",
	"loans and advances", "prepaid", "advance",
}

var liabilityGroupKeywords = []string{
	"liabilit", "equity", "payable", "creditor", "borrowing",
	"capital", "reserve", "surplus", "retained earnings",
	"provision", "share warrant", "share application", "dues",
	"loan", "overdraft",
}

// IsAssetGroup reports whether an H2 grouping sits on the asset side of the
// Balance Sheet.
func IsAssetGroup(h2 string) bool {
	if area, ok := balanceSheetH2Area[h2]; ok {
		return !liabilityAreas[area]
	}
	return matchesAny(h2, assetGroupKeywords) && !matchesAny(h2, liabilityGroupKeywords)
}

// IsLiabilityGroup reports whether an H2 grouping sits on the equity and
// liabilities side of the Balance Sheet.
func IsLiabilityGroup(h2 string) bool {
	if area, ok := balanceSheetH2Area[h2]; ok {
		return liabilityAreas[area]
	}
	return matchesAny(h2, liabilityGroupKeywords)
}

func matchesAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
