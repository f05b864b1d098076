package format

import "github.com/auditprep-dev/auditprep/internal/classify"

// companyBalanceSheet is the Schedule III Balance Sheet for companies.
func companyBalanceSheet() []LineItem {
	return []LineItem{
		{SrNo: "I", Label: "EQUITY AND LIABILITIES", Level: 0, IsHeader: true},

		{SrNo: "1", Label: "Shareholders' funds", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Share capital", Level: 2, Area: classify.AreaEquity},
		{SrNo: "(b)", Label: "Reserves and surplus", Level: 2, Area: classify.AreaReserves},
		{SrNo: "(c)", Label: "Money received against share warrants", Level: 2, Area: classify.AreaShareWarrants},

		{SrNo: "2", Label: "Share application money pending allotment", Level: 1, Area: classify.AreaShareApplication},

		{SrNo: "3", Label: "Non-current liabilities", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Long-term borrowings", Level: 2, Area: classify.AreaBorrowings},
		{SrNo: "(b)", Label: "Deferred tax liabilities (net)", Level: 2, Area: classify.AreaDeferredTax},
		{SrNo: "(c)", Label: "Other long-term liabilities", Level: 2, Area: classify.AreaOtherLongTerm},
		{SrNo: "(d)", Label: "Long-term provisions", Level: 2, Area: classify.AreaProvisions},

		{SrNo: "4", Label: "Current liabilities", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Short-term borrowings", Level: 2, Area: classify.AreaShortTermBorrowings},
		{SrNo: "(b)", Label: "Trade payables", Level: 2, IsHeader: true},
		{Label: "(A) total outstanding dues of micro enterprises and small enterprises", Level: 3, Area: classify.AreaPayablesMSME},
		{Label: "(B) total outstanding dues of creditors other than micro enterprises and small enterprises", Level: 3, Area: classify.AreaPayables},
		{SrNo: "(c)", Label: "Other current liabilities", Level: 2, Area: classify.AreaOtherCurrentLiabilities},
		{SrNo: "(d)", Label: "Short-term provisions", Level: 2, Area: classify.AreaProvisionsCurrent},

		{Label: "TOTAL", Level: 1, IsTotal: true, Formula: FormulaTotalEquityLiabilities},

		{SrNo: "II", Label: "ASSETS", Level: 0, IsHeader: true},

		{SrNo: "1", Label: "Non-current assets", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Property, plant and equipment", Level: 2, Area: classify.AreaFixedAssets},
		{SrNo: "(b)", Label: "Intangible assets", Level: 2, Area: classify.AreaIntangibleAssets},
		{SrNo: "(c)", Label: "Capital work-in-progress", Level: 2, Area: classify.AreaCWIP},
		{SrNo: "(d)", Label: "Intangible assets under development", Level: 2, Area: classify.AreaIntangibleUnderDev},
		{SrNo: "(e)", Label: "Non-current investments", Level: 2, Area: classify.AreaInvestments},
		{SrNo: "(f)", Label: "Deferred tax assets (net)", Level: 2, Area: classify.AreaDeferredTaxAsset},
		{SrNo: "(g)", Label: "Long-term loans and advances and other non-current assets", Level: 2, Area: classify.AreaOtherNonCurrent},

		{SrNo: "2", Label: "Current assets", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Current investments", Level: 2, Area: classify.AreaCurrentInvestments},
		{SrNo: "(b)", Label: "Inventories", Level: 2, Area: classify.AreaInventory},
		{SrNo: "(c)", Label: "Trade receivables", Level: 2, Area: classify.AreaReceivables},
		{SrNo: "(d)", Label: "Cash and cash equivalents", Level: 2, Area: classify.AreaCash},
		{SrNo: "(e)", Label: "Short-term loans and advances and other current assets", Level: 2, Area: classify.AreaOtherCurrent},

		{Label: "TOTAL", Level: 1, IsTotal: true, Formula: FormulaTotalAssets},
	}
}

// companyProfitAndLoss is the Schedule III Statement of Profit and Loss.
func companyProfitAndLoss() []LineItem {
	return []LineItem{
		{SrNo: "I", Label: "Revenue from operations", Level: 1, Area: classify.AreaRevenue},
		{SrNo: "II", Label: "Other income", Level: 1, Area: classify.AreaOtherIncome},
		{SrNo: "III", Label: "Total Income (I + II)", Level: 1, IsTotal: true, Formula: FormulaTotalIncome},

		{SrNo: "IV", Label: "Expenses", Level: 1, IsHeader: true},
		{Label: "Cost of materials consumed", Level: 2, Area: classify.AreaCostOfMaterials},
		{Label: "Purchases of stock-in-trade", Level: 2, Area: classify.AreaPurchasesOfStock},
		{Label: "Changes in inventories of finished goods, work-in-progress and stock-in-trade", Level: 2, Area: classify.AreaChangesInInventories},
		{Label: "Employee benefits expense", Level: 2, Area: classify.AreaEmployeeBenefits},
		{Label: "Finance costs", Level: 2, Area: classify.AreaFinanceCosts},
		{Label: "Depreciation and amortization expense", Level: 2, Area: classify.AreaDepreciation},
		{Label: "Other expenses", Level: 2, Area: classify.AreaOtherExpenses},
		{Label: "Total expenses", Level: 1, IsTotal: true, Formula: FormulaTotalExpenses},

		{SrNo: "V", Label: "Profit/(loss) before tax (III - IV)", Level: 1, IsTotal: true, Formula: FormulaProfitBeforeTax},
		{SrNo: "VI", Label: "Tax expense", Level: 1, Area: classify.AreaTaxExpense},
		{SrNo: "VII", Label: "Profit/(loss) for the period (V - VI)", Level: 1, IsTotal: true, Formula: FormulaProfitAfterTax},
	}
}
