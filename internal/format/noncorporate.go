package format

import (
	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// nonCorporateBalanceSheet is the Balance Sheet for entities outside Schedule
// III (LLP, partnership, proprietorship, HUF). Structure parallels the
// corporate template; only the capital-section labels change with the entity.
func nonCorporateBalanceSheet(entity model.EntityType) []LineItem {
	capitalLabel := "Proprietor's capital account"
	if entity == model.EntityLLP || entity == model.EntityPartnership {
		capitalLabel = "Partners' capital accounts"
	}

	return []LineItem{
		{SrNo: "I", Label: "CAPITAL AND LIABILITIES", Level: 0, IsHeader: true},

		{SrNo: "1", Label: "Owners' fund", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: capitalLabel, Level: 2, Area: classify.AreaEquity},
		{SrNo: "(b)", Label: "Reserves and surplus", Level: 2, Area: classify.AreaReserves},

		{SrNo: "2", Label: "Non-current liabilities", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Long-term borrowings", Level: 2, Area: classify.AreaBorrowings},
		{SrNo: "(b)", Label: "Other long-term liabilities", Level: 2, Area: classify.AreaOtherLongTerm},
		{SrNo: "(c)", Label: "Long-term provisions", Level: 2, Area: classify.AreaProvisions},

		{SrNo: "3", Label: "Current liabilities", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Short-term borrowings", Level: 2, Area: classify.AreaShortTermBorrowings},
		{SrNo: "(b)", Label: "Trade payables", Level: 2, Area: classify.AreaPayables},
		{SrNo: "(c)", Label: "Other current liabilities", Level: 2, Area: classify.AreaOtherCurrentLiabilities},
		{SrNo: "(d)", Label: "Short-term provisions", Level: 2, Area: classify.AreaProvisionsCurrent},

		{Label: "TOTAL", Level: 1, IsTotal: true, Formula: FormulaTotalEquityLiabilities},

		{SrNo: "II", Label: "ASSETS", Level: 0, IsHeader: true},

		{SrNo: "1", Label: "Non-current assets", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Property, plant and equipment", Level: 2, Area: classify.AreaFixedAssets},
		{SrNo: "(b)", Label: "Intangible assets", Level: 2, Area: classify.AreaIntangibleAssets},
		{SrNo: "(c)", Label: "Capital work-in-progress", Level: 2, Area: classify.AreaCWIP},
		{SrNo: "(d)", Label: "Investments", Level: 2, Area: classify.AreaInvestments},
		{SrNo: "(e)", Label: "Long-term loans and advances and other non-current assets", Level: 2, Area: classify.AreaOtherNonCurrent},

		{SrNo: "2", Label: "Current assets", Level: 1, IsHeader: true},
		{SrNo: "(a)", Label: "Current investments", Level: 2, Area: classify.AreaCurrentInvestments},
		{SrNo: "(b)", Label: "Inventories", Level: 2, Area: classify.AreaInventory},
		{SrNo: "(c)", Label: "Trade receivables", Level: 2, Area: classify.AreaReceivables},
		{SrNo: "(d)", Label: "Cash and bank balances", Level: 2, Area: classify.AreaCash},
		{SrNo: "(e)", Label: "Short-term loans and advances and other current assets", Level: 2, Area: classify.AreaOtherCurrent},

		{Label: "TOTAL", Level: 1, IsTotal: true, Formula: FormulaTotalAssets},
	}
}

// nonCorporateProfitAndLoss mirrors the Schedule III Statement of Profit and
// Loss; non-corporate entities present the same expense heads.
func nonCorporateProfitAndLoss() []LineItem {
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
