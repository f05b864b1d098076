package statement

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/format"
	"github.com/auditprep-dev/auditprep/internal/model"
)

func bsRow(name, h2 string, closing int64) model.LedgerRow {
	return model.LedgerRow{
		Name:           name,
		H1:             "Balance Sheet",
		H2:             h2,
		ClosingBalance: decimal.NewFromInt(closing),
	}
}

func plRow(name, h2 string, closing int64) model.LedgerRow {
	return model.LedgerRow{
		Name:           name,
		H1:             "Profit and Loss",
		H2:             h2,
		ClosingBalance: decimal.NewFromInt(closing),
	}
}

// companyRows is a small balanced trial balance: assets 500 against capital
// and creditors 500.
func companyRows() []model.LedgerRow {
	return []model.LedgerRow{
		bsRow("HDFC Current Account", "Bank Accounts", 300),
		bsRow("Acme Traders", "Sundry Debtors", 200),
		bsRow("Equity Capital", "Share Capital", -400),
		bsRow("Steel Suppliers", "Sundry Creditors", -100),
		plRow("Sales", "Revenue from operations", -9000),
		plRow("Salaries", "Employee benefits expense", 900),
		plRow("Income Tax", "Tax Expense", 300),
	}
}

func lineByArea(res Result, area classify.Area) (Line, bool) {
	for _, l := range res.Lines {
		if l.Item.Area == area {
			return l, true
		}
	}
	return Line{}, false
}

func TestGenerateBalanceSheet(t *testing.T) {
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	})
	require.NoError(t, err)

	equity, ok := lineByArea(res, classify.AreaEquity)
	require.True(t, ok)
	assert.Equal(t, "400", equity.CurrentAmount.String())
	assert.Equal(t, "3", equity.NoteNumber)

	cash, ok := lineByArea(res, classify.AreaCash)
	require.True(t, ok)
	assert.Equal(t, "300", cash.CurrentAmount.String())

	liabilities, _, ok := res.Total(format.FormulaTotalEquityLiabilities)
	require.True(t, ok)
	assets, _, ok := res.Total(format.FormulaTotalAssets)
	require.True(t, ok)
	assert.Equal(t, "500", liabilities.String())
	assert.Equal(t, "500", assets.String())

	assert.True(t, res.Balance.Balanced)
	assert.Zero(t, res.Diagnostics.UnclassifiedCount)
}

func TestGenerateProfitAndLoss(t *testing.T) {
	res, err := Generate(Params{
		Kind:   KindProfitAndLoss,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	})
	require.NoError(t, err)

	income, _, ok := res.Total(format.FormulaTotalIncome)
	require.True(t, ok)
	expenses, _, ok := res.Total(format.FormulaTotalExpenses)
	require.True(t, ok)
	pbt, _, ok := res.Total(format.FormulaProfitBeforeTax)
	require.True(t, ok)
	pat, _, ok := res.Total(format.FormulaProfitAfterTax)
	require.True(t, ok)

	assert.Equal(t, "9000", income.String())
	assert.Equal(t, "900", expenses.String())
	assert.Equal(t, "8100", pbt.String())
	assert.Equal(t, "7800", pat.String())

	// Formula rows agree with the area rows they summarize.
	assert.Equal(t, income.Sub(expenses).String(), pbt.String())
}

func TestNoteNumberingMonotonic(t *testing.T) {
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	})
	require.NoError(t, err)

	prev := 0
	count := 0
	for _, l := range res.Lines {
		if !l.HasNote() {
			continue
		}
		n, err := strconv.Atoi(l.NoteNumber)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
		count++
	}
	assert.Equal(t, 4, count)
	assert.Equal(t, 7, res.NextNoteNumber)
}

func TestZeroLinesGetNoNote(t *testing.T) {
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	})
	require.NoError(t, err)

	reserves, ok := lineByArea(res, classify.AreaReserves)
	require.True(t, ok)
	assert.True(t, reserves.CurrentAmount.IsZero())
	assert.False(t, reserves.HasNote())
}

func TestPreviousPeriodAloneEarnsNote(t *testing.T) {
	res, err := Generate(Params{
		Kind:         KindProfitAndLoss,
		Entity:       model.EntityCompany,
		Rows:         []model.LedgerRow{plRow("Sales", "Revenue from operations", -100)},
		PreviousRows: []model.LedgerRow{
			{Name: "Old Salaries", H1: "Profit and Loss", H2: "Employee benefits expense",
				Period: model.PeriodPrevious, ClosingBalance: decimal.NewFromInt(700)},
		},
	})
	require.NoError(t, err)
	assert.True(t, res.HasPreviousPeriod)

	salaries, ok := lineByArea(res, classify.AreaEmployeeBenefits)
	require.True(t, ok)
	assert.True(t, salaries.CurrentAmount.IsZero())
	assert.Equal(t, "700", salaries.PreviousAmount.String())
	assert.True(t, salaries.HasNote())
}

func TestNoteCounterContinuesAcrossStatements(t *testing.T) {
	bs, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	})
	require.NoError(t, err)

	pl, err := Generate(Params{
		Kind:               KindProfitAndLoss,
		Entity:             model.EntityCompany,
		Rows:               companyRows(),
		StartingNoteNumber: bs.NextNoteNumber,
	})
	require.NoError(t, err)

	revenue, ok := lineByArea(pl, classify.AreaRevenue)
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(bs.NextNoteNumber), revenue.NoteNumber)
}

func TestExplicitNoteValueWins(t *testing.T) {
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
		NoteValues: map[classify.Area]decimal.Decimal{
			classify.AreaCash: decimal.NewFromInt(999),
		},
	})
	require.NoError(t, err)

	cash, ok := lineByArea(res, classify.AreaCash)
	require.True(t, ok)
	assert.Equal(t, "999", cash.CurrentAmount.String())
}

func TestExplicitAnnexureWins(t *testing.T) {
	override := []model.NoteLedgerItem{{LedgerName: "Manual Entry"}}
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
		NoteLedgers: map[classify.Area][]model.NoteLedgerItem{
			classify.AreaCash: override,
		},
	})
	require.NoError(t, err)

	require.Len(t, res.NoteLedgers[classify.AreaCash], 1)
	assert.Equal(t, "Manual Entry", res.NoteLedgers[classify.AreaCash][0].LedgerName)
}

func TestGenerateDeterministic(t *testing.T) {
	params := Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   companyRows(),
	}

	first, err := Generate(params)
	require.NoError(t, err)
	second, err := Generate(params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateUnsupportedEntity(t *testing.T) {
	_, err := Generate(Params{Kind: KindBalanceSheet, Entity: model.EntityTrust})
	assert.ErrorIs(t, err, format.ErrTemplateNotAvailable)
}

func TestUnclassifiedRowsReported(t *testing.T) {
	rows := append(companyRows(), model.LedgerRow{Name: "Suspense"})
	res, err := Generate(Params{
		Kind:   KindBalanceSheet,
		Entity: model.EntityCompany,
		Rows:   rows,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Diagnostics.UnclassifiedCount)
	assert.Equal(t, []string{"Suspense"}, res.Diagnostics.UnclassifiedNames)
}

func TestManufacturingDerivedNotes(t *testing.T) {
	rows := []model.LedgerRow{
		plRow("Sales", "Revenue from operations", -10000),
		plRow("Purchase - Local", "Purchase Accounts", 2000),
	}
	items := []model.StockItem{
		{Name: "Resin", Category: "Raw Material",
			OpeningValue: decimal.NewFromInt(1000), ClosingValue: decimal.NewFromInt(400)},
		{Name: "Widgets", Category: "Finished Goods",
			OpeningValue: decimal.NewFromInt(500), ClosingValue: decimal.NewFromInt(700)},
	}

	res, err := Generate(Params{
		Kind:   KindProfitAndLoss,
		Entity: model.EntityCompany,
		Rows:   rows,
		Stock:  items,
	})
	require.NoError(t, err)

	materials, ok := lineByArea(res, classify.AreaCostOfMaterials)
	require.True(t, ok)
	assert.Equal(t, "2600", materials.CurrentAmount.String())
	assert.True(t, materials.HasNote())

	inventories, ok := lineByArea(res, classify.AreaChangesInInventories)
	require.True(t, ok)
	assert.Equal(t, "-200", inventories.CurrentAmount.String())

	expenses, _, ok := res.Total(format.FormulaTotalExpenses)
	require.True(t, ok)
	assert.Equal(t, "2400", expenses.String())
}
