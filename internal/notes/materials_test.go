package notes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditprep-dev/auditprep/internal/model"
)

func stock(name, category string, opening, closing int64) model.StockItem {
	return model.StockItem{
		Name:         name,
		Category:     category,
		OpeningValue: decimal.NewFromInt(opening),
		ClosingValue: decimal.NewFromInt(closing),
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

func TestCostOfMaterials(t *testing.T) {
	items := []model.StockItem{
		stock("Resin", "Raw Material", 1000, 400),
		stock("Widgets", "Finished Goods", 500, 700),
	}
	rows := []model.LedgerRow{
		plRow("Purchase - Local", "Purchase Accounts", 2000),
		plRow("Salaries", "Employee benefits expense", 900),
	}

	note := CostOfMaterials(items, rows)

	// Opening 1000 + purchases 2000 - closing 400; finished goods excluded.
	assert.Equal(t, "2600", note.Total.String())
	require.Len(t, note.Lines, 1)
	assert.Equal(t, "1000", note.Lines[0].Opening.String())
	assert.Equal(t, "2000", note.Lines[0].Purchases.String())
	assert.Equal(t, "400", note.Lines[0].Closing.String())
}

func TestCostOfMaterialsPackingBucket(t *testing.T) {
	items := []model.StockItem{
		stock("Resin", "Raw Material", 100, 50),
		stock("Cartons", "Packing Material", 30, 10),
	}
	rows := []model.LedgerRow{
		plRow("Purchase - Raw", "Purchase Accounts", 500),
		plRow("Packing Material Purchase", "Purchase Accounts", 60),
	}

	note := CostOfMaterials(items, rows)
	require.Len(t, note.Lines, 2)

	raw, packing := note.Lines[0], note.Lines[1]
	assert.Equal(t, "550", raw.Cost().String())
	assert.Equal(t, "80", packing.Cost().String())
	assert.Equal(t, "630", note.Total.String())
}

func TestCostOfMaterialsOmitsEmptyBuckets(t *testing.T) {
	note := CostOfMaterials([]model.StockItem{stock("Resin", "Raw Material", 100, 40)}, nil)
	require.Len(t, note.Lines, 1)
	assert.Equal(t, "60", note.Total.String())
}

func TestChangesInInventories(t *testing.T) {
	items := []model.StockItem{
		stock("Widgets", "Finished Goods", 500, 700),
		stock("Half-built", "WIP", 200, 150),
		stock("Resin", "Raw Material", 1000, 400),
	}

	note, ok := ChangesInInventories(items)
	require.True(t, ok)

	// Raw material is excluded; change is opening - closing.
	assert.Equal(t, "700", note.Opening.String())
	assert.Equal(t, "850", note.Closing.String())
	assert.Equal(t, "-150", note.Change.String())
	assert.Len(t, note.Lines, 2)
}

func TestChangesInInventoriesAbsentWhenEmpty(t *testing.T) {
	_, ok := ChangesInInventories(nil)
	assert.False(t, ok)

	// Only material stock means no inventory note at all.
	_, ok = ChangesInInventories([]model.StockItem{stock("Resin", "Raw Material", 100, 50)})
	assert.False(t, ok)

	_, ok = ChangesInInventories([]model.StockItem{stock("Widgets", "Finished Goods", 0, 0)})
	assert.False(t, ok)
}
