package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassified(t *testing.T) {
	assert.True(t, LedgerRow{H1: "Balance Sheet"}.Classified())
	assert.True(t, LedgerRow{H1: "Profit and Loss"}.Classified())
	assert.False(t, LedgerRow{H1: ""}.Classified())
	assert.False(t, LedgerRow{H1: "Needs User Input"}.Classified())
}

func TestInSection(t *testing.T) {
	bs := LedgerRow{H1: "Balance Sheet"}
	assert.True(t, bs.InSection(SectionBalanceSheet))
	assert.False(t, bs.InSection(SectionProfitAndLoss))

	pl := LedgerRow{H1: "Profit and Loss"}
	assert.True(t, pl.InSection(SectionProfitAndLoss))

	// Older feeds use "P&L Account" at H1.
	legacy := LedgerRow{H1: "P&L Account"}
	assert.True(t, legacy.InSection(SectionProfitAndLoss))
	assert.False(t, legacy.InSection(SectionBalanceSheet))
}

func TestClosingMagnitude(t *testing.T) {
	r := LedgerRow{ClosingBalance: decimal.NewFromInt(-2500)}
	assert.Equal(t, "2500", r.ClosingMagnitude().String())
}

func TestClassificationPath(t *testing.T) {
	r := LedgerRow{H2: "Trade payables", H3: "Current", H4: "MSME"}
	assert.Equal(t, "Trade payables > Current > MSME", r.ClassificationPath())

	partial := LedgerRow{H2: "Inventories"}
	assert.Equal(t, "Inventories", partial.ClassificationPath())
}

func TestEntityCategory(t *testing.T) {
	tests := []struct {
		entity EntityType
		want   EntityCategory
	}{
		{EntityCompany, CategoryCorporate},
		{EntityLLP, CategoryPartnership},
		{EntityPartnership, CategoryPartnership},
		{EntityProprietorship, CategoryProprietor},
		{EntityHUF, CategoryProprietor},
		{EntityTrust, CategoryUnsupported},
		{EntitySociety, CategoryUnsupported},
		{EntityOther, CategoryUnsupported},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.entity.Category(), string(tt.entity))
	}
}

func TestAnnexureFromStock(t *testing.T) {
	item := AnnexureFromStock(StockItem{
		Name:         "Resin Stock",
		StockGroup:   "Raw Material",
		Category:     "Raw Material",
		OpeningValue: decimal.NewFromInt(-1000),
		ClosingValue: decimal.NewFromInt(400),
	})
	assert.Equal(t, "Resin Stock", item.LedgerName)
	assert.Equal(t, "1000", item.OpeningBalance.String())
	assert.Equal(t, "400", item.ClosingBalance.String())
}
