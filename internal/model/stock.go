package model

import "github.com/shopspring/decimal"

// StockItem is one inventory item from the stock summary feed.
type StockItem struct {
	Name         string
	StockGroup   string
	Category     string
	OpeningValue decimal.Decimal
	ClosingValue decimal.Decimal
}

// OpeningMagnitude returns the absolute opening value. Stock is always a
// debit/asset balance; some feeds deliver it with a negative sign.
func (s StockItem) OpeningMagnitude() decimal.Decimal {
	return s.OpeningValue.Abs()
}

// ClosingMagnitude returns the absolute closing value.
func (s StockItem) ClosingMagnitude() decimal.Decimal {
	return s.ClosingValue.Abs()
}
