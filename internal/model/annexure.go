package model

import "github.com/shopspring/decimal"

// NoteLedgerItem is one contributing ledger (or stock item) behind a numbered
// note, used for drill-down annexures. It is a view built fresh on every
// assembly pass.
type NoteLedgerItem struct {
	LedgerName     string
	GroupName      string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Classification string
}

// AnnexureFromLedger builds an annexure entry for a classified ledger row.
func AnnexureFromLedger(r LedgerRow) NoteLedgerItem {
	return NoteLedgerItem{
		LedgerName:     r.Name,
		GroupName:      r.GroupName,
		OpeningBalance: r.OpeningBalance,
		ClosingBalance: r.ClosingBalance,
		Classification: r.ClassificationPath(),
	}
}

// AnnexureFromStock builds an annexure entry for a stock item. Values are
// normalized to magnitudes.
func AnnexureFromStock(s StockItem) NoteLedgerItem {
	return NoteLedgerItem{
		LedgerName:     s.Name,
		GroupName:      s.StockGroup,
		OpeningBalance: s.OpeningMagnitude(),
		ClosingBalance: s.ClosingMagnitude(),
		Classification: s.Category,
	}
}
