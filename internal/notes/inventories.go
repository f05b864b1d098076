package notes

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// InventoryLine is one sub-category of the Changes in Inventories note.
type InventoryLine struct {
	Bucket  classify.InventoryBucket
	Opening decimal.Decimal
	Closing decimal.Decimal
}

// Change is opening less closing; positive means inventory decreased and cost
// increased.
func (l InventoryLine) Change() decimal.Decimal {
	return l.Opening.Sub(l.Closing)
}

// IsZero reports whether the bucket carried no stock in either period.
func (l InventoryLine) IsZero() bool {
	return l.Opening.IsZero() && l.Closing.IsZero()
}

// InventoriesNote is the computed Changes in Inventories note over
// stock-in-trade, work-in-progress, and finished goods.
type InventoriesNote struct {
	Lines   []InventoryLine
	Opening decimal.Decimal
	Closing decimal.Decimal
	Change  decimal.Decimal
}

// ChangesInInventories derives the Changes in Inventories note from the stock
// items outside the material partition. The second return is false when no
// bucket carries any value; the note is then absent from the statement
// entirely rather than printed as a zero row.
func ChangesInInventories(stock []model.StockItem) (InventoriesNote, bool) {
	lines := make(map[classify.InventoryBucket]*InventoryLine, len(classify.InventoryBuckets))
	for _, b := range classify.InventoryBuckets {
		lines[b] = &InventoryLine{Bucket: b, Opening: decimal.Zero, Closing: decimal.Zero}
	}

	for _, item := range stock {
		bucket, ok := classify.InventoryBucketFor(item)
		if !ok {
			continue
		}
		l := lines[bucket]
		l.Opening = l.Opening.Add(item.OpeningMagnitude())
		l.Closing = l.Closing.Add(item.ClosingMagnitude())
	}

	note := InventoriesNote{Opening: decimal.Zero, Closing: decimal.Zero}
	for _, b := range classify.InventoryBuckets {
		l := lines[b]
		if l.IsZero() {
			continue
		}
		note.Lines = append(note.Lines, *l)
		note.Opening = note.Opening.Add(l.Opening)
		note.Closing = note.Closing.Add(l.Closing)
	}

	if len(note.Lines) == 0 {
		return InventoriesNote{}, false
	}
	note.Change = note.Opening.Sub(note.Closing)
	return note, true
}
