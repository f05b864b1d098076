package notes

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// MaterialLine is one sub-category of the Cost of Materials Consumed note.
type MaterialLine struct {
	Bucket    classify.MaterialBucket
	Opening   decimal.Decimal
	Purchases decimal.Decimal
	Closing   decimal.Decimal
}

// Cost is opening stock plus purchases less closing stock.
func (l MaterialLine) Cost() decimal.Decimal {
	return l.Opening.Add(l.Purchases).Sub(l.Closing)
}

// IsZero reports whether the bucket carried no stock and no purchases.
func (l MaterialLine) IsZero() bool {
	return l.Opening.IsZero() && l.Purchases.IsZero() && l.Closing.IsZero()
}

// MaterialsNote is the computed Cost of Materials Consumed note.
type MaterialsNote struct {
	// Lines holds the non-empty buckets in display order. Buckets with no
	// activity are omitted from display but still contribute zero to Total.
	Lines []MaterialLine
	Total decimal.Decimal
}

// CostOfMaterials derives the Cost of Materials Consumed note. Stock items in
// the material partition supply opening and closing values per bucket;
// purchase ledgers (H3 or name containing "purchase") supply the purchases
// figure, assigned to a bucket by ledger name.
func CostOfMaterials(stock []model.StockItem, rows []model.LedgerRow) MaterialsNote {
	lines := make(map[classify.MaterialBucket]*MaterialLine, len(classify.MaterialBuckets))
	for _, b := range classify.MaterialBuckets {
		lines[b] = &MaterialLine{Bucket: b, Opening: decimal.Zero, Purchases: decimal.Zero, Closing: decimal.Zero}
	}

	for _, item := range stock {
		bucket, ok := classify.MaterialBucketFor(item)
		if !ok {
			continue
		}
		l := lines[bucket]
		l.Opening = l.Opening.Add(item.OpeningMagnitude())
		l.Closing = l.Closing.Add(item.ClosingMagnitude())
	}

	for _, r := range rows {
		if !classify.IsPurchaseRow(r) {
			continue
		}
		l := lines[classify.PurchaseBucketFor(r)]
		l.Purchases = l.Purchases.Add(r.ClosingMagnitude())
	}

	note := MaterialsNote{Total: decimal.Zero}
	for _, b := range classify.MaterialBuckets {
		l := lines[b]
		note.Total = note.Total.Add(l.Cost())
		if !l.IsZero() {
			note.Lines = append(note.Lines, *l)
		}
	}
	return note
}
