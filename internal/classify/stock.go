package classify

import (
	"strings"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// MaterialBucket is a sub-category of the Cost of Materials Consumed note.
type MaterialBucket string

const (
	MaterialRaw     MaterialBucket = "Raw Material"
	MaterialPacking MaterialBucket = "Packing Material"
	MaterialOther   MaterialBucket = "Other Material"
)

// MaterialBuckets lists the buckets in display order.
var MaterialBuckets = []MaterialBucket{MaterialRaw, MaterialPacking, MaterialOther}

// InventoryBucket is a sub-category of the Changes in Inventories note.
type InventoryBucket string

const (
	InventoryStockInTrade   InventoryBucket = "Stock-in-Trade"
	InventoryWorkInProgress InventoryBucket = "Work in Progress"
	InventoryFinishedGoods  InventoryBucket = "Finished Goods"
)

// InventoryBuckets lists the buckets in display order.
var InventoryBuckets = []InventoryBucket{InventoryStockInTrade, InventoryWorkInProgress, InventoryFinishedGoods}

// otherMaterialKeywords are category substrings that classify a stock item as
// consumable/other material.
var otherMaterialKeywords = []string{"consumable", "other", "component", "intermediate"}

// IsMaterial reports whether the stock item belongs to the Cost of Materials
// Consumed partition. Items failing this test fall to the Changes in
// Inventories partition; no item is ever in both.
func IsMaterial(item model.StockItem) bool {
	_, ok := MaterialBucketFor(item)
	return ok
}

// MaterialBucketFor classifies a stock item into a material bucket by
// case-insensitive substring match on its category and stock group. The second
// return is false for items that are not materials at all.
func MaterialBucketFor(item model.StockItem) (MaterialBucket, bool) {
	category := strings.ToLower(item.Category)
	group := strings.ToLower(item.StockGroup)

	switch {
	case strings.Contains(category, "raw") || strings.Contains(group, "raw"):
		return MaterialRaw, true
	case strings.Contains(category, "pack") || strings.Contains(group, "pack"):
		return MaterialPacking, true
	}
	for _, kw := range otherMaterialKeywords {
		if strings.Contains(category, kw) {
			return MaterialOther, true
		}
	}
	return "", false
}

// InventoryBucketFor classifies a non-material stock item into an inventory
// bucket. The second return is false for items claimed by the material
// partition, which keeps the two notes mutually exclusive.
func InventoryBucketFor(item model.StockItem) (InventoryBucket, bool) {
	if IsMaterial(item) {
		return "", false
	}

	category := strings.ToLower(item.Category)
	group := strings.ToLower(item.StockGroup)

	switch {
	case strings.Contains(category, "stock-in-trade") ||
		strings.Contains(category, "stock in trade") ||
		category == "trading" ||
		strings.Contains(group, "trading"):
		return InventoryStockInTrade, true
	case strings.Contains(category, "work-in-progress") ||
		strings.Contains(category, "work in progress") ||
		strings.Contains(category, "wip") ||
		strings.Contains(group, "wip"):
		return InventoryWorkInProgress, true
	default:
		return InventoryFinishedGoods, true
	}
}

// IsPurchaseRow reports whether a ledger row records purchases, matched on the
// H3 tag or the ledger name.
func IsPurchaseRow(r model.LedgerRow) bool {
	return strings.Contains(strings.ToLower(r.H3), "purchase") ||
		strings.Contains(strings.ToLower(r.Name), "purchase")
}

// PurchaseBucketFor assigns a purchase ledger to a material bucket by ledger
// name. Unmatched purchase ledgers default to Raw Material, mirroring the
// treatment of general purchase accounts in manufacturing trial balances.
func PurchaseBucketFor(r model.LedgerRow) MaterialBucket {
	name := strings.ToLower(r.Name)
	if strings.Contains(name, "pack") {
		return MaterialPacking
	}
	return MaterialRaw
}

// IsMaterialsConsumedRow reports whether a ledger row is classified directly
// under the Cost of Materials Consumed note via its H3 tag.
func IsMaterialsConsumedRow(r model.LedgerRow) bool {
	return strings.Contains(strings.ToLower(r.H3), "cost of materials consumed")
}
