package capital

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// ShareClass is one class of shares (equity or preference) in the share
// capital note.
type ShareClass struct {
	Description    string
	NumberOfShares int64
	FaceValue      decimal.Decimal
}

// Amount is number of shares times face value.
func (s ShareClass) Amount() decimal.Decimal {
	return s.FaceValue.Mul(decimal.NewFromInt(s.NumberOfShares))
}

// ShareReconciliation reconciles shares outstanding at the beginning and end
// of the period, for both share count and amount.
type ShareReconciliation struct {
	OpeningNumber  int64
	OpeningAmount  decimal.Decimal
	MovementNumber int64
	MovementAmount decimal.Decimal
}

// ClosingNumber is opening plus movement.
func (r ShareReconciliation) ClosingNumber() int64 {
	return r.OpeningNumber + r.MovementNumber
}

// ClosingAmount is opening plus movement.
func (r ShareReconciliation) ClosingAmount() decimal.Decimal {
	return r.OpeningAmount.Add(r.MovementAmount)
}

// Shareholder is a disclosure row for holders above 5%, the holding company,
// or promoters. Informational only; it never feeds the Balance Sheet total.
type Shareholder struct {
	Name    string
	Shares  int64
	Percent decimal.Decimal
}

// Corporate reconciles the share capital note of a company. The note total is
// the issued share capital; authorized capital and shareholder tables are
// disclosures.
type Corporate struct {
	Authorized     []ShareClass
	Issued         []ShareClass
	Reconciliation ShareReconciliation
	MajorHolders   []Shareholder
	Promoters      []Shareholder
}

// IssuedTotal sums the issued share class amounts.
func (c *Corporate) IssuedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Issued {
		total = total.Add(s.Amount())
	}
	return total
}

// AuthorizedTotal sums the authorized share class amounts.
func (c *Corporate) AuthorizedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Authorized {
		total = total.Add(s.Amount())
	}
	return total
}

// Reconcile compares issued share capital against the trial balance capital
// group.
func (c *Corporate) Reconcile(rows []model.LedgerRow) Result {
	return resolve(c.IssuedTotal(), rows, nil)
}
