// Package capital reconciles entity-specific capital/equity notes against the
// trial balance capital group. Each entity category has one Reconciler
// implementation; all share the same result contract. Reconciliation is
// advisory: a mismatch is flagged, never fatal.
package capital

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// tolerance is the currency-unit tolerance applied to all capital
// reconciliations.
var tolerance = decimal.NewFromInt(1)

// Result is the common outcome of a capital-note reconciliation.
type Result struct {
	// NoteTotal is the closing total computed by the note itself.
	NoteTotal decimal.Decimal
	// TrialBalanceTotal is the independently derived capital-group total.
	TrialBalanceTotal decimal.Decimal
	// Difference is |NoteTotal - TrialBalanceTotal|.
	Difference decimal.Decimal
	// Validated is true when the difference is inside tolerance.
	Validated bool
	// Warnings carries advisory findings (e.g. partner shares not summing
	// to 100%).
	Warnings []string
}

// Reconciler computes a capital note total and validates it against the trial
// balance.
type Reconciler interface {
	Reconcile(rows []model.LedgerRow) Result
}

// ForEntity selects the reconciler for an entity type. Unsupported entity
// types get an error, not a silent zero reconciliation.
func ForEntity(entity model.EntityType, inputs Inputs) (Reconciler, error) {
	switch entity.Category() {
	case model.CategoryCorporate:
		return &Corporate{
			Authorized:     inputs.Authorized,
			Issued:         inputs.Issued,
			Reconciliation: inputs.ShareReconciliation,
			MajorHolders:   inputs.MajorHolders,
			Promoters:      inputs.Promoters,
		}, nil
	case model.CategoryPartnership:
		return &Partnership{Partners: inputs.Partners}, nil
	case model.CategoryProprietor:
		return NewProprietor(inputs.ProprietorValues), nil
	default:
		return nil, fmt.Errorf("no capital reconciler for entity type %q", entity)
	}
}

// Inputs carries the user-maintained capital-note data outside the trial
// balance: share classes for companies, the partner register for firms, and
// manual catalogue values for proprietors.
type Inputs struct {
	Authorized          []ShareClass
	Issued              []ShareClass
	ShareReconciliation ShareReconciliation
	MajorHolders        []Shareholder
	Promoters           []Shareholder
	Partners            []Partner
	ProprietorValues    map[string]decimal.Decimal
}

// trialBalanceCapitalTotal independently re-derives the capital-group total
// from current-period rows whose parent group names contain "capital".
func trialBalanceCapitalTotal(rows []model.LedgerRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if r.Period == model.PeriodPrevious || !classify.IsCapitalGroup(r) {
			continue
		}
		total = total.Add(r.ClosingMagnitude())
	}
	return total
}

// resolve fills the comparison fields of a Result from a note total and the
// trial balance.
func resolve(noteTotal decimal.Decimal, rows []model.LedgerRow, warnings []string) Result {
	tbTotal := trialBalanceCapitalTotal(rows)
	diff := noteTotal.Sub(tbTotal).Abs()
	return Result{
		NoteTotal:         noteTotal,
		TrialBalanceTotal: tbTotal,
		Difference:        diff,
		Validated:         diff.LessThan(tolerance),
		Warnings:          warnings,
	}
}
