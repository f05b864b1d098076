// Package notes computes note values and their ledger-level annexures from
// classified ledger rows and stock items. A note value produced here always
// takes precedence over the assembly-time H2 fallback aggregation.
package notes

import (
	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// Set holds computed note values and the annexure entries backing them, keyed
// by area.
type Set struct {
	Values    map[classify.Area]decimal.Decimal
	Annexures map[classify.Area][]model.NoteLedgerItem
}

// NewSet returns an empty Set.
func NewSet() Set {
	return Set{
		Values:    make(map[classify.Area]decimal.Decimal),
		Annexures: make(map[classify.Area][]model.NoteLedgerItem),
	}
}

// Value returns the computed value for an area, reporting whether one exists.
func (s Set) Value(a classify.Area) (decimal.Decimal, bool) {
	v, ok := s.Values[a]
	return v, ok
}

// setIfNonZero records a value only when it is meaningful; zero-valued notes
// stay absent so assembly skips their note numbers.
func (s Set) setIfNonZero(a classify.Area, v decimal.Decimal) {
	if !v.IsZero() {
		s.Values[a] = v
	}
}

// append adds an annexure entry for an area.
func (s Set) append(a classify.Area, item model.NoteLedgerItem) {
	s.Annexures[a] = append(s.Annexures[a], item)
}
