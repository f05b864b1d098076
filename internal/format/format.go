// Package format is the registry of statutory statement templates. A template
// is an ordered list of line items; the order is the document order the
// assembly pass walks.
package format

import (
	"errors"
	"fmt"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// ErrTemplateNotAvailable reports an entity type with no statement template
// (trust, society, other). Callers must surface it as a distinct condition,
// never render an empty statement.
var ErrTemplateNotAvailable = errors.New("statement format not available for entity type")

// Formula identifies how a structural total line is computed from
// already-resolved sibling amounts. Formula lines never read ledger rows
// directly.
type Formula int

const (
	FormulaNone Formula = iota
	// FormulaTotalIncome sums the income area lines above it.
	FormulaTotalIncome
	// FormulaTotalExpenses sums the expense area lines between Total Income
	// and itself.
	FormulaTotalExpenses
	// FormulaProfitBeforeTax is Total Income less Total Expenses.
	FormulaProfitBeforeTax
	// FormulaProfitAfterTax is Profit Before Tax less the tax lines between
	// the two profit rows.
	FormulaProfitAfterTax
	// FormulaTotalEquityLiabilities sums the equity and liability area lines.
	FormulaTotalEquityLiabilities
	// FormulaTotalAssets sums the asset area lines.
	FormulaTotalAssets
)

// LineItem is one printed row of a statement template. Static per entity
// type, never mutated at runtime.
type LineItem struct {
	SrNo     string
	Label    string
	Level    int
	IsHeader bool
	IsTotal  bool
	// Area links the line to its note bucket; empty for structural headers
	// and formula rows.
	Area    classify.Area
	Formula Formula
}

// BalanceSheet returns the Balance Sheet template for an entity type.
func BalanceSheet(entity model.EntityType) ([]LineItem, error) {
	switch entity {
	case model.EntityCompany:
		return companyBalanceSheet(), nil
	case model.EntityLLP, model.EntityPartnership, model.EntityProprietorship, model.EntityHUF:
		return nonCorporateBalanceSheet(entity), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotAvailable, entity)
	}
}

// ProfitAndLoss returns the Profit and Loss template for an entity type.
func ProfitAndLoss(entity model.EntityType) ([]LineItem, error) {
	switch entity {
	case model.EntityCompany:
		return companyProfitAndLoss(), nil
	case model.EntityLLP, model.EntityPartnership, model.EntityProprietorship, model.EntityHUF:
		return nonCorporateProfitAndLoss(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotAvailable, entity)
	}
}

// Label returns the format caption shown under the statement title.
func Label(entity model.EntityType) (string, error) {
	switch entity {
	case model.EntityCompany:
		return "As per Schedule III of the Companies Act, 2013", nil
	case model.EntityLLP:
		return "Non-Corporate Entity Format (LLP)", nil
	case model.EntityPartnership:
		return "Non-Corporate Entity Format (Partnership Firm)", nil
	case model.EntityProprietorship:
		return "Non-Corporate Entity Format (Proprietorship)", nil
	case model.EntityHUF:
		return "Non-Corporate Entity Format (HUF)", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrTemplateNotAvailable, entity)
	}
}
