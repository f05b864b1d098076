package capital

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// CatalogueSide distinguishes credit and debit items of the proprietor's
// capital account.
type CatalogueSide int

const (
	SideCredit CatalogueSide = iota
	SideDebit
)

// CatalogueItem is one fixed line of the proprietor's capital account, with
// the ledger-name keywords used for auto-population from the trial balance.
type CatalogueItem struct {
	Key      string
	Label    string
	Side     CatalogueSide
	Keywords []string
}

// openingBalanceKey identifies the catalogue item treated as the account's
// opening balance rather than a period credit.
const openingBalanceKey = "opening_balance"

// Catalogue is the fixed proprietor capital account layout: opening balance
// and income sources on the credit side, drawings and personal outgoings on
// the debit side.
var Catalogue = []CatalogueItem{
	{Key: openingBalanceKey, Label: "Opening Balance", Side: SideCredit, Keywords: []string{"opening balance", "capital account"}},
	{Key: "introduced", Label: "Capital Introduced", Side: SideCredit, Keywords: []string{"capital introduced", "investment"}},
	{Key: "income_business", Label: "Income from Business", Side: SideCredit},
	{Key: "income_salary", Label: "Income from Salary", Side: SideCredit, Keywords: []string{"salary"}},
	{Key: "lic_maturity", Label: "LIC Maturity Proceeds", Side: SideCredit, Keywords: []string{"lic", "insurance maturity"}},
	{Key: "gift_received", Label: "Gift from Relatives", Side: SideCredit, Keywords: []string{"gift received"}},
	{Key: "subsidy_grants", Label: "Subsidy/Grants", Side: SideCredit, Keywords: []string{"subsidy", "grant"}},
	{Key: "capital_gain", Label: "Capital Gain", Side: SideCredit, Keywords: []string{"capital gain"}},
	{Key: "ppf_interest", Label: "Interest on PPF", Side: SideCredit, Keywords: []string{"ppf interest"}},
	{Key: "other_income", Label: "Income from Other Sources", Side: SideCredit, Keywords: []string{"other income"}},
	{Key: "savings_interest", Label: "Savings Interest", Side: SideCredit, Keywords: []string{"savings interest", "bank interest"}},
	{Key: "nsc_interest", Label: "Income on NSC", Side: SideCredit, Keywords: []string{"nsc"}},
	{Key: "dividend_income", Label: "Dividend Income", Side: SideCredit, Keywords: []string{"dividend"}},
	{Key: "fno_profit", Label: "F&O Profit", Side: SideCredit, Keywords: []string{"f&o profit", "futures"}},
	{Key: "partner_remuneration", Label: "Partner's Remuneration", Side: SideCredit, Keywords: []string{"remuneration"}},
	{Key: "partnership_profit", Label: "Profit from Partnership", Side: SideCredit, Keywords: []string{"partnership profit"}},
	{Key: "rental_income", Label: "Rental Income", Side: SideCredit, Keywords: []string{"rent received", "rental"}},
	{Key: "commission", Label: "Commission & Brokerage", Side: SideCredit, Keywords: []string{"commission", "brokerage"}},
	{Key: "deposit_interest", Label: "Interest on Deposits", Side: SideCredit, Keywords: []string{"fd interest", "deposit interest"}},

	{Key: "drawings", Label: "Drawings", Side: SideDebit, Keywords: []string{"drawings", "withdrawal"}},
	{Key: "income_tax_paid", Label: "Income Tax Paid", Side: SideDebit, Keywords: []string{"income tax paid", "it paid"}},
	{Key: "provision_it", Label: "Provision for Income Tax", Side: SideDebit, Keywords: []string{"provision for tax", "tax provision"}},
	{Key: "gift_given", Label: "Gift to Relatives", Side: SideDebit, Keywords: []string{"gift given"}},
	{Key: "lic_premium", Label: "Life Insurance Premium", Side: SideDebit, Keywords: []string{"lic premium", "insurance premium"}},
	{Key: "mediclaim", Label: "Mediclaim", Side: SideDebit, Keywords: []string{"mediclaim", "health insurance"}},
	{Key: "capital_loss", Label: "Capital Loss", Side: SideDebit, Keywords: []string{"capital loss"}},
	{Key: "fno_loss", Label: "F&O Loss", Side: SideDebit, Keywords: []string{"f&o loss"}},
	{Key: "partnership_loss", Label: "Loss from Partnership", Side: SideDebit, Keywords: []string{"partnership loss"}},
	{Key: "home_loan_interest", Label: "Interest on Home Loan", Side: SideDebit, Keywords: []string{"home loan interest"}},
	{Key: "children_education", Label: "Children Education", Side: SideDebit, Keywords: []string{"children education", "school fees"}},
}

// Proprietor reconciles the owner's capital account of a proprietorship or
// HUF. Values is keyed by catalogue item key.
type Proprietor struct {
	Values map[string]decimal.Decimal
}

// NewProprietor builds a Proprietor note from manual values; nil is treated
// as empty.
func NewProprietor(values map[string]decimal.Decimal) *Proprietor {
	if values == nil {
		values = make(map[string]decimal.Decimal)
	}
	return &Proprietor{Values: values}
}

// AutoPopulate fills catalogue values by matching capital-group ledger names
// against each item's keyword list. Each row lands on the first matching
// catalogue item only. Existing values are overwritten; rows outside the
// capital group are ignored.
func (p *Proprietor) AutoPopulate(rows []model.LedgerRow) {
	populated := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.Period == model.PeriodPrevious || !classify.IsCapitalGroup(r) {
			continue
		}
		if key, ok := catalogueKeyFor(r.Name); ok {
			populated[key] = populated[key].Add(r.ClosingMagnitude())
		}
	}
	p.Values = populated
}

// catalogueKeyFor matches a ledger name to a catalogue item by keyword, more
// specific keywords first.
func catalogueKeyFor(ledgerName string) (string, bool) {
	name := strings.ToLower(ledgerName)
	bestKey := ""
	bestLen := 0
	for _, item := range Catalogue {
		for _, kw := range item.Keywords {
			if strings.Contains(name, kw) && len(kw) > bestLen {
				bestKey = item.Key
				bestLen = len(kw)
			}
		}
	}
	return bestKey, bestKey != ""
}

// NetTotal is opening balance plus the credit items less the debit items.
func (p *Proprietor) NetTotal() decimal.Decimal {
	total := p.Values[openingBalanceKey]
	for _, item := range Catalogue {
		if item.Key == openingBalanceKey {
			continue
		}
		v := p.Values[item.Key]
		if item.Side == SideCredit {
			total = total.Add(v)
		} else {
			total = total.Sub(v)
		}
	}
	return total
}

// Reconcile compares the computed net capital against the trial balance.
func (p *Proprietor) Reconcile(rows []model.LedgerRow) Result {
	return resolve(p.NetTotal(), rows, nil)
}
