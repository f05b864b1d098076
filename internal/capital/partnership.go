package capital

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// Partner is one partner's capital account movement for the period.
type Partner struct {
	Name              string
	SharePercent      decimal.Decimal
	OpeningBalance    decimal.Decimal
	CapitalIntroduced decimal.Decimal
	Remuneration      decimal.Decimal
	Interest          decimal.Decimal
	ProfitLoss        decimal.Decimal
	Withdrawal        decimal.Decimal
}

// ClosingBalance is opening + capital introduced + remuneration + interest +
// profit/loss - withdrawals.
func (p Partner) ClosingBalance() decimal.Decimal {
	return p.OpeningBalance.
		Add(p.CapitalIntroduced).
		Add(p.Remuneration).
		Add(p.Interest).
		Add(p.ProfitLoss).
		Sub(p.Withdrawal)
}

// Partnership reconciles partners' capital accounts (partnership firms and
// LLPs) against the trial balance capital group.
type Partnership struct {
	Partners []Partner
}

// ClosingTotal sums the partners' computed closing balances.
func (p *Partnership) ClosingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, partner := range p.Partners {
		total = total.Add(partner.ClosingBalance())
	}
	return total
}

// SharePercentTotal sums the partners' profit-sharing percentages.
func (p *Partnership) SharePercentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, partner := range p.Partners {
		total = total.Add(partner.SharePercent)
	}
	return total
}

// Reconcile compares the partners' closing total against the trial balance.
// Share percentages not summing to 100 produce a warning, not an error.
func (p *Partnership) Reconcile(rows []model.LedgerRow) Result {
	var warnings []string
	if share := p.SharePercentTotal(); !share.Equal(decimal.NewFromInt(100)) {
		warnings = append(warnings, fmt.Sprintf("partner share percentages sum to %s, expected 100", share))
	}
	return resolve(p.ClosingTotal(), rows, warnings)
}
