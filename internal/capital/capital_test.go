package capital

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditprep-dev/auditprep/internal/model"
)

func capitalRow(name string, closing int64) model.LedgerRow {
	return model.LedgerRow{
		Name:           name,
		GroupName:      "Capital Account",
		H1:             "Balance Sheet",
		ClosingBalance: decimal.NewFromInt(closing),
	}
}

func TestCorporateReconcile(t *testing.T) {
	c := &Corporate{
		Authorized: []ShareClass{
			{Description: "Equity shares of ₹10 each", NumberOfShares: 200_000, FaceValue: decimal.NewFromInt(10)},
		},
		Issued: []ShareClass{
			{Description: "Equity shares of ₹10 each", NumberOfShares: 100_000, FaceValue: decimal.NewFromInt(10)},
		},
	}

	assert.Equal(t, "2000000", c.AuthorizedTotal().String())
	assert.Equal(t, "1000000", c.IssuedTotal().String())

	rows := []model.LedgerRow{capitalRow("Share Capital", -1000000)}
	result := c.Reconcile(rows)
	assert.True(t, result.Validated)
	assert.Equal(t, "0", result.Difference.String())

	// A mismatch is reported, not hidden.
	result = c.Reconcile([]model.LedgerRow{capitalRow("Share Capital", -900000)})
	assert.False(t, result.Validated)
	assert.Equal(t, "100000", result.Difference.String())
}

func TestShareReconciliationClosing(t *testing.T) {
	r := ShareReconciliation{
		OpeningNumber:  80_000,
		OpeningAmount:  decimal.NewFromInt(800_000),
		MovementNumber: 20_000,
		MovementAmount: decimal.NewFromInt(200_000),
	}
	assert.Equal(t, int64(100_000), r.ClosingNumber())
	assert.Equal(t, "1000000", r.ClosingAmount().String())
}

func TestPartnershipReconcile(t *testing.T) {
	p := &Partnership{Partners: []Partner{
		{
			Name:              "A",
			SharePercent:      decimal.NewFromInt(60),
			OpeningBalance:    decimal.NewFromInt(500_000),
			CapitalIntroduced: decimal.NewFromInt(100_000),
			Remuneration:      decimal.NewFromInt(120_000),
			Interest:          decimal.NewFromInt(30_000),
			ProfitLoss:        decimal.NewFromInt(90_000),
			Withdrawal:        decimal.NewFromInt(40_000),
		},
		{
			Name:           "B",
			SharePercent:   decimal.NewFromInt(40),
			OpeningBalance: decimal.NewFromInt(300_000),
			ProfitLoss:     decimal.NewFromInt(60_000),
		},
	}}

	assert.Equal(t, "800000", p.Partners[0].ClosingBalance().String())
	assert.Equal(t, "360000", p.Partners[1].ClosingBalance().String())
	assert.Equal(t, "1160000", p.ClosingTotal().String())

	result := p.Reconcile([]model.LedgerRow{
		capitalRow("A Capital", -800000),
		capitalRow("B Capital", -360000),
	})
	assert.True(t, result.Validated)
	assert.Empty(t, result.Warnings)
}

func TestPartnershipShareWarning(t *testing.T) {
	p := &Partnership{Partners: []Partner{
		{Name: "A", SharePercent: decimal.NewFromInt(60)},
		{Name: "B", SharePercent: decimal.NewFromInt(30)},
	}}

	result := p.Reconcile(nil)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "expected 100")
}

func TestProprietorNetTotal(t *testing.T) {
	p := NewProprietor(map[string]decimal.Decimal{
		"opening_balance": decimal.NewFromInt(400_000),
		"income_business": decimal.NewFromInt(250_000),
		"gift_received":   decimal.NewFromInt(50_000),
		"drawings":        decimal.NewFromInt(120_000),
		"lic_premium":     decimal.NewFromInt(30_000),
	})

	// Opening counts once: 400000 + 300000 credits - 150000 debits.
	assert.Equal(t, "550000", p.NetTotal().String())

	result := p.Reconcile([]model.LedgerRow{capitalRow("Proprietor Capital", -550000)})
	assert.True(t, result.Validated)
}

func TestProprietorAutoPopulate(t *testing.T) {
	p := NewProprietor(nil)
	p.AutoPopulate([]model.LedgerRow{
		capitalRow("Drawings", 75_000),
		capitalRow("LIC Premium Paid", 20_000),
		capitalRow("Gift Received from Father", -100_000),
		{Name: "Drawings Lookalike", GroupName: "Loans", H1: "Balance Sheet", ClosingBalance: decimal.NewFromInt(999)},
	})

	assert.Equal(t, "75000", p.Values["drawings"].String())
	assert.Equal(t, "20000", p.Values["lic_premium"].String())
	assert.Equal(t, "100000", p.Values["gift_received"].String())
	_, ok := p.Values["income_business"]
	assert.False(t, ok)
}

func TestForEntity(t *testing.T) {
	inputs := Inputs{Partners: []Partner{{Name: "A"}}}

	r, err := ForEntity(model.EntityCompany, inputs)
	require.NoError(t, err)
	assert.IsType(t, &Corporate{}, r)

	r, err = ForEntity(model.EntityLLP, inputs)
	require.NoError(t, err)
	assert.IsType(t, &Partnership{}, r)

	r, err = ForEntity(model.EntityHUF, inputs)
	require.NoError(t, err)
	assert.IsType(t, &Proprietor{}, r)

	_, err = ForEntity(model.EntityTrust, inputs)
	assert.Error(t, err)
}
