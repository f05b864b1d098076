package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditprep-dev/auditprep/internal/classify"
	"github.com/auditprep-dev/auditprep/internal/model"
)

func TestTemplatesAvailablePerEntity(t *testing.T) {
	supported := []model.EntityType{
		model.EntityCompany, model.EntityLLP, model.EntityPartnership,
		model.EntityProprietorship, model.EntityHUF,
	}
	for _, e := range supported {
		_, err := BalanceSheet(e)
		assert.NoError(t, err, string(e))
		_, err = ProfitAndLoss(e)
		assert.NoError(t, err, string(e))
		_, err = Label(e)
		assert.NoError(t, err, string(e))
	}

	for _, e := range []model.EntityType{model.EntityTrust, model.EntitySociety, model.EntityOther} {
		_, err := BalanceSheet(e)
		assert.ErrorIs(t, err, ErrTemplateNotAvailable, string(e))
		_, err = ProfitAndLoss(e)
		assert.ErrorIs(t, err, ErrTemplateNotAvailable, string(e))
	}
}

func TestCompanyBalanceSheetStructure(t *testing.T) {
	items, err := BalanceSheet(model.EntityCompany)
	require.NoError(t, err)

	var totals []Formula
	areas := make(map[classify.Area]int)
	for _, item := range items {
		if item.IsTotal {
			totals = append(totals, item.Formula)
		}
		if item.Area != "" {
			areas[item.Area]++
		}
	}

	// Both sides close with their own total, in document order.
	require.Len(t, totals, 2)
	assert.Equal(t, FormulaTotalEquityLiabilities, totals[0])
	assert.Equal(t, FormulaTotalAssets, totals[1])

	// Every area appears exactly once; headers and totals carry no area.
	for area, n := range areas {
		assert.Equal(t, 1, n, string(area))
	}
	assert.Contains(t, areas, classify.AreaPayablesMSME)
	assert.Contains(t, areas, classify.AreaPayables)
	assert.Contains(t, areas, classify.AreaCWIP)
}

func TestCompanyProfitAndLossStructure(t *testing.T) {
	items, err := ProfitAndLoss(model.EntityCompany)
	require.NoError(t, err)

	var formulas []Formula
	for _, item := range items {
		if item.Formula != FormulaNone {
			formulas = append(formulas, item.Formula)
		}
	}
	assert.Equal(t, []Formula{
		FormulaTotalIncome, FormulaTotalExpenses,
		FormulaProfitBeforeTax, FormulaProfitAfterTax,
	}, formulas)
}

func TestNonCorporateCapitalLabels(t *testing.T) {
	llp, err := BalanceSheet(model.EntityLLP)
	require.NoError(t, err)
	prop, err := BalanceSheet(model.EntityProprietorship)
	require.NoError(t, err)

	labelFor := func(items []LineItem, area classify.Area) string {
		for _, item := range items {
			if item.Area == area {
				return item.Label
			}
		}
		return ""
	}

	assert.Equal(t, "Partners' capital accounts", labelFor(llp, classify.AreaEquity))
	assert.Equal(t, "Proprietor's capital account", labelFor(prop, classify.AreaEquity))
}
