package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditprep-dev/auditprep/internal/model"
)

const sampleSnapshot = `
ledgers:
  - name: HDFC Current Account
    group: Bank Accounts
    opening: "1,00,000"
    closing: "1,25,000.50"
    h1: Balance Sheet
    h2: Bank Accounts
  - name: Sales
    opening: "0"
    closing: "(9,000)"
    h1: Profit and Loss
    h2: Revenue from operations
previous_ledgers:
  - name: Sales
    closing: "-7000"
    h1: Profit and Loss
    h2: Revenue from operations
stock:
  - name: Resin
    category: Raw Material
    opening: "1000"
    closing: "400"
`

func TestParse(t *testing.T) {
	data, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "100000", data.Rows[0].OpeningBalance.String())
	assert.Equal(t, "125000.5", data.Rows[0].ClosingBalance.String())
	assert.Equal(t, model.PeriodCurrent, data.Rows[0].Period)
	assert.Equal(t, "-9000", data.Rows[1].ClosingBalance.String())

	require.Len(t, data.PreviousRows, 1)
	assert.Equal(t, model.PeriodPrevious, data.PreviousRows[0].Period)

	require.Len(t, data.Stock, 1)
	assert.Equal(t, "1000", data.Stock[0].OpeningValue.String())
	assert.Empty(t, data.Diagnostics)
}

func TestParseMalformedAmountIsDiagnosticNotError(t *testing.T) {
	data, err := Parse([]byte(`
ledgers:
  - name: Broken Ledger
    closing: "12abc"
    h1: Balance Sheet
    h2: Bank Accounts
`))
	require.NoError(t, err)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "0", data.Rows[0].ClosingBalance.String())
	require.Len(t, data.Diagnostics, 1)
	assert.Contains(t, data.Diagnostics[0], "Broken Ledger")
	assert.Contains(t, data.Diagnostics[0], "12abc")
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("ledgers: [unclosed"))
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	f := &File{}
	f.AppendLedgers([]model.LedgerRow{
		{Name: "Cash", GroupName: "Cash-in-Hand", H1: "Balance Sheet", H2: "Cash-in-Hand"},
	})
	f.AppendStock([]model.StockItem{
		{Name: "Resin", Category: "Raw Material"},
	})

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, SaveFile(path, f))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got.Ledgers, 1)
	assert.Equal(t, "Cash", got.Ledgers[0].Name)
	require.Len(t, got.Stock, 1)
	assert.Equal(t, "Raw Material", got.Stock[0].Category)
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	got, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, got.Ledgers)
}
