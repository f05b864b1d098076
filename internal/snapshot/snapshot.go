// Package snapshot loads a classified trial balance snapshot from YAML. The
// snapshot is the engine's primary input: every ledger row carries the five
// classification heads alongside its balances, and stock items carry their
// category for the material and inventory notes.
package snapshot

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// File is the on-disk snapshot shape. Amounts are kept as strings so that
// exported data with commas or parenthesised negatives loads without editing.
type File struct {
	Ledgers         []Ledger `yaml:"ledgers"`
	PreviousLedgers []Ledger `yaml:"previous_ledgers,omitempty"`
	Stock           []Stock  `yaml:"stock,omitempty"`
	PreviousStock   []Stock  `yaml:"previous_stock,omitempty"`
}

// Ledger is one trial balance row in the snapshot.
type Ledger struct {
	Name         string `yaml:"name"`
	Group        string `yaml:"group,omitempty"`
	PrimaryGroup string `yaml:"primary_group,omitempty"`
	Opening      string `yaml:"opening,omitempty"`
	Closing      string `yaml:"closing,omitempty"`
	H1           string `yaml:"h1,omitempty"`
	H2           string `yaml:"h2,omitempty"`
	H3           string `yaml:"h3,omitempty"`
	H4           string `yaml:"h4,omitempty"`
	H5           string `yaml:"h5,omitempty"`
}

// Stock is one stock item in the snapshot.
type Stock struct {
	Name     string `yaml:"name"`
	Group    string `yaml:"group,omitempty"`
	Category string `yaml:"category,omitempty"`
	Opening  string `yaml:"opening,omitempty"`
	Closing  string `yaml:"closing,omitempty"`
}

// Data is the loaded and parsed snapshot.
type Data struct {
	Rows         []model.LedgerRow
	PreviousRows []model.LedgerRow
	Stock        []model.StockItem
	// Diagnostics lists malformed amounts that were read as zero.
	Diagnostics []string
}

// Load reads and parses a snapshot file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(raw)
}

// Parse decodes snapshot YAML.
func Parse(raw []byte) (*Data, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	d := &Data{}
	d.Rows = d.ledgerRows(f.Ledgers, model.PeriodCurrent)
	d.PreviousRows = d.ledgerRows(f.PreviousLedgers, model.PeriodPrevious)
	d.Stock = d.stockItems(f.Stock)
	return d, nil
}

func (d *Data) ledgerRows(ledgers []Ledger, period model.PeriodType) []model.LedgerRow {
	var rows []model.LedgerRow
	for _, l := range ledgers {
		rows = append(rows, model.LedgerRow{
			Name:           l.Name,
			GroupName:      l.Group,
			PrimaryGroup:   l.PrimaryGroup,
			Period:         period,
			OpeningBalance: d.amount(l.Name, "opening", l.Opening),
			ClosingBalance: d.amount(l.Name, "closing", l.Closing),
			H1:             l.H1,
			H2:             l.H2,
			H3:             l.H3,
			H4:             l.H4,
			H5:             l.H5,
		})
	}
	return rows
}

func (d *Data) stockItems(stock []Stock) []model.StockItem {
	var items []model.StockItem
	for _, s := range stock {
		items = append(items, model.StockItem{
			Name:         s.Name,
			StockGroup:   s.Group,
			Category:     s.Category,
			OpeningValue: d.amount(s.Name, "opening", s.Opening),
			ClosingValue: d.amount(s.Name, "closing", s.Closing),
		})
	}
	return items
}

// amount parses one balance, recording a diagnostic for malformed values
// rather than failing the whole snapshot.
func (d *Data) amount(name, field, raw string) decimal.Decimal {
	v, ok := model.ParseAmount(raw)
	if !ok {
		d.Diagnostics = append(d.Diagnostics,
			fmt.Sprintf("%s: unreadable %s balance %q, using 0", name, field, raw))
	}
	return v
}
