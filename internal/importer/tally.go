package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// TallyLedgerParser parses a classified trial balance CSV exported from Tally
// and annotated with the H1..H5 classification columns.
type TallyLedgerParser struct{}

// Format returns the parser name.
func (p *TallyLedgerParser) Format() string { return "tally-ledger" }

// Parse reads a ledger CSV and returns current-period rows.
func (p *TallyLedgerParser) Parse(r io.Reader) (Result, error) {
	records, err := readAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) <= 1 {
		return Result{}, nil
	}

	cols := columnIndex(records[0])
	required := []string{"name"}
	if err := cols.require(required); err != nil {
		return Result{}, fmt.Errorf("ledger CSV header: %w", err)
	}

	var res Result
	for i, rec := range records[1:] {
		row := model.LedgerRow{
			Name:           cols.get(rec, "name"),
			GroupName:      cols.get(rec, "group"),
			PrimaryGroup:   cols.get(rec, "primary group"),
			Period:         model.PeriodCurrent,
			OpeningBalance: res.amount(i+2, cols.get(rec, "opening")),
			ClosingBalance: res.amount(i+2, cols.get(rec, "closing")),
			H1:             cols.get(rec, "h1"),
			H2:             cols.get(rec, "h2"),
			H3:             cols.get(rec, "h3"),
			H4:             cols.get(rec, "h4"),
			H5:             cols.get(rec, "h5"),
		}
		if row.Name == "" {
			continue
		}
		res.Ledgers = append(res.Ledgers, row)
	}
	return res, nil
}

// TallyStockParser parses a stock summary CSV exported from Tally.
type TallyStockParser struct{}

// Format returns the parser name.
func (p *TallyStockParser) Format() string { return "tally-stock" }

// Parse reads a stock CSV and returns stock items.
func (p *TallyStockParser) Parse(r io.Reader) (Result, error) {
	records, err := readAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading stock CSV: %w", err)
	}
	if len(records) <= 1 {
		return Result{}, nil
	}

	cols := columnIndex(records[0])
	if err := cols.require([]string{"name"}); err != nil {
		return Result{}, fmt.Errorf("stock CSV header: %w", err)
	}

	var res Result
	for i, rec := range records[1:] {
		item := model.StockItem{
			Name:         cols.get(rec, "name"),
			StockGroup:   cols.get(rec, "group"),
			Category:     cols.get(rec, "category"),
			OpeningValue: res.amount(i+2, cols.get(rec, "opening")),
			ClosingValue: res.amount(i+2, cols.get(rec, "closing")),
		}
		if item.Name == "" {
			continue
		}
		res.Stock = append(res.Stock, item)
	}
	return res, nil
}

// readAll reads a CSV without a fixed field count; Tally exports pad rows
// unevenly.
func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// amount parses one balance leniently, recording a diagnostic instead of
// failing the import.
func (res *Result) amount(line int, raw string) decimal.Decimal {
	v, ok := model.ParseAmount(raw)
	if !ok {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("row %d: unreadable amount %q, using 0", line, raw))
	}
	return v
}

// index maps normalized header names to column positions.
type index map[string]int

// columnIndex builds a header index. Matching is case-insensitive and
// ignores surrounding whitespace; "ledger name" and "stock group" map to
// their short keys.
func columnIndex(header []string) index {
	idx := make(index, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch key {
		case "ledger name", "ledger", "stock item", "particulars":
			key = "name"
		case "group name", "stock group", "parent":
			key = "group"
		case "opening balance", "opening value":
			key = "opening"
		case "closing balance", "closing value":
			key = "closing"
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

func (idx index) get(rec []string, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (idx index) require(keys []string) error {
	for _, k := range keys {
		if _, ok := idx[k]; !ok {
			return fmt.Errorf("missing column %q", k)
		}
	}
	return nil
}
