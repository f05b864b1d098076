package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditprep-dev/auditprep/internal/model"
)

// LoadFile reads the raw snapshot file for editing. A missing file is an
// empty snapshot.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &f, nil
}

// SaveFile writes a snapshot file to disk.
func SaveFile(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// AppendLedgers adds imported ledger rows to the snapshot.
func (f *File) AppendLedgers(rows []model.LedgerRow) {
	for _, r := range rows {
		f.Ledgers = append(f.Ledgers, Ledger{
			Name:         r.Name,
			Group:        r.GroupName,
			PrimaryGroup: r.PrimaryGroup,
			Opening:      r.OpeningBalance.String(),
			Closing:      r.ClosingBalance.String(),
			H1:           r.H1,
			H2:           r.H2,
			H3:           r.H3,
			H4:           r.H4,
			H5:           r.H5,
		})
	}
}

// AppendStock adds imported stock items to the snapshot.
func (f *File) AppendStock(items []model.StockItem) {
	for _, s := range items {
		f.Stock = append(f.Stock, Stock{
			Name:     s.Name,
			Group:    s.StockGroup,
			Category: s.Category,
			Opening:  s.OpeningValue.String(),
			Closing:  s.ClosingValue.String(),
		})
	}
}
