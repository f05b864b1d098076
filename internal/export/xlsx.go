// Package export writes assembled statements to an XLSX workbook: one sheet
// per statement and one sheet per numbered note with its ledger annexure.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/auditprep-dev/auditprep/internal/currency"
	"github.com/auditprep-dev/auditprep/internal/statement"
)

// Params describes one workbook.
type Params struct {
	BusinessName  string
	FinancialYear string
	Scale         currency.Scale
	BalanceSheet  *statement.Result
	ProfitLoss    *statement.Result
}

// Write renders the statements to an XLSX file at path.
func Write(path string, p Params) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("creating styles: %w", err)
	}

	sheets := []struct {
		name   string
		result *statement.Result
	}{
		{"Balance Sheet", p.BalanceSheet},
		{"Profit and Loss", p.ProfitLoss},
	}

	first := true
	for _, s := range sheets {
		if s.result == nil {
			continue
		}
		if first {
			// Reuse the default sheet for the first statement.
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
			first = false
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", s.name, err)
		}
		if err := writeStatement(f, s.name, *s.result, p, styles); err != nil {
			return fmt.Errorf("writing %s: %w", s.name, err)
		}
		if err := writeNoteSheets(f, *s.result, p, styles); err != nil {
			return fmt.Errorf("writing notes for %s: %w", s.name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// styleSet holds the shared cell styles of a workbook.
type styleSet struct {
	title  int
	header int
	total  int
	amount int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return s, err
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Style: 1, Color: "000000"}},
	}); err != nil {
		return s, err
	}
	if s.amount, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	return s, nil
}

func writeStatement(f *excelize.File, sheet string, res statement.Result, p Params, styles styleSet) error {
	if err := f.SetColWidth(sheet, "A", "A", 52); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "D", 16); err != nil {
		return err
	}

	row := 1
	for _, line := range []string{
		p.BusinessName,
		res.Title + " as at " + p.FinancialYear,
		res.FormatLabel + " " + p.Scale.Label(),
	} {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetCellStr(sheet, cell, line); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, cell, fmt.Sprintf("D%d", row)); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.title); err != nil {
			return err
		}
		row++
	}
	row++

	for i, h := range []string{"Particulars", "Note No.", "Current Year", "Previous Year"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}
	row++

	for _, line := range res.Lines {
		label := strings.Repeat("    ", line.Item.Level) + line.Item.Label
		if line.Item.SrNo != "" {
			label = strings.Repeat("    ", line.Item.Level) + line.Item.SrNo + " " + line.Item.Label
		}
		if err := f.SetCellStr(sheet, fmt.Sprintf("A%d", row), label); err != nil {
			return err
		}
		if line.HasNote() {
			if err := f.SetCellStr(sheet, fmt.Sprintf("B%d", row), line.NoteNumber); err != nil {
				return err
			}
		}
		if !line.Item.IsHeader {
			if err := f.SetCellStr(sheet, fmt.Sprintf("C%d", row), currency.Format(line.CurrentAmount, p.Scale)); err != nil {
				return err
			}
			if res.HasPreviousPeriod {
				if err := f.SetCellStr(sheet, fmt.Sprintf("D%d", row), currency.Format(line.PreviousAmount, p.Scale)); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), styles.amount); err != nil {
				return err
			}
		}
		if line.Item.IsHeader || line.Item.IsTotal {
			style := styles.header
			if line.Item.IsTotal {
				style = styles.total
			}
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), style); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

// writeNoteSheets adds one sheet per numbered note that has an annexure.
func writeNoteSheets(f *excelize.File, res statement.Result, p Params, styles styleSet) error {
	for _, line := range res.Lines {
		if !line.HasNote() {
			continue
		}
		items := res.NoteLedgers[line.Item.Area]
		if len(items) == 0 {
			continue
		}
		sheet := "Note " + line.NoteNumber
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", "B", 36); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "C", "E", 16); err != nil {
			return err
		}

		title := fmt.Sprintf("Note %s: %s", line.NoteNumber, line.Item.Label)
		if err := f.SetCellStr(sheet, "A1", title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
			return err
		}

		for i, h := range []string{"Ledger", "Group", "Opening", "Closing", "Classification"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, 3)
			if err := f.SetCellStr(sheet, cell, h); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
				return err
			}
		}

		row := 4
		for _, item := range items {
			values := []string{
				item.LedgerName,
				item.GroupName,
				currency.Format(item.OpeningBalance, p.Scale),
				currency.Format(item.ClosingBalance, p.Scale),
				item.Classification,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellStr(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}
