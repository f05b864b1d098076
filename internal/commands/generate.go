package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/auditprep-dev/auditprep/internal/capital"
	"github.com/auditprep-dev/auditprep/internal/config"
	"github.com/auditprep-dev/auditprep/internal/currency"
	"github.com/auditprep-dev/auditprep/internal/export"
	"github.com/auditprep-dev/auditprep/internal/format"
	"github.com/auditprep-dev/auditprep/internal/model"
	"github.com/auditprep-dev/auditprep/internal/snapshot"
	"github.com/auditprep-dev/auditprep/internal/statement"
)

func newGenerateCommand() *cobra.Command {
	var projectDir string
	var scaleFlag string
	var outFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Balance Sheet and Statement of Profit and Loss",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runGenerate(absDir, scaleFlag, outFile)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&scaleFlag, "scale", "", "amount scale (overrides config)")
	cmd.Flags().StringVar(&outFile, "out", "", "write an XLSX workbook to this file")

	return cmd
}

func runGenerate(dir, scaleFlag, outFile string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	data, err := snapshot.Load(filepath.Join(dir, snapshotFileName))
	if err != nil {
		return err
	}

	entity := cfg.EntityType()
	inputs, capitalDiags := cfg.CapitalInputs()

	bs, err := statement.Generate(statement.Params{
		Kind:               statement.KindBalanceSheet,
		Entity:             entity,
		Rows:               data.Rows,
		PreviousRows:       data.PreviousRows,
		StartingNoteNumber: cfg.Report.BalanceSheetNote,
	})
	if err != nil {
		if errors.Is(err, format.ErrTemplateNotAvailable) {
			return fmt.Errorf("entity type %q: %w", entity, err)
		}
		return err
	}

	pl, err := statement.Generate(statement.Params{
		Kind:               statement.KindProfitAndLoss,
		Entity:             entity,
		Rows:               data.Rows,
		PreviousRows:       data.PreviousRows,
		Stock:              data.Stock,
		StartingNoteNumber: cfg.Report.ProfitLossNote,
	})
	if err != nil {
		return err
	}

	scaleName := cfg.Report.Scale
	if scaleFlag != "" {
		scaleName = scaleFlag
	}
	scale, err := currency.ParseScale(scaleName)
	if err != nil {
		return err
	}
	scale = currency.Resolve(scale, bs.Balance.TotalAssets, bs.Balance.TotalLiabilities)

	renderStatement(bs, scale)
	fmt.Println()
	renderStatement(pl, scale)
	fmt.Println()

	renderBalanceReport(bs, scale)
	renderReconciliation(entity, inputs, data, scale)
	renderDiagnostics(data.Diagnostics, capitalDiags, bs.Diagnostics, pl.Diagnostics)

	if outFile != "" {
		err := export.Write(outFile, export.Params{
			BusinessName:  cfg.Business.Name,
			FinancialYear: cfg.Business.FinancialYear,
			Scale:         scale,
			BalanceSheet:  &bs,
			ProfitLoss:    &pl,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
	return nil
}

func renderReconciliation(entity model.EntityType, inputs capital.Inputs, data *snapshot.Data, scale currency.Scale) {
	reconciler, err := capital.ForEntity(entity, inputs)
	if err != nil {
		fmt.Printf("Capital reconciliation skipped: %v\n", err)
		return
	}
	if p, ok := reconciler.(*capital.Proprietor); ok && len(p.Values) == 0 {
		p.AutoPopulate(data.Rows)
	}

	result := reconciler.Reconcile(data.Rows)
	status := "OK"
	if !result.Validated {
		status = "MISMATCH"
	}
	fmt.Printf("Capital reconciliation: %s (note %s vs trial balance %s, difference %s)\n",
		status,
		currency.Format(result.NoteTotal, scale),
		currency.Format(result.TrialBalanceTotal, scale),
		currency.Format(result.Difference, scale))
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}

func renderDiagnostics(snapshotDiags, capitalDiags []string, results ...statement.Diagnostics) {
	for _, d := range snapshotDiags {
		fmt.Printf("  diagnostic: %s\n", d)
	}
	for _, d := range capitalDiags {
		fmt.Printf("  diagnostic: %s\n", d)
	}
	seen := make(map[string]bool)
	for _, r := range results {
		for _, name := range r.UnclassifiedNames {
			if seen[name] {
				continue
			}
			seen[name] = true
			fmt.Printf("  unclassified: %s\n", name)
		}
	}
}
