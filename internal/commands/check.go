package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/auditprep-dev/auditprep/internal/aggregate"
	"github.com/auditprep-dev/auditprep/internal/capital"
	"github.com/auditprep-dev/auditprep/internal/check"
	"github.com/auditprep-dev/auditprep/internal/config"
	"github.com/auditprep-dev/auditprep/internal/currency"
	"github.com/auditprep-dev/auditprep/internal/snapshot"
)

func newCheckCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check snapshot classification, balance, and capital totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runCheck(absDir)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")

	return cmd
}

func runCheck(dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	data, err := snapshot.Load(filepath.Join(dir, snapshotFileName))
	if err != nil {
		return err
	}

	classified, unclassified := aggregate.SplitClassified(data.Rows)
	fmt.Printf("Ledgers: %d classified, %d unclassified\n", len(classified), len(unclassified))
	for _, r := range unclassified {
		fmt.Printf("  unclassified: %s (%s)\n", r.Name, r.GroupName)
	}
	for _, d := range data.Diagnostics {
		fmt.Printf("  diagnostic: %s\n", d)
	}

	report := check.BalanceSheetBalance(classified)
	status := "BALANCED"
	if !report.Balanced {
		status = "NOT BALANCED"
	}
	fmt.Printf("Balance check: %s (assets %s, liabilities and equity %s, difference %s)\n",
		status,
		currency.Format(report.TotalAssets, currency.ScaleRupees),
		currency.Format(report.TotalLiabilities, currency.ScaleRupees),
		currency.Format(report.Difference, currency.ScaleRupees))

	inputs, capitalDiags := cfg.CapitalInputs()
	for _, d := range capitalDiags {
		fmt.Printf("  diagnostic: %s\n", d)
	}
	if reconciler, err := capital.ForEntity(cfg.EntityType(), inputs); err == nil {
		if p, ok := reconciler.(*capital.Proprietor); ok && len(p.Values) == 0 {
			p.AutoPopulate(data.Rows)
		}
		result := reconciler.Reconcile(data.Rows)
		capStatus := "OK"
		if !result.Validated {
			capStatus = "MISMATCH"
		}
		fmt.Printf("Capital reconciliation: %s (difference %s)\n",
			capStatus, currency.Format(result.Difference, currency.ScaleRupees))
		for _, w := range result.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}

	if !report.Balanced {
		return fmt.Errorf("balance sheet does not balance by %s", report.Difference)
	}
	return nil
}
