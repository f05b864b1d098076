package commands

import (
	"fmt"
	"strings"

	"github.com/auditprep-dev/auditprep/internal/currency"
	"github.com/auditprep-dev/auditprep/internal/statement"
)

// renderStatement prints an assembled statement as an aligned text table.
func renderStatement(res statement.Result, scale currency.Scale) {
	fmt.Println(res.Title)
	fmt.Printf("%s %s\n", res.FormatLabel, scale.Label())
	fmt.Printf("%-52s %-8s %16s %16s\n", "Particulars", "Note", "Current Year", "Previous Year")
	fmt.Println(strings.Repeat("-", 96))

	for _, line := range res.Lines {
		label := strings.Repeat("  ", line.Item.Level) + line.Item.Label
		if line.Item.SrNo != "" {
			label = strings.Repeat("  ", line.Item.Level) + line.Item.SrNo + " " + line.Item.Label
		}

		if line.Item.IsHeader {
			fmt.Printf("%-52s\n", label)
			continue
		}

		previous := ""
		if res.HasPreviousPeriod {
			previous = currency.Format(line.PreviousAmount, scale)
		}
		fmt.Printf("%-52s %-8s %16s %16s\n",
			label, line.NoteNumber, currency.Format(line.CurrentAmount, scale), previous)
	}
}

// renderBalanceReport prints the assets vs liabilities consistency check.
func renderBalanceReport(res statement.Result, scale currency.Scale) {
	status := "BALANCED"
	if !res.Balance.Balanced {
		status = "NOT BALANCED"
	}
	fmt.Printf("Balance check: %s (assets %s, liabilities and equity %s, difference %s)\n",
		status,
		currency.Format(res.Balance.TotalAssets, scale),
		currency.Format(res.Balance.TotalLiabilities, scale),
		currency.Format(res.Balance.Difference, scale))
}
