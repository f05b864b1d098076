package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auditprep-dev/auditprep/internal/importer"
	"github.com/auditprep-dev/auditprep/internal/snapshot"
)

// snapshotFileName is the trial balance snapshot written by import and read
// by generate and check.
const snapshotFileName = "snapshot.yaml"

func newImportCommand() *cobra.Command {
	var projectDir string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import trial balance and stock CSVs into the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, format)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&format, "format", "", "parser format (default: by file name)")

	return cmd
}

func runImport(dir, format string) error {
	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files to import.")
		return nil
	}

	registry := importer.DefaultRegistry()
	snapPath := filepath.Join(dir, snapshotFileName)
	snap, err := snapshot.LoadFile(snapPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		parser := registry.Get(parserFormat(format, file.Name))
		if parser == nil {
			fmt.Printf("Skipping %s: no parser\n", file.Name)
			continue
		}

		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		result, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		snap.AppendLedgers(result.Ledgers)
		snap.AppendStock(result.Stock)
		for _, d := range result.Diagnostics {
			fmt.Printf("  %s: %s\n", file.Name, d)
		}

		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
		fmt.Printf("Imported %s: %d ledgers, %d stock items\n",
			file.Name, len(result.Ledgers), len(result.Stock))
	}

	return snapshot.SaveFile(snapPath, snap)
}

// parserFormat picks the parser for a file: an explicit flag wins, otherwise
// file names containing "stock" go to the stock parser.
func parserFormat(flag, fileName string) string {
	if flag != "" {
		return flag
	}
	if strings.Contains(strings.ToLower(fileName), "stock") {
		return "tally-stock"
	}
	return "tally-ledger"
}
