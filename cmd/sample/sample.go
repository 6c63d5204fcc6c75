// Package sample handles sample statement generation commands
package sample

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"fjacquet/finstatement/cmd/root"
	"fjacquet/finstatement/internal/fileutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/sample"
)

var (
	count int
	seed  int64
)

// Cmd represents the sample command
var Cmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample statement files",
	Long: `Generate fictional sample statements for testing the parser.

Writes one Chase credit-card statement and one Bank of America checking
statement as plain text files into the output directory. A fixed seed
reproduces the same statements.

Example:
  finstatement sample -o samples/ --count 15 --seed 42`,
	Run: sampleFunc,
}

func init() {
	Cmd.Flags().IntVar(&count, "count", 10, "Transactions per statement")
	Cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
}

func sampleFunc(cmd *cobra.Command, args []string) {
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		root.Log.Fatal("Output directory must be specified")
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.WithError(err).Fatal("Failed to create output directory")
	}

	generator := sample.NewGenerator(seed, nil)
	statements := map[string]string{
		"chase_credit_card.txt": generator.ChaseCreditCard(count),
		"bofa_checking.txt":     generator.BofAChecking(count),
	}

	for name, text := range statements {
		path := filepath.Join(outputDir, name)
		if err := fileutils.WriteFile(path, []byte(text), 0o600); err != nil {
			root.Log.WithError(err).Fatal("Failed to write sample statement",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
		root.Log.Info("Wrote sample statement",
			logging.Field{Key: logging.FieldFile, Value: path})
	}
}
