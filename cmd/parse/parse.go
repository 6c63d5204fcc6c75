// Package parse handles single-statement parsing commands
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/finstatement/cmd/root"
	"fjacquet/finstatement/internal/export"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/textsource"
)

var csvFile string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single statement file",
	Long: `Parse a single statement file (plain text or PDF) into structured JSON.

The result contains the account details, statement period, balances,
categorized transactions and per-field confidence scores. Without -o the
JSON is printed to stdout.

Example:
  finstatement parse -i statement.pdf -o statement.json --csv transactions.csv`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVar(&csvFile, "csv", "", "Also write the transactions to this CSV file")
}

func parseFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file must be specified")
	}

	text := textsource.New(root.Log).FromFile(input)
	result := root.NewParser().ParseText(text)

	if output := root.SharedFlags.Output; output != "" {
		if err := export.WriteJSONFile(result, output); err != nil {
			root.Log.WithError(err).Fatal("Failed to write statement JSON")
		}
		root.Log.Info("Wrote statement JSON",
			logging.Field{Key: logging.FieldFile, Value: output})
	} else {
		rendered, err := export.RenderJSON(result)
		if err != nil {
			root.Log.WithError(err).Fatal("Failed to render statement JSON")
		}
		fmt.Println(rendered)
	}

	if csvFile != "" {
		if err := export.WriteTransactionsCSVFile(result.Transactions, csvFile); err != nil {
			root.Log.WithError(err).Fatal("Failed to write transactions CSV")
		}
		root.Log.Info("Wrote transactions CSV",
			logging.Field{Key: logging.FieldFile, Value: csvFile},
			logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)})
	}
}
