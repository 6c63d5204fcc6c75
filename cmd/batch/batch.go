// Package batch handles batch processing of statement files
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/finstatement/cmd/root"
	"fjacquet/finstatement/internal/batch"
	"fjacquet/finstatement/internal/export"
	"fjacquet/finstatement/internal/fileutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/report"
	"fjacquet/finstatement/internal/scanner"
	"fjacquet/finstatement/internal/textsource"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement files from a directory",
	Long: `Batch process all statement files (plain text or PDF) in an input
directory and write the results to another directory.

Each document produces a JSON result file. Documents are then grouped by
account, and each account gets a consolidated CSV with the merged,
chronologically sorted transactions of all its statements.

Example:
  finstatement batch -i statements/ -o results/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.WithError(err).Fatal("Failed to create output directory")
	}

	paths, err := scanner.NewStatementScanner(root.Log).Scan([]string{inputDir})
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to scan input directory")
	}
	if len(paths) == 0 {
		root.Log.Warn("No statement files found in input directory")
		return
	}
	root.Log.Info("Found statement files",
		logging.Field{Key: logging.FieldCount, Value: len(paths)})

	source := textsource.New(root.Log)
	runner := batch.NewRunner(root.NewParser(), source.FromFile, root.Log)

	results := runner.Run(context.Background(), paths, batch.Options{
		Parallel: root.Cfg.Batch.Parallel,
		Workers:  root.Cfg.Batch.Workers,
		Timeout:  time.Duration(root.Cfg.Batch.TimeoutSeconds) * time.Second,
	})

	for path, result := range results {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
		if err := export.WriteJSONFile(result, filepath.Join(outputDir, name)); err != nil {
			root.Log.WithError(err).Error("Failed to write statement JSON",
				logging.Field{Key: logging.FieldDocument, Value: path})
		}
	}

	aggregator := batch.NewAggregator(root.Log)
	groups := aggregator.GroupByAccount(results)
	for _, group := range groups {
		transactions := aggregator.MergeTransactions(results, group)
		if len(transactions) == 0 {
			continue
		}

		name := fmt.Sprintf("%s_%s.csv", group.Account, group.Period)
		if err := export.WriteTransactionsCSVFile(transactions, filepath.Join(outputDir, name)); err != nil {
			root.Log.WithError(err).Error("Failed to write consolidated CSV",
				logging.Field{Key: "account", Value: group.Account})
			continue
		}
		root.Log.Info("Created consolidated file",
			logging.Field{Key: "account", Value: group.Account},
			logging.Field{Key: logging.FieldCount, Value: len(transactions)},
			logging.Field{Key: logging.FieldFile, Value: name})
	}

	generator := report.NewGenerator(root.Log)
	summary := generator.Build(results, groups, aggregator)
	rendered, err := generator.Generate(summary, "json")
	if err != nil {
		root.Log.WithError(err).Error("Failed to render batch summary")
	} else if err := fileutils.WriteFile(filepath.Join(outputDir, "summary.json"), rendered, 0o600); err != nil {
		root.Log.WithError(err).Error("Failed to write batch summary")
	}

	root.Log.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "accounts", Value: len(groups)})
}
