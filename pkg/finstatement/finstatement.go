// Package finstatement is the public entry point for embedding the
// statement extraction pipeline in other programs. It wraps the internal
// packages behind a small API: parse one statement from text or a file,
// or parse a batch of files concurrently.
package finstatement

import (
	"context"
	"time"

	"fjacquet/finstatement/internal/batch"
	"fjacquet/finstatement/internal/categorizer"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
	"fjacquet/finstatement/internal/parser"
	"fjacquet/finstatement/internal/textsource"
)

// Options configures a Client.
type Options struct {
	// Logger receives pipeline logs. Nil means the process-wide default.
	Logger logging.Logger

	// RulesFile is the path to a YAML file with custom category rules.
	// Empty disables the rule store; the built-in keyword table always runs.
	RulesFile string

	// AIClient is an optional last-resort categorization strategy.
	AIClient categorizer.AIClient
}

// Client parses financial statements.
type Client struct {
	parser *parser.StatementParser
	source *textsource.Source
	log    logging.Logger
}

// New creates a Client.
func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logging.GetLogger()
	}

	var store categorizer.RuleStore
	if opts.RulesFile != "" {
		store = categorizer.NewYAMLRuleStore(opts.RulesFile)
	}

	return &Client{
		parser: parser.New(categorizer.New(store, opts.AIClient, log), nil, log),
		source: textsource.New(log),
		log:    log,
	}
}

// ParseText parses statement text into a structured result. Extraction is
// best-effort: missing fields resolve to documented defaults and lower the
// confidence scores rather than failing.
func (c *Client) ParseText(text string) models.StatementResult {
	return c.parser.ParseText(text)
}

// ParseFile reads a statement file (plain text or PDF) and parses it.
// Unreadable files parse as an extraction-failure document: every field at
// its default with minimum confidence.
func (c *Client) ParseFile(path string) models.StatementResult {
	return c.parser.ParseText(c.source.FromFile(path))
}

// BatchOptions configures a BatchParse run.
type BatchOptions struct {
	// Parallel enables concurrent parsing with one worker per CPU, or
	// Workers workers when set.
	Parallel bool
	Workers  int

	// Timeout is the per-document parse budget. Zero means no limit.
	Timeout time.Duration
}

// BatchParse parses statement files and returns the results keyed by path.
// Documents that fail or exceed the timeout are logged and omitted;
// cancelling the context stops dispatching new documents.
func (c *Client) BatchParse(ctx context.Context, paths []string, opts BatchOptions) map[string]models.StatementResult {
	runner := batch.NewRunner(c.parser, c.source.FromFile, c.log)
	return runner.Run(ctx, paths, batch.Options{
		Parallel: opts.Parallel,
		Workers:  opts.Workers,
		Timeout:  opts.Timeout,
	})
}
