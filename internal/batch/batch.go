// Package batch parses many statement documents in one run, sequentially
// or with a bounded worker pool. A document that fails is logged and left
// out of the result map; it never aborts the rest of the run.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
	"fjacquet/finstatement/internal/parser"
	"fjacquet/finstatement/internal/parsererror"
)

// Loader turns a document path into statement text. textsource.Source
// methods satisfy this; tests inject their own.
type Loader func(path string) string

// Options controls how a batch run executes.
type Options struct {
	// Parallel enables the worker pool. When false, documents are parsed
	// one at a time in input order.
	Parallel bool

	// Workers bounds the pool size. Zero or negative means one worker per
	// CPU.
	Workers int

	// Timeout bounds the time spent on a single document. Zero means no
	// bound.
	Timeout time.Duration
}

// Runner executes batch parse runs.
type Runner struct {
	parser *parser.StatementParser
	load   Loader
	log    logging.Logger
}

// NewRunner creates a Runner. A nil logger means the process default.
func NewRunner(p *parser.StatementParser, load Loader, log logging.Logger) *Runner {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Runner{parser: p, load: load, log: log}
}

// Run parses every document and returns a map from path to result. Failed
// documents (timeout, cancellation, panic) are logged and omitted. Each
// run gets a unique id carried on every log entry it produces.
func (r *Runner) Run(ctx context.Context, paths []string, opts Options) map[string]models.StatementResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if !opts.Parallel {
		workers = 1
	}

	log := r.log.WithField(logging.FieldRunID, uuid.NewString())
	log.Info("batch run started",
		logging.Field{Key: logging.FieldCount, Value: len(paths)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})

	results := make(map[string]models.StatementResult, len(paths))
	var mu sync.Mutex

	pathChan := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range pathChan {
				result, err := r.parseOne(ctx, path, opts.Timeout)
				if err != nil {
					log.WithError(err).Error("document failed",
						logging.Field{Key: logging.FieldDocument, Value: path})
					continue
				}
				mu.Lock()
				results[path] = result
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		select {
		case pathChan <- path:
		case <-ctx.Done():
			log.Warn("batch run cancelled")
			close(pathChan)
			wg.Wait()
			return results
		}
	}
	close(pathChan)
	wg.Wait()

	log.Info("batch run finished",
		logging.Field{Key: logging.FieldCount, Value: len(results)})
	return results
}

// parseOne loads and parses a single document under the per-document
// timeout. Parsing itself never errors, so the failure modes here are
// timeout, cancellation and panics from a misbehaving loader.
func (r *Runner) parseOne(ctx context.Context, path string, timeout time.Duration) (models.StatementResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan models.StatementResult, 1)
	failed := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				failed <- fmt.Errorf("panic: %v", rec)
			}
		}()
		done <- r.parser.ParseText(r.load(path))
	}()

	select {
	case result := <-done:
		return result, nil
	case err := <-failed:
		return models.StatementResult{}, &parsererror.BatchItemError{Document: path, Err: err}
	case <-ctx.Done():
		return models.StatementResult{}, &parsererror.BatchItemError{Document: path, Err: ctx.Err()}
	}
}
