// Package parsererror defines the typed errors surfaced by the statement
// pipeline. Unresolvable fields are never errors; they resolve to
// documented defaults. These types cover the failures that do propagate.
package parsererror

import "fmt"

// TextExtractionError reports that no text could be acquired from a source
// document. The pipeline still runs against the sentinel text in that
// case; this error is what the acquisition layer logs alongside it.
type TextExtractionError struct {
	FilePath string
	Err      error
}

func (e *TextExtractionError) Error() string {
	return fmt.Sprintf("unable to extract text from %s: %v", e.FilePath, e.Err)
}

func (e *TextExtractionError) Unwrap() error {
	return e.Err
}

// DataExtractionError reports that a matched pattern produced a token the
// pipeline could not interpret, for callers that want the detail.
type DataExtractionError struct {
	Field string
	Value string
	Err   error
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s from '%s': %v", e.Field, e.Value, e.Err)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}

// BatchItemError wraps a single document's failure inside a batch run. The
// batch runner logs it and omits the document; siblings are unaffected.
type BatchItemError struct {
	Document string
	Err      error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("batch item %s failed: %v", e.Document, e.Err)
}

func (e *BatchItemError) Unwrap() error {
	return e.Err
}
