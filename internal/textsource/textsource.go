// Package textsource acquires statement text from input documents. Text
// acquisition never fails from the caller's point of view: when nothing can
// be extracted, the well-known sentinel string is returned and the parse
// proceeds over it, yielding a low-confidence result full of defaults.
package textsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/parsererror"
	"fjacquet/finstatement/internal/textutils"
)

// ExtractionFailedSentinel is returned when no text could be extracted.
// Downstream stages treat it as ordinary unusable text.
const ExtractionFailedSentinel = "ERROR: Unable to extract text from PDF"

// Source reads statement text from files.
type Source struct {
	log logging.Logger
}

// New creates a Source. A nil logger means the process default.
func New(log logging.Logger) *Source {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Source{log: log}
}

// FromFile reads statement text from a file, dispatching on extension:
// .pdf goes through PDF extraction, anything else is read as plain text.
func (s *Source) FromFile(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return s.FromPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.WithError(&parsererror.TextExtractionError{FilePath: path, Err: err}).
			Warn("could not read statement file",
				logging.Field{Key: logging.FieldFile, Value: path})
		return ExtractionFailedSentinel
	}
	return string(data)
}

// FromPDF extracts text from a PDF file. Pages after the first are
// prefixed with a page delimiter so multi-page structure stays visible in
// the combined text. Extraction failures resolve to the sentinel.
func (s *Source) FromPDF(path string) string {
	text, err := extractPDFText(path)
	if err != nil {
		s.log.WithError(&parsererror.TextExtractionError{FilePath: path, Err: err}).
			Warn("PDF text extraction failed",
				logging.Field{Key: logging.FieldFile, Value: path})
	}
	if strings.TrimSpace(text) == "" {
		return ExtractionFailedSentinel
	}
	return text
}

// extractPDFText walks the PDF page by page. A page that fails to extract
// is skipped so a partly readable document still yields its readable
// pages. The pdf library panics on some malformed files; that is converted
// to an error here.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := pageTextByRow(page)
		if err != nil {
			continue
		}

		if i > 1 {
			sb.WriteString(fmt.Sprintf("\n\n--- PAGE %d ---\n\n", i))
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// pageTextByRow reconstructs page text row by row, which preserves the
// line structure the transaction patterns depend on.
func pageTextByRow(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		if line := textutils.CollapseSpaces(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
