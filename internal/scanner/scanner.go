// Package scanner discovers statement files on disk.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/finstatement/internal/logging"
)

// Extensions a statement file may carry. Everything else is skipped.
var statementExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".pdf":  true,
}

// StatementScanner finds parseable statement files under given paths.
type StatementScanner struct {
	log logging.Logger
}

// NewStatementScanner creates a StatementScanner.
func NewStatementScanner(log logging.Logger) *StatementScanner {
	if log == nil {
		log = logging.GetLogger()
	}
	return &StatementScanner{log: log}
}

// Scan resolves the given paths (files or directories) to a sorted list of
// statement file paths. Directories are walked recursively; files with
// unsupported extensions are skipped. A path that does not exist is an
// error.
func (s *StatementScanner) Scan(paths []string) ([]string, error) {
	var found []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path %s: %w", p, err)
		}

		if info.IsDir() {
			inDir, err := s.scanDirectory(p)
			if err != nil {
				return nil, err
			}
			found = append(found, inDir...)
			continue
		}

		if !IsStatementFile(p) {
			s.log.Debug("skipping unsupported file",
				logging.Field{Key: logging.FieldFile, Value: p})
			continue
		}
		found = append(found, p)
	}

	sort.Strings(found)
	return found, nil
}

func (s *StatementScanner) scanDirectory(dir string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsStatementFile(path) {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	return found, nil
}

// IsStatementFile reports whether the path has a parseable extension.
func IsStatementFile(path string) bool {
	return statementExtensions[strings.ToLower(filepath.Ext(path))]
}
