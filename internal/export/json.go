// Package export renders parse results to the supported output formats.
package export

import (
	"encoding/json"
	"fmt"

	"fjacquet/finstatement/internal/fileutils"
	"fjacquet/finstatement/internal/models"
)

// RenderJSON renders a result as indented JSON. Dates are ISO-8601,
// amounts are plain JSON numbers, and absent optional fields render as
// explicit nulls.
func RenderJSON(result models.StatementResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error rendering result to JSON: %w", err)
	}
	return string(data), nil
}

// ParseJSON parses a JSON document produced by RenderJSON.
func ParseJSON(data []byte) (models.StatementResult, error) {
	var result models.StatementResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.StatementResult{}, fmt.Errorf("error parsing result JSON: %w", err)
	}
	return result, nil
}

// WriteJSONFile renders a result and writes it to a file, creating parent
// directories as needed.
func WriteJSONFile(result models.StatementResult, path string) error {
	rendered, err := RenderJSON(result)
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(path, []byte(rendered+"\n"), 0o600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
