// internal/dataset/loader.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// exportSchema is the structural contract for the export document. Decoding
// tolerates unknown fields, but a document missing the required shape is
// rejected before it ever reaches the UI.
var exportSchema = map[string]any{
	"type":     "object",
	"required": []string{"exportedAt", "catalog", "runs"},
	"properties": map[string]any{
		"exportedAt": map[string]any{"type": "string"},
		"catalog": map[string]any{
			"type":     "object",
			"required": []string{"models"},
			"properties": map[string]any{
				"providers": map[string]any{"type": "array"},
				"models":    map[string]any{"type": "array"},
			},
		},
		"runs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "startedAt"},
				"properties": map[string]any{
					"id":        map[string]any{"type": "string"},
					"startedAt": map[string]any{"type": "string"},
				},
			},
		},
		"fileScores": map[string]any{"type": "object"},
	},
}

// ValidateExport checks raw export JSON against the document schema.
func ValidateExport(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(exportSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("export document validation failed: %s", strings.Join(errs, ", "))
}

// ParseExport validates and decodes an export document.
func ParseExport(raw []byte) (*Export, error) {
	if err := ValidateExport(raw); err != nil {
		return nil, err
	}
	var export Export
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("unable to decode export document: %w", err)
	}
	return &export, nil
}

// FileLoader returns a Loader that reads the export document from disk.
func FileLoader(path string) Loader {
	return func(ctx context.Context) (*Export, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read export file %s: %w", path, err)
		}
		export, err := ParseExport(raw)
		if err != nil {
			return nil, fmt.Errorf("unable to parse export file %s: %w", path, err)
		}
		return export, nil
	}
}
