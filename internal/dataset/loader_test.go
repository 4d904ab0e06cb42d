// internal/dataset/loader_test.go
package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleExport = `{
  "exportedAt": "2026-08-01T12:00:00Z",
  "catalog": {
    "providers": [{"id": "anthropic", "displayName": "Anthropic"}],
    "models": [
      {
        "provider": "anthropic",
        "id": "claude-sonnet-4",
        "displayName": "Claude Sonnet 4",
        "active": true,
        "releaseDate": "2025-05-22",
        "costPerMTok": {"input": 3, "output": 15}
      }
    ]
  },
  "runs": [
    {
      "id": "run-9",
      "status": "completed",
      "dataset": "contracts-v2",
      "promptVersion": "p3",
      "schemaVersion": "s1",
      "harness": "batch",
      "provider": "anthropic",
      "model": "claude-sonnet-4",
      "totalFiles": 40,
      "completedFiles": 40,
      "avgScore": 0.91,
      "durationMs": 182000,
      "startedAt": "2026-07-30T01:00:00Z",
      "finishedAt": "2026-07-30T01:03:02Z",
      "inputTokens": 410000,
      "outputTokens": 92000
    }
  ],
  "fileScores": {
    "run-9": [{"file_id": "acme.pdf", "score": 0.95}]
  }
}`

func TestParseExportDecodesDocument(t *testing.T) {
	export, err := ParseExport([]byte(sampleExport))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if export.ExportedAt != "2026-08-01T12:00:00Z" {
		t.Fatalf("unexpected exportedAt %q", export.ExportedAt)
	}
	if len(export.Runs) != 1 || export.Runs[0].Model != "claude-sonnet-4" {
		t.Fatalf("unexpected runs: %+v", export.Runs)
	}
	run := export.Runs[0]
	if run.AvgScore == nil || *run.AvgScore != 0.91 {
		t.Fatalf("expected avgScore 0.91, got %v", run.AvgScore)
	}
	if run.InputTokens == nil || *run.InputTokens != 410000 {
		t.Fatalf("expected inputTokens 410000, got %v", run.InputTokens)
	}
	model := export.Catalog.Models[0]
	if model.CostPerMTok == nil || model.CostPerMTok.Output != 15 {
		t.Fatalf("unexpected pricing: %+v", model.CostPerMTok)
	}
	if len(export.FileScores["run-9"]) != 1 {
		t.Fatalf("unexpected fileScores: %+v", export.FileScores)
	}
}

func TestParseExportRejectsMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing exportedAt", `{"catalog": {"models": []}, "runs": []}`},
		{"missing catalog", `{"exportedAt": "2026-08-01T12:00:00Z", "runs": []}`},
		{"run without id", `{"exportedAt": "x", "catalog": {"models": []}, "runs": [{"startedAt": "y"}]}`},
		{"not json", `not an export`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseExport([]byte(tc.raw)); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestFileLoaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}

	export, err := FileLoader(path)(context.Background())
	if err != nil {
		t.Fatalf("unexpected loader error: %v", err)
	}
	if len(export.Runs) != 1 || export.Runs[0].ID != "run-9" {
		t.Fatalf("unexpected export: %+v", export)
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	_, err := FileLoader(filepath.Join(t.TempDir(), "absent.json"))(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unable to read export file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
