// internal/dataset/types.go
// Package dataset loads and caches the static benchmark export document and
// exposes typed read accessors over it.
package dataset

// Run captures a single benchmark execution as recorded in the export.
type Run struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	Dataset        string   `json:"dataset"`
	PromptVersion  string   `json:"promptVersion"`
	SchemaVersion  string   `json:"schemaVersion"`
	Harness        string   `json:"harness"`
	Provider       string   `json:"provider"`
	Model          string   `json:"model"`
	TotalFiles     int      `json:"totalFiles"`
	CompletedFiles int      `json:"completedFiles"`
	AvgScore       *float64 `json:"avgScore,omitempty"`
	DurationMs     *int64   `json:"durationMs,omitempty"`
	StartedAt      string   `json:"startedAt"`
	FinishedAt     *string  `json:"finishedAt,omitempty"`
	InputTokens    *int64   `json:"inputTokens,omitempty"`
	OutputTokens   *int64   `json:"outputTokens,omitempty"`
	PromptPreview  string   `json:"promptPreview,omitempty"`
}

// Run status values present in exports. Anything else is displayed verbatim.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
)

// ModelPricing holds per-million-token costs for a catalog model.
type ModelPricing struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// Capabilities enumerates the feature flags a catalog model advertises.
type Capabilities struct {
	Vision     bool `json:"vision"`
	ToolUse    bool `json:"toolUse"`
	JSONOutput bool `json:"jsonOutput"`
}

// CatalogModel is the static metadata record for a model. The ID field is the
// join key against Run.Model; uniqueness across providers is not guaranteed.
type CatalogModel struct {
	Provider      string        `json:"provider"`
	ID            string        `json:"id"`
	DisplayName   string        `json:"displayName"`
	Family        string        `json:"family,omitempty"`
	Capabilities  Capabilities  `json:"capabilities"`
	Active        bool          `json:"active"`
	ReleaseDate   *string       `json:"releaseDate,omitempty"`
	CostPerMTok   *ModelPricing `json:"costPerMTok,omitempty"`
	ContextWindow *int64        `json:"contextWindow,omitempty"`
	MaxOutput     *int64        `json:"maxOutput,omitempty"`
}

// ProviderInfo describes a provider entry in the catalog.
type ProviderInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Catalog groups the static provider and model metadata.
type Catalog struct {
	Providers []ProviderInfo `json:"providers"`
	Models    []CatalogModel `json:"models"`
}

// FileResult is a per-file score scoped to one run. Absence of entries for a
// run means per-file detail is unavailable, not that the score is zero.
type FileResult struct {
	FileID string  `json:"file_id"`
	Score  float64 `json:"score"`
}

// Export is the root of the benchmark export document. It is fetched once and
// treated as immutable for the rest of the process.
type Export struct {
	ExportedAt string                  `json:"exportedAt"`
	Catalog    Catalog                 `json:"catalog"`
	Runs       []Run                   `json:"runs"`
	FileScores map[string][]FileResult `json:"fileScores"`
}
