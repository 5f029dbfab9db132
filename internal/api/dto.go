package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/cursorkit/cursorkit/internal/catalog"
	"github.com/cursorkit/cursorkit/internal/index"
	"github.com/cursorkit/cursorkit/internal/kit"
	"github.com/cursorkit/cursorkit/internal/library"
	"github.com/cursorkit/cursorkit/internal/llm"
	"github.com/cursorkit/cursorkit/internal/structdoc"
)

// ComparisonResponse carries the Rules-vs-Commands reference both as
// row data and as a rendered markdown table.
type ComparisonResponse struct {
	Rows  []catalog.ComparisonRow `json:"rows" validate:"required"`
	Table string                  `json:"table" validate:"required"`
}

// ExamplesResponse wraps the live example library, keyed by category.
type ExamplesResponse struct {
	Examples map[string][]library.Example `json:"examples" validate:"required"`
}

// GenerateRequest is the request body for POST /api/generate.
type GenerateRequest struct {
	ProjectName       string   `json:"project_name" example:"acme-api" validate:"required"`
	TechStack         []string `json:"tech_stack" example:"Go,PostgreSQL"`
	MainFiles         string   `json:"main_files" example:"cmd/\ninternal/"`
	ArchitectureNotes string   `json:"architecture_notes" example:"Layered service"`
	Mode              string   `json:"mode" example:"template"`
	Provider          string   `json:"provider" example:"openai"`
}

// Validate checks the request fields.
func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProjectName, validation.Required),
		validation.Field(&r.Mode, validation.In(structdoc.ModeTemplate, structdoc.ModeLLM)),
		validation.Field(&r.Provider, validation.In(string(llm.ProviderOpenAI), string(llm.ProviderAnthropic))),
	)
}

// GenerateResponse is the generated document plus how it was produced.
type GenerateResponse = structdoc.Result

// ProvidersResponse lists credential status per provider.
type ProvidersResponse struct {
	Providers []llm.ProviderStatus `json:"providers" validate:"required"`
}

// StarterKitContentsResponse lists the archive entries.
type StarterKitContentsResponse struct {
	Filename string      `json:"filename" validate:"required"`
	Entries  []kit.Entry `json:"entries" validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results" validate:"required"`
}
