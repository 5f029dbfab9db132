package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cursorkit/cursorkit/internal/catalog"
	"github.com/cursorkit/cursorkit/internal/index"
	"github.com/cursorkit/cursorkit/internal/kit"
	"github.com/cursorkit/cursorkit/internal/library"
	"github.com/cursorkit/cursorkit/internal/llm"
	"github.com/cursorkit/cursorkit/internal/structdoc"
)

// Handler holds API route handlers.
type Handler struct {
	lib    *library.Service
	db     index.DocIndex
	gen    *structdoc.Generator
	llmCfg llm.Config
}

// NewHandler creates a new Handler.
func NewHandler(lib *library.Service, db index.DocIndex, gen *structdoc.Generator, llmCfg llm.Config) *Handler {
	return &Handler{lib: lib, db: db, gen: gen, llmCfg: llmCfg}
}

// Comparison handles GET /api/comparison.
//
//	@Summary	Rules-vs-Commands comparison reference
//	@Tags		docs
//	@Produce	json
//	@Success	200	{object}	ComparisonResponse
//	@Router		/comparison [get]
func (h *Handler) Comparison(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ComparisonResponse{
		Rows:  catalog.ComparisonRows(),
		Table: catalog.ComparisonTable(),
	})
}

// FrontmatterFields handles GET /api/frontmatter-fields.
func (h *Handler) FrontmatterFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"fields": catalog.FrontmatterFields()})
}

// ActivationModes handles GET /api/activation-modes.
func (h *Handler) ActivationModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modes": catalog.ActivationModes()})
}

// RuleTypes handles GET /api/rule-types.
func (h *Handler) RuleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"types": catalog.RuleTypes()})
}

// Hooks handles GET /api/hooks.
func (h *Handler) Hooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Hooks())
}

// Tips handles GET /api/tips.
func (h *Handler) Tips(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, map[string]any{"tips": catalog.QuickTips(category)})
}

// Examples handles GET /api/examples.
//
//	@Summary	Live example library with parsed headers and annotations
//	@Tags		library
//	@Produce	json
//	@Success	200	{object}	ExamplesResponse
//	@Router		/examples [get]
func (h *Handler) Examples(w http.ResponseWriter, r *http.Request) {
	examples, err := h.lib.Load()
	if err != nil {
		slog.Error("load examples failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ExamplesResponse{Examples: examples})
}

// Prompts handles GET /api/prompts.
func (h *Handler) Prompts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "rules"
	}
	prompts := catalog.Prompts(category)
	if prompts == nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown category"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"prompts": prompts})
}

// Commands handles GET /api/commands.
func (h *Handler) Commands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"commands": catalog.Commands()})
}

// Command handles GET /api/commands/{key}.
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	cmd, ok := catalog.Command(key)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, cmd)
}

// CommandDownload handles GET /api/commands/{key}/download.
//
//	@Summary	Download one command as a markdown file
//	@Tags		commands
//	@Produce	text/markdown
//	@Param		key	path	string	true	"Command key"
//	@Success	200	{string}	string
//	@Failure	404	{object}	errResponse
//	@Router		/commands/{key}/download [get]
func (h *Handler) CommandDownload(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	cmd, ok := catalog.Command(key)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeMarkdownAttachment(w, key+".md", cmd.Content)
}

// CommunityRules handles GET /api/community-rules.
func (h *Handler) CommunityRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rules": catalog.CommunityRules()})
}

// CommunityRule handles GET /api/community-rules/{tech}.
func (h *Handler) CommunityRule(w http.ResponseWriter, r *http.Request) {
	tech := chi.URLParam(r, "tech")
	rule, ok := catalog.CommunityRuleByTech(tech)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// CommunityRuleDownload handles GET /api/community-rules/{tech}/download.
func (h *Handler) CommunityRuleDownload(w http.ResponseWriter, r *http.Request) {
	tech := chi.URLParam(r, "tech")
	rule, ok := catalog.CommunityRuleByTech(tech)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeMarkdownAttachment(w, tech+"-rules.md", rule.Content)
}

// Resources handles GET /api/resources.
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}
	resources := catalog.Resources(category)
	if resources == nil {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown category"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"resources": resources})
}

// Generate handles POST /api/generate.
//
//	@Summary	Generate a project-structure.md document
//	@Tags		generate
//	@Accept		json
//	@Produce	json
//	@Param		body	body		GenerateRequest	true	"Project details"
//	@Success	200		{object}	GenerateResponse
//	@Failure	400		{object}	errResponse
//	@Router		/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	docReq := structdoc.Request{
		ProjectName:       req.ProjectName,
		TechStack:         req.TechStack,
		MainFiles:         req.MainFiles,
		ArchitectureNotes: req.ArchitectureNotes,
	}
	if req.Mode == structdoc.ModeLLM {
		provider := llm.Provider(req.Provider)
		if provider == "" {
			provider = llm.ProviderOpenAI
		}
		docReq.Provider = provider
	}

	res := h.gen.Generate(r.Context(), docReq)
	writeJSON(w, http.StatusOK, res)
}

// Providers handles GET /api/providers.
func (h *Handler) Providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProvidersResponse{Providers: llm.Status(h.llmCfg)})
}

// StarterKit handles GET /api/starter-kit.
//
//	@Summary	Download the starter-kit archive
//	@Tags		kit
//	@Produce	application/zip
//	@Success	200	{file}	binary
//	@Router		/starter-kit [get]
func (h *Handler) StarterKit(w http.ResponseWriter, r *http.Request) {
	data, err := kit.Build()
	if err != nil {
		slog.Error("build starter kit failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kit.ArchiveName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// StarterKitContents handles GET /api/starter-kit/contents.
func (h *Handler) StarterKitContents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StarterKitContentsResponse{
		Filename: kit.ArchiveName,
		Entries:  kit.Contents(),
	})
}

// Search handles GET /api/search.
//
//	@Summary	Full-text search across built-in and library docs
//	@Tags		search
//	@Produce	json
//	@Param		q		query		string	true	"Search query"
//	@Param		limit	query		int		false	"Max results"
//	@Success	200		{object}	SearchResponse
//	@Failure	400		{object}	errResponse
//	@Router		/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.db.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []index.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

func writeMarkdownAttachment(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}
