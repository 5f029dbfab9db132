package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cursorkit/cursorkit/internal/index"
	"github.com/cursorkit/cursorkit/internal/library"
	"github.com/cursorkit/cursorkit/internal/llm"
	"github.com/cursorkit/cursorkit/internal/structdoc"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(lib *library.Service, db index.DocIndex, gen *structdoc.Generator, llmCfg llm.Config, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(lib, db, gen, llmCfg)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Reference content.
	r.Get("/comparison", h.Comparison)
	r.Get("/frontmatter-fields", h.FrontmatterFields)
	r.Get("/activation-modes", h.ActivationModes)
	r.Get("/rule-types", h.RuleTypes)
	r.Get("/hooks", h.Hooks)
	r.Get("/tips", h.Tips)
	r.Get("/prompts", h.Prompts)
	r.Get("/resources", h.Resources)

	// Live example library.
	r.Get("/examples", h.Examples)

	// Generic commands.
	r.Get("/commands", h.Commands)
	r.Get("/commands/{key}", h.Command)
	r.Get("/commands/{key}/download", h.CommandDownload)

	// Community rules.
	r.Get("/community-rules", h.CommunityRules)
	r.Get("/community-rules/{tech}", h.CommunityRule)
	r.Get("/community-rules/{tech}/download", h.CommunityRuleDownload)

	// Structure-doc generation.
	r.Post("/generate", h.Generate)
	r.Get("/providers", h.Providers)

	// Starter kit.
	r.Get("/starter-kit", h.StarterKit)
	r.Get("/starter-kit/contents", h.StarterKitContents)

	// Search.
	r.Get("/search", h.Search)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
